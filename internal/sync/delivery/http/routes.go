package http

import (
	"github.com/gin-gonic/gin"

	"trello-sheets-sync/internal/middleware"
)

// RegisterRoutes maps the sync triggers. Every route runs behind the trigger guard.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sync := rg.Group("", mw.Trigger())
	{
		sync.POST("/summary", h.SyncSummary)
		sync.POST("/all", h.SyncAll)
		sync.POST("/board", h.SyncBoard)
		sync.POST("/reset", h.ResetAll)
	}
}

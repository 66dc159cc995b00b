package http

import (
	"github.com/gin-gonic/gin"

	"trello-sheets-sync/internal/sync"
	"trello-sheets-sync/pkg/log"
)

// Handler is the public interface for the sync HTTP delivery layer.
type Handler interface {
	SyncSummary(c *gin.Context)
	SyncAll(c *gin.Context)
	SyncBoard(c *gin.Context)
	ResetAll(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc sync.UseCase
}

// New creates a new HTTP handler for the sync domain.
func New(l log.Logger, uc sync.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processSyncBoardReq binds the optional request body. An empty body selects the active sheet.
func (h *handler) processSyncBoardReq(c *gin.Context) (syncBoardReq, error) {
	var req syncBoardReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

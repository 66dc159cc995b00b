package http

import (
	"github.com/gin-gonic/gin"

	"trello-sheets-sync/pkg/response"
)

// SyncSummary godoc
// @Summary     Update the summary sheet
// @Description Clears the summary sheet and refills it with one row per card of every open board.
// @Tags        Sync
// @Produce     json
// @Param       X-Trigger-Secret header string false "Shared trigger secret"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Trello rejected the credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync/summary [POST]
func (h *handler) SyncSummary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SyncSummary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncSummary: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSyncResp(output))
}

// SyncAll godoc
// @Summary     Update all sheets
// @Description Refills the summary sheet and regenerates one sheet per open board.
// @Tags        Sync
// @Produce     json
// @Param       X-Trigger-Secret header string false "Shared trigger secret"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Trello rejected the credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync/all [POST]
func (h *handler) SyncAll(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SyncAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncAll: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSyncResp(output))
}

// SyncBoard godoc
// @Summary     Update one board sheet
// @Description Regenerates the sheet of the board whose name matches sheet_name. The summary sheet is not touched.
// @Description Without sheet_name the workbook's active sheet is used.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       X-Trigger-Secret header string       false "Shared trigger secret"
// @Param       body             body   syncBoardReq false "Board sheet to regenerate"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Summary sheet selected or no sheet given"
// @Failure     404 {object} response.Resp "No open board matches"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync/board [POST]
func (h *handler) SyncBoard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncBoardReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncBoard(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncBoard: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSyncResp(output))
}

// ResetAll godoc
// @Summary     Reset the workbook
// @Description Deletes every sheet except the summary sheet, then refills the summary.
// @Tags        Sync
// @Produce     json
// @Param       X-Trigger-Secret header string false "Shared trigger secret"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sync/reset [POST]
func (h *handler) ResetAll(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResetAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ResetAll: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newSyncResp(output))
}

func (h *handler) respondError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}


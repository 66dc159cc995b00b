package http

import (
	"strings"

	"trello-sheets-sync/internal/sync"
	"trello-sheets-sync/pkg/response"
)

// --- Request DTOs ---

type syncBoardReq struct {
	SheetName string `json:"sheet_name" binding:"max=100"`
}

func (r syncBoardReq) toInput() sync.SyncBoardInput {
	return sync.SyncBoardInput{SheetName: strings.TrimSpace(r.SheetName)}
}

// --- Response DTOs ---

type syncResp struct {
	RunID         string            `json:"run_id"`
	Mode          string            `json:"mode"`
	StartedAt     response.DateTime `json:"started_at" swaggertype:"string" example:"2024-01-01 10:00:00"`
	FinishedAt    response.DateTime `json:"finished_at" swaggertype:"string" example:"2024-01-01 10:00:05"`
	Boards        int               `json:"boards"`
	Lists         int               `json:"lists"`
	Cards         int               `json:"cards"`
	DeletedSheets []string          `json:"deleted_sheets,omitempty"`
	SnapshotKey   string            `json:"snapshot_key,omitempty"`
}

func newSyncResp(o sync.SyncOutput) syncResp {
	return syncResp{
		RunID:         o.RunID,
		Mode:          string(o.Mode),
		StartedAt:     response.DateTime(o.StartedAt),
		FinishedAt:    response.DateTime(o.FinishedAt),
		Boards:        o.Boards,
		Lists:         o.Lists,
		Cards:         o.Cards,
		DeletedSheets: o.DeletedSheets,
		SnapshotKey:   o.SnapshotKey,
	}
}

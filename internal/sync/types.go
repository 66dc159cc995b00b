package sync

import (
	"time"

	"trello-sheets-sync/internal/model"
)

// Mode names the entry point a run was started from.
type Mode string

const (
	ModeConfigured Mode = "configured"
	ModeAll        Mode = "all"
	ModeSummary    Mode = "summary"
	ModeBoard      Mode = "board"
	ModeReset      Mode = "reset"
)

// SyncBoardInput selects the board sheet to regenerate. An empty SheetName
// means the spreadsheet's active sheet.
type SyncBoardInput struct {
	SheetName string `json:"sheet_name"`
}

// SyncOutput summarizes a completed run.
type SyncOutput struct {
	RunID         string             `json:"run_id"`
	Mode          Mode               `json:"mode"`
	StartedAt     time.Time          `json:"started_at"`
	FinishedAt    time.Time          `json:"finished_at"`
	Boards        int                `json:"boards"`
	Lists         int                `json:"lists"`
	Cards         int                `json:"cards"`
	DeletedSheets []string           `json:"deleted_sheets,omitempty"`
	SnapshotKey   string             `json:"snapshot_key,omitempty"`
	Rows          []model.SummaryRow `json:"rows"`
}

package usecase

import "trello-sheets-sync/internal/sync"

// runOptions selects which stages of the pipeline are active for one run.
type runOptions struct {
	mode         sync.Mode
	resetSummary bool
	writeSummary bool
	boardSheets  bool
	insertImages bool
	boardFilter  string // sheet name of the only board to sync, "" for all
}

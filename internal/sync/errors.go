package sync

import "errors"

// Domain-specific errors for the sync package.
var (
	ErrSummarySheetActive = errors.New("select 'Update Main Sheet' option or activate correct board sheet")
	ErrBoardNotFound      = errors.New("no open board matches the sheet name")
	ErrNoSheetSelected    = errors.New("no board sheet selected")
)

package http

import (
	"errors"
	"net/http"

	"trello-sheets-sync/internal/sync"
	pkgErrors "trello-sheets-sync/pkg/errors"
	"trello-sheets-sync/pkg/trello"
)

const msgSummarySheetActive = "Select 'Update Main Sheet' option or activate correct board sheet"

// mapError translates use-case errors into HTTP errors from pkg/errors.
// nil means the error is not the caller's fault and is answered with a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, sync.ErrSummarySheetActive):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgSummarySheetActive)
	case errors.Is(err, sync.ErrNoSheetSelected):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "sheet_name is required for this sheet backend")
	case errors.Is(err, sync.ErrBoardNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, trello.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "trello rejected the configured credentials")
	default:
		return nil
	}
}

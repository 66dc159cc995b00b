package repository

import (
	"context"
	"errors"

	"trello-sheets-sync/internal/model"
)

// ErrActiveSheetUnsupported is returned by writers that have no notion of an active sheet.
var ErrActiveSheetUnsupported = errors.New("sheet backend cannot report the active sheet")

// BoardRepository reads Trello entities. Every call is one blocking request.
type BoardRepository interface {
	ListBoards(ctx context.Context, username string) ([]model.Board, error)
	ListLists(ctx context.Context, boardID string) ([]model.List, error)
	ListCards(ctx context.Context, listID string) ([]model.Card, error)
	ListStickers(ctx context.Context, cardID string) ([]model.Sticker, error)
}

// SheetWriter owns the physical cell grid. The orchestrator decides layout,
// the writer only places what it is told.
type SheetWriter interface {
	// SheetName maps a board name to the sheet title the backend can hold.
	SheetName(boardName string) string

	// ResetSummarySheet creates the summary sheet if missing, clears it and writes the header row.
	ResetSummarySheet(ctx context.Context, name string) error
	// CreateOrReplaceSheet deletes any sheet called name and creates a fresh one.
	CreateOrReplaceSheet(ctx context.Context, name string) error
	// WriteHeaderBlock writes the three header rows of a board sheet.
	WriteHeaderBlock(ctx context.Context, sheet string, board model.Board, lists []model.List) error
	// WriteCardCell writes a wrapped text cell.
	WriteCardCell(ctx context.Context, sheet string, row, col int, text string) error
	// AppendSummaryRow writes values after the last populated row.
	AppendSummaryRow(ctx context.Context, sheet string, values []any) error
	// InsertImage places the image at url over the given cell.
	InsertImage(ctx context.Context, sheet, url string, col, row int) error
	// StyleRange applies style to the range.
	StyleRange(ctx context.Context, sheet string, rng model.Range, style model.Style) error

	ListSheets(ctx context.Context) ([]string, error)
	DeleteSheet(ctx context.Context, name string) error
	ActiveSheet(ctx context.Context) (string, error)

	// Flush persists buffered state, if the backend buffers at all.
	Flush(ctx context.Context) error
}

// SnapshotRepository stores a copy of a run's summary rows.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot model.Snapshot) (string, error)
}

package gsheets

import (
	"context"

	"trello-sheets-sync/internal/sync/repository"
	pkgGsheets "trello-sheets-sync/pkg/gsheets"
	pkgLog "trello-sheets-sync/pkg/log"
)

// sheetsClient is the subset of *pkgGsheets.Client the writer uses.
type sheetsClient interface {
	Sheets(ctx context.Context) ([]pkgGsheets.SheetInfo, error)
	AddSheet(ctx context.Context, title string) (int64, error)
	DeleteSheet(ctx context.Context, sheetID int64) error
	ClearValues(ctx context.Context, sheet string) error
	UpdateValues(ctx context.Context, a1Range string, values [][]any) error
	AppendValues(ctx context.Context, a1Range string, values [][]any) error
	Format(ctx context.Context, rng pkgGsheets.GridRange, format pkgGsheets.CellFormat) error
	Merge(ctx context.Context, rng pkgGsheets.GridRange) error
	SetColumnWidths(ctx context.Context, sheetID int64, startColumn int64, widths []int64) error
	SetNote(ctx context.Context, rng pkgGsheets.GridRange, note string) error
}

type noteKey struct {
	sheet    string
	row, col int
}

type implRepository struct {
	client sheetsClient
	l      pkgLog.Logger

	ids   map[string]int64
	notes map[noteKey][]string
}

var _ repository.SheetWriter = (*implRepository)(nil)

// New creates a SheetWriter that writes straight to a Google spreadsheet.
func New(client sheetsClient, l pkgLog.Logger) repository.SheetWriter {
	return &implRepository{
		client: client,
		l:      l,
		ids:    make(map[string]int64),
		notes:  make(map[noteKey][]string),
	}
}

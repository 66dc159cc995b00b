package gsheets

import (
	"context"
	"fmt"
	"strings"

	"trello-sheets-sync/internal/model"
	"trello-sheets-sync/internal/sync/repository"
	pkgGsheets "trello-sheets-sync/pkg/gsheets"
)

// Google sheet titles are capped at 100 characters.
const maxTitleLength = 100

func (r *implRepository) SheetName(boardName string) string {
	runes := []rune(boardName)
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength])
	}
	return boardName
}

// sheetID resolves a title, refreshing the cache once on a miss.
func (r *implRepository) sheetID(ctx context.Context, name string) (int64, bool, error) {
	if id, ok := r.ids[name]; ok {
		return id, true, nil
	}
	if err := r.refresh(ctx); err != nil {
		return 0, false, err
	}
	id, ok := r.ids[name]
	return id, ok, nil
}

func (r *implRepository) refresh(ctx context.Context) error {
	infos, err := r.client.Sheets(ctx)
	if err != nil {
		return err
	}
	r.ids = make(map[string]int64, len(infos))
	for _, info := range infos {
		r.ids[info.Title] = info.ID
	}
	return nil
}

func (r *implRepository) ResetSummarySheet(ctx context.Context, name string) error {
	id, ok, err := r.sheetID(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		if id, err = r.client.AddSheet(ctx, name); err != nil {
			return err
		}
		r.ids[name] = id
		r.l.Infof(ctx, "gsheets: created summary sheet %q", name)
	}

	if err := r.client.ClearValues(ctx, name); err != nil {
		return err
	}

	header := make([]any, len(model.SummaryColumns))
	for i, c := range model.SummaryColumns {
		header[i] = c
	}
	if err := r.client.UpdateValues(ctx, pkgGsheets.A1(name, 1, 1), [][]any{header}); err != nil {
		return err
	}

	widths := make([]int64, len(model.SummaryColumnWidths))
	for i, w := range model.SummaryColumnWidths {
		widths[i] = int64(w)
	}
	if err := r.client.SetColumnWidths(ctx, id, 0, widths); err != nil {
		return err
	}

	// Summary rows wrap across the populated columns.
	wrap := pkgGsheets.GridRange{SheetID: id, StartRow: 1, EndColumn: model.SummaryRowWidth}
	if err := r.client.Format(ctx, wrap, pkgGsheets.CellFormat{Wrap: true}); err != nil {
		return err
	}

	return r.StyleRange(ctx, name, model.Range{Row: 1, Column: 1, Rows: 1, Columns: len(model.SummaryColumns)}, model.SummaryHeaderStyle)
}

func (r *implRepository) CreateOrReplaceSheet(ctx context.Context, name string) error {
	if err := r.DeleteSheet(ctx, name); err != nil {
		return err
	}
	id, err := r.client.AddSheet(ctx, name)
	if err != nil {
		return err
	}
	r.ids[name] = id
	return nil
}

func (r *implRepository) WriteHeaderBlock(ctx context.Context, sheet string, board model.Board, lists []model.List) error {
	id, ok, err := r.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sheet %q does not exist", sheet)
	}

	width := len(lists) * model.ColumnsPerList
	rows := [][]any{{board.Name, "", board.URL}}
	if width > 0 {
		names := make([]any, width)
		subs := make([]any, width)
		for i, list := range lists {
			names[model.CardNameColumn(i)-1] = list.Name
			names[model.AnnotationColumn(i)-1] = ""
			subs[model.CardNameColumn(i)-1] = model.CardNameSubHeader
			subs[model.AnnotationColumn(i)-1] = model.AnnotationHeader
		}
		rows = append(rows, names, subs)
	}
	if err := r.client.UpdateValues(ctx, pkgGsheets.A1(sheet, model.BoardTitleRow, 1), rows); err != nil {
		return err
	}

	if err := r.StyleRange(ctx, sheet, model.Range{Row: model.BoardTitleRow, Column: 1, Rows: 1, Columns: 1}, model.BoardTitleStyle); err != nil {
		return err
	}
	if width == 0 {
		return nil
	}

	widths := make([]int64, width)
	for i := range widths {
		widths[i] = model.BoardColumnWidth
	}
	if err := r.client.SetColumnWidths(ctx, id, 0, widths); err != nil {
		return err
	}

	for i := range lists {
		start := int64(model.CardNameColumn(i) - 1)
		rng := pkgGsheets.GridRange{
			SheetID:     id,
			StartRow:    model.ListHeaderRow - 1,
			EndRow:      model.ListHeaderRow,
			StartColumn: start,
			EndColumn:   start + model.ColumnsPerList,
		}
		if err := r.client.Merge(ctx, rng); err != nil {
			return err
		}
	}

	if err := r.StyleRange(ctx, sheet, model.Range{Row: model.ListHeaderRow, Column: 1, Rows: 1, Columns: width}, model.ListHeaderStyle); err != nil {
		return err
	}
	return r.StyleRange(ctx, sheet, model.Range{Row: model.ListSubHeaderRow, Column: 1, Rows: 1, Columns: width}, model.ListSubHeaderStyle)
}

func (r *implRepository) WriteCardCell(ctx context.Context, sheet string, row, col int, text string) error {
	id, ok, err := r.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sheet %q does not exist", sheet)
	}
	if err := r.client.UpdateValues(ctx, pkgGsheets.A1(sheet, row, col), [][]any{{text}}); err != nil {
		return err
	}
	return r.client.Format(ctx, cell(id, row, col), pkgGsheets.CellFormat{Wrap: true})
}

func (r *implRepository) AppendSummaryRow(ctx context.Context, sheet string, values []any) error {
	return r.client.AppendValues(ctx, pkgGsheets.A1(sheet, 1, 1), [][]any{values})
}

// InsertImage records the image URL as a cell note. The Sheets API cannot
// place over-grid images, so every URL for a cell is kept in one note.
func (r *implRepository) InsertImage(ctx context.Context, sheet, url string, col, row int) error {
	id, ok, err := r.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sheet %q does not exist", sheet)
	}

	key := noteKey{sheet: sheet, row: row, col: col}
	r.notes[key] = append(r.notes[key], url)
	return r.client.SetNote(ctx, cell(id, row, col), strings.Join(r.notes[key], "\n"))
}

func (r *implRepository) StyleRange(ctx context.Context, sheet string, rng model.Range, style model.Style) error {
	id, ok, err := r.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sheet %q does not exist", sheet)
	}
	return r.client.Format(ctx, toGridRange(id, rng), pkgGsheets.CellFormat{
		Foreground: style.Foreground,
		Background: style.Background,
		FontSize:   int64(style.FontSize),
	})
}

func (r *implRepository) ListSheets(ctx context.Context) ([]string, error) {
	infos, err := r.client.Sheets(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	r.ids = make(map[string]int64, len(infos))
	for _, info := range infos {
		names = append(names, info.Title)
		r.ids[info.Title] = info.ID
	}
	return names, nil
}

func (r *implRepository) DeleteSheet(ctx context.Context, name string) error {
	id, ok, err := r.sheetID(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := r.client.DeleteSheet(ctx, id); err != nil {
		return err
	}
	delete(r.ids, name)
	for key := range r.notes {
		if key.sheet == name {
			delete(r.notes, key)
		}
	}
	return nil
}

// ActiveSheet is a UI concept the Sheets API does not expose.
func (r *implRepository) ActiveSheet(ctx context.Context) (string, error) {
	return "", repository.ErrActiveSheetUnsupported
}

// Flush is a no-op: every call above is written through immediately.
func (r *implRepository) Flush(ctx context.Context) error {
	return nil
}

func cell(sheetID int64, row, col int) pkgGsheets.GridRange {
	return toGridRange(sheetID, model.Range{Row: row, Column: col, Rows: 1, Columns: 1})
}

func toGridRange(sheetID int64, rng model.Range) pkgGsheets.GridRange {
	return pkgGsheets.GridRange{
		SheetID:     sheetID,
		StartRow:    int64(rng.Row - 1),
		EndRow:      int64(rng.Row - 1 + rng.Rows),
		StartColumn: int64(rng.Column - 1),
		EndColumn:   int64(rng.Column - 1 + rng.Columns),
	}
}

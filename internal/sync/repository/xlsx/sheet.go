package xlsx

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"trello-sheets-sync/internal/model"
)

const maxSheetNameLength = 31

var invalidSheetChars = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_",
	"?", "_", "/", "_", "\\", "_",
)

// SheetName maps a board name to a legal worksheet name.
func (r *implRepository) SheetName(boardName string) string {
	name := strings.Trim(invalidSheetChars.Replace(boardName), "'")
	if name == "" {
		name = "Board"
	}
	runes := []rune(name)
	if len(runes) > maxSheetNameLength {
		name = string(runes[:maxSheetNameLength])
	}
	return name
}

func (r *implRepository) exists(name string) bool {
	idx, err := r.file.GetSheetIndex(name)
	return err == nil && idx >= 0
}

func (r *implRepository) ResetSummarySheet(ctx context.Context, name string) error {
	if !r.exists(name) {
		if _, err := r.file.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
		r.l.Infof(ctx, "xlsx: created summary sheet %q", name)
	} else if err := r.clear(name); err != nil {
		return err
	}

	header := make([]any, len(model.SummaryColumns))
	for i, c := range model.SummaryColumns {
		header[i] = c
	}
	if err := r.file.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	r.lastRow[name] = 1

	for i, w := range model.SummaryColumnWidths {
		if err := r.setColumnWidth(name, i+1, w); err != nil {
			return err
		}
	}

	return r.StyleRange(ctx, name, model.Range{Row: 1, Column: 1, Rows: 1, Columns: len(model.SummaryColumns)}, model.SummaryHeaderStyle)
}

// clear removes every populated row of a sheet, keeping the sheet itself.
func (r *implRepository) clear(name string) error {
	rows, err := r.file.GetRows(name)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	for row := len(rows); row >= 1; row-- {
		if err := r.file.RemoveRow(name, row); err != nil {
			return fmt.Errorf("failed to clear sheet %q: %w", name, err)
		}
	}
	r.lastRow[name] = 0
	return nil
}

func (r *implRepository) CreateOrReplaceSheet(ctx context.Context, name string) error {
	// A workbook cannot lose its last sheet, so a lone sheet is cleared in place.
	if r.exists(name) && len(r.file.GetSheetList()) == 1 {
		return r.clear(name)
	}
	if err := r.DeleteSheet(ctx, name); err != nil {
		return err
	}
	if _, err := r.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	return nil
}

func (r *implRepository) WriteHeaderBlock(ctx context.Context, sheet string, board model.Board, lists []model.List) error {
	if !r.exists(sheet) {
		return fmt.Errorf("sheet %q does not exist", sheet)
	}

	if err := r.setCell(sheet, model.BoardTitleRow, 1, board.Name); err != nil {
		return err
	}
	if err := r.setCell(sheet, model.BoardTitleRow, model.BoardURLColumn, board.URL); err != nil {
		return err
	}

	for i, list := range lists {
		nameCol, annCol := model.CardNameColumn(i), model.AnnotationColumn(i)
		if err := r.setCell(sheet, model.ListHeaderRow, nameCol, list.Name); err != nil {
			return err
		}
		if err := r.setCell(sheet, model.ListSubHeaderRow, nameCol, model.CardNameSubHeader); err != nil {
			return err
		}
		if err := r.setCell(sheet, model.ListSubHeaderRow, annCol, model.AnnotationHeader); err != nil {
			return err
		}
		if err := r.setColumnWidth(sheet, nameCol, model.BoardColumnWidth); err != nil {
			return err
		}
		if err := r.setColumnWidth(sheet, annCol, model.BoardColumnWidth); err != nil {
			return err
		}

		from, _ := excelize.CoordinatesToCellName(nameCol, model.ListHeaderRow)
		to, _ := excelize.CoordinatesToCellName(annCol, model.ListHeaderRow)
		if err := r.file.MergeCell(sheet, from, to); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", from, to, err)
		}
	}

	if err := r.StyleRange(ctx, sheet, model.Range{Row: model.BoardTitleRow, Column: 1, Rows: 1, Columns: 1}, model.BoardTitleStyle); err != nil {
		return err
	}
	width := len(lists) * model.ColumnsPerList
	if width == 0 {
		return nil
	}
	if err := r.StyleRange(ctx, sheet, model.Range{Row: model.ListHeaderRow, Column: 1, Rows: 1, Columns: width}, model.ListHeaderStyle); err != nil {
		return err
	}
	return r.StyleRange(ctx, sheet, model.Range{Row: model.ListSubHeaderRow, Column: 1, Rows: 1, Columns: width}, model.ListSubHeaderStyle)
}

func (r *implRepository) WriteCardCell(ctx context.Context, sheet string, row, col int, text string) error {
	if err := r.setCell(sheet, row, col, text); err != nil {
		return err
	}
	styleID, err := r.style(model.Style{}, true)
	if err != nil {
		return err
	}
	name, _ := excelize.CoordinatesToCellName(col, row)
	return r.file.SetCellStyle(sheet, name, name, styleID)
}

func (r *implRepository) AppendSummaryRow(ctx context.Context, sheet string, values []any) error {
	last, ok := r.lastRow[sheet]
	if !ok {
		rows, err := r.file.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		last = len(rows)
	}

	row := last + 1
	start, _ := excelize.CoordinatesToCellName(1, row)
	if err := r.file.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("failed to append row to %q: %w", sheet, err)
	}

	styleID, err := r.style(model.Style{}, true)
	if err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(len(values), row)
	if err := r.file.SetCellStyle(sheet, start, end, styleID); err != nil {
		return fmt.Errorf("failed to wrap row in %q: %w", sheet, err)
	}
	r.lastRow[sheet] = row
	return nil
}

func (r *implRepository) StyleRange(ctx context.Context, sheet string, rng model.Range, style model.Style) error {
	styleID, err := r.style(style, false)
	if err != nil {
		return err
	}
	from, err := excelize.CoordinatesToCellName(rng.Column, rng.Row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(rng.Column+rng.Columns-1, rng.Row+rng.Rows-1)
	if err != nil {
		return err
	}
	if err := r.file.SetCellStyle(sheet, from, to, styleID); err != nil {
		return fmt.Errorf("failed to style %s:%s: %w", from, to, err)
	}
	return nil
}

func (r *implRepository) ListSheets(ctx context.Context) ([]string, error) {
	return r.file.GetSheetList(), nil
}

func (r *implRepository) DeleteSheet(ctx context.Context, name string) error {
	if !r.exists(name) {
		return nil
	}
	if err := r.file.DeleteSheet(name); err != nil {
		return fmt.Errorf("failed to delete sheet %q: %w", name, err)
	}
	delete(r.lastRow, name)
	return nil
}

func (r *implRepository) ActiveSheet(ctx context.Context) (string, error) {
	return r.file.GetSheetName(r.file.GetActiveSheetIndex()), nil
}

// Flush writes the workbook to disk.
func (r *implRepository) Flush(ctx context.Context) error {
	if err := r.file.SaveAs(r.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", r.path, err)
	}
	r.l.Debugf(ctx, "xlsx: saved %s", r.path)
	return nil
}

func (r *implRepository) setCell(sheet string, row, col int, value any) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := r.file.SetCellValue(sheet, name, value); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, name, err)
	}
	return nil
}

// setColumnWidth converts pixels to Excel character units.
func (r *implRepository) setColumnWidth(sheet string, col, px int) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	if err := r.file.SetColWidth(sheet, name, name, float64(px)/7); err != nil {
		return fmt.Errorf("failed to size column %s: %w", name, err)
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"trello-sheets-sync/internal/sync"
	"trello-sheets-sync/internal/sync/repository"
)

// Sync runs the pipeline with the configured flags.
func (uc *implUseCase) Sync(ctx context.Context) (sync.SyncOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.run(ctx, runOptions{
		mode:         sync.ModeConfigured,
		resetSummary: true,
		writeSummary: true,
		boardSheets:  uc.opts.AddBoardSheets,
		insertImages: uc.opts.InsertCardStickers,
	})
}

// SyncAll regenerates the summary and every open board's sheet.
func (uc *implUseCase) SyncAll(ctx context.Context) (sync.SyncOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.run(ctx, runOptions{
		mode:         sync.ModeAll,
		resetSummary: true,
		writeSummary: true,
		boardSheets:  true,
		insertImages: uc.opts.InsertCardStickers,
	})
}

// SyncSummary regenerates the summary sheet only. Sticker images are never inserted.
func (uc *implUseCase) SyncSummary(ctx context.Context) (sync.SyncOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.run(ctx, runOptions{
		mode:         sync.ModeSummary,
		resetSummary: true,
		writeSummary: true,
	})
}

// SyncBoard regenerates one board sheet and leaves the summary sheet untouched.
func (uc *implUseCase) SyncBoard(ctx context.Context, input sync.SyncBoardInput) (sync.SyncOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	sheetName := input.SheetName
	if sheetName == "" {
		active, err := uc.sheets.ActiveSheet(ctx)
		if err != nil {
			if errors.Is(err, repository.ErrActiveSheetUnsupported) {
				return sync.SyncOutput{}, sync.ErrNoSheetSelected
			}
			return sync.SyncOutput{}, fmt.Errorf("resolve active sheet: %w", err)
		}
		sheetName = active
	}

	if sheetName == uc.opts.SummarySheetName {
		uc.l.Warnf(ctx, "SyncBoard: refused, %q is the summary sheet", sheetName)
		return sync.SyncOutput{}, sync.ErrSummarySheetActive
	}

	return uc.run(ctx, runOptions{
		mode:         sync.ModeBoard,
		boardSheets:  true,
		insertImages: uc.opts.InsertCardStickers,
		boardFilter:  sheetName,
	})
}

// ResetAll deletes every non-summary sheet, then refills the summary.
func (uc *implUseCase) ResetAll(ctx context.Context) (sync.SyncOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	summary := uc.opts.SummarySheetName

	// The summary must exist before the others go: a workbook cannot lose its last sheet.
	if err := uc.sheets.ResetSummarySheet(ctx, summary); err != nil {
		return sync.SyncOutput{}, fmt.Errorf("reset summary sheet: %w", err)
	}

	names, err := uc.sheets.ListSheets(ctx)
	if err != nil {
		return sync.SyncOutput{}, fmt.Errorf("list sheets: %w", err)
	}

	var deleted []string
	for _, name := range names {
		if name == summary {
			continue
		}
		if err := uc.sheets.DeleteSheet(ctx, name); err != nil {
			return sync.SyncOutput{}, fmt.Errorf("delete sheet %q: %w", name, err)
		}
		deleted = append(deleted, name)
	}
	uc.l.Infof(ctx, "ResetAll: deleted %d sheets", len(deleted))

	out, err := uc.run(ctx, runOptions{
		mode:         sync.ModeReset,
		resetSummary: true,
		writeSummary: true,
	})
	out.DeletedSheets = deleted
	return out, err
}

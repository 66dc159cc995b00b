package usecase

import (
	"context"
	"fmt"

	"trello-sheets-sync/internal/model"
	"trello-sheets-sync/internal/sync"
	pkgLog "trello-sheets-sync/pkg/log"
)

// run is the single traversal every entry point converges on:
// boards -> lists -> cards -> stickers, strictly sequential.
// Any error aborts the run; sheets already written are left as they are.
func (uc *implUseCase) run(ctx context.Context, ro runOptions) (sync.SyncOutput, error) {
	out := sync.SyncOutput{RunID: uc.newRunID(), Mode: ro.mode, StartedAt: uc.now()}
	ctx = pkgLog.WithRunID(ctx, out.RunID)

	uc.l.Infof(ctx, "sync: starting mode=%s user=%s board_sheets=%t images=%t",
		ro.mode, uc.opts.Username, ro.boardSheets, ro.insertImages)

	if err := uc.traverse(ctx, ro, &out); err != nil {
		uc.l.Errorf(ctx, "sync: aborted after %d cards: %v", out.Cards, err)
		if flushErr := uc.sheets.Flush(ctx); flushErr != nil {
			uc.l.Warnf(ctx, "sync: flush after failure: %v", flushErr)
		}
		out.FinishedAt = uc.now()
		return out, err
	}

	if err := uc.sheets.Flush(ctx); err != nil {
		out.FinishedAt = uc.now()
		return out, fmt.Errorf("flush sheets: %w", err)
	}
	out.FinishedAt = uc.now()

	if uc.snapshots != nil && ro.writeSummary {
		key, err := uc.snapshots.SaveSnapshot(ctx, model.Snapshot{
			RunID:      out.RunID,
			Mode:       string(ro.mode),
			Username:   uc.opts.Username,
			StartedAt:  out.StartedAt,
			FinishedAt: out.FinishedAt,
			Rows:       out.Rows,
		})
		if err != nil {
			uc.l.Warnf(ctx, "sync: snapshot upload failed: %v", err)
		} else {
			out.SnapshotKey = key
		}
	}

	uc.l.Infof(ctx, "sync: done mode=%s boards=%d lists=%d cards=%d", ro.mode, out.Boards, out.Lists, out.Cards)
	return out, nil
}

func (uc *implUseCase) traverse(ctx context.Context, ro runOptions, out *sync.SyncOutput) error {
	if ro.resetSummary {
		if err := uc.sheets.ResetSummarySheet(ctx, uc.opts.SummarySheetName); err != nil {
			return fmt.Errorf("reset summary sheet: %w", err)
		}
	}

	boards, err := uc.boards.ListBoards(ctx, uc.opts.Username)
	if err != nil {
		return err
	}

	count := len(boards)
	if uc.opts.SkipLastBoard && count > 0 {
		count--
	}

	matched := false
	for _, board := range boards[:count] {
		if board.Closed {
			continue
		}
		if ro.boardFilter != "" && uc.sheets.SheetName(board.Name) != ro.boardFilter {
			continue
		}
		matched = true

		if err := uc.syncBoard(ctx, ro, board, out); err != nil {
			return err
		}
		out.Boards++
	}

	if ro.boardFilter != "" && !matched {
		return fmt.Errorf("%w: %q", sync.ErrBoardNotFound, ro.boardFilter)
	}
	return nil
}

func (uc *implUseCase) syncBoard(ctx context.Context, ro runOptions, board model.Board, out *sync.SyncOutput) error {
	lists, err := uc.boards.ListLists(ctx, board.ID)
	if err != nil {
		return err
	}
	out.Lists += len(lists)

	sheet := ""
	if ro.boardSheets {
		sheet = uc.sheets.SheetName(board.Name)
		if err := uc.sheets.CreateOrReplaceSheet(ctx, sheet); err != nil {
			return fmt.Errorf("create board sheet %q: %w", sheet, err)
		}
		if err := uc.sheets.WriteHeaderBlock(ctx, sheet, board, lists); err != nil {
			return fmt.Errorf("write header of %q: %w", sheet, err)
		}
	}

	for listIndex, list := range lists {
		cards, err := uc.boards.ListCards(ctx, list.ID)
		if err != nil {
			return err
		}
		for cardIndex, card := range cards {
			if err := uc.syncCard(ctx, ro, board, list, card, sheet, listIndex, cardIndex, out); err != nil {
				return err
			}
		}
	}

	uc.l.Debugf(ctx, "sync: board %q done (%d lists)", board.Name, len(lists))
	return nil
}

func (uc *implUseCase) syncCard(
	ctx context.Context,
	ro runOptions,
	board model.Board,
	list model.List,
	card model.Card,
	sheet string,
	listIndex, cardIndex int,
	out *sync.SyncOutput,
) error {
	stickers, err := uc.boards.ListStickers(ctx, card.ID)
	if err != nil {
		return err
	}

	row := model.CardRow(cardIndex)
	if ro.boardSheets && ro.insertImages {
		if err := uc.placeStickerImages(ctx, sheet, stickers, row, model.AnnotationColumn(listIndex)); err != nil {
			return err
		}
	}

	ann := buildAnnotation(card, stickers)
	delim := uc.opts.Delimiter

	if ro.boardSheets {
		if err := uc.sheets.WriteCardCell(ctx, sheet, row, model.CardNameColumn(listIndex), card.Name); err != nil {
			return fmt.Errorf("write card %s: %w", card.ID, err)
		}
		if err := uc.sheets.WriteCardCell(ctx, sheet, row, model.AnnotationColumn(listIndex), ann.Render(delim)); err != nil {
			return fmt.Errorf("write annotation of card %s: %w", card.ID, err)
		}
	}

	summaryRow := model.SummaryRow{
		Board:        board.Name,
		List:         list.Name,
		Card:         card.Name,
		Labels:       ann.RenderLabels(delim),
		Stickers:     ann.RenderStickers(delim),
		LastActivity: card.DateLastActivity,
		Closed:       card.Closed,
		URL:          card.ShortURL,
	}
	if ro.writeSummary {
		if err := uc.sheets.AppendSummaryRow(ctx, uc.opts.SummarySheetName, summaryRow.Values()); err != nil {
			return fmt.Errorf("append summary row for card %s: %w", card.ID, err)
		}
	}

	out.Rows = append(out.Rows, summaryRow)
	out.Cards++
	return nil
}

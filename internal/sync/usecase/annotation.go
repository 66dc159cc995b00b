package usecase

import (
	"context"
	"fmt"

	"trello-sheets-sync/internal/model"
)

// buildAnnotation collects the non-empty label names and sticker tokens of a card in source order.
func buildAnnotation(card model.Card, stickers []model.Sticker) model.Annotation {
	var ann model.Annotation
	for _, label := range card.Labels {
		if label.Name != "" {
			ann.Labels = append(ann.Labels, label.Name)
		}
	}
	for _, s := range stickers {
		if s.ImageURL != "" {
			ann.Stickers = append(ann.Stickers, s.Token())
		}
	}
	return ann
}

// FormatLabels renders the card's labels as delim-prefixed, delim-suffixed text.
func FormatLabels(card model.Card, delim string) string {
	return buildAnnotation(card, nil).RenderLabels(delim)
}

// FormatStickers renders sticker tokens the same way. Stickers without an image URL are skipped.
func FormatStickers(stickers []model.Sticker, delim string) string {
	return buildAnnotation(model.Card{}, stickers).RenderStickers(delim)
}

// placeStickerImages asks the writer to put every sticker image over the given cell.
func (uc *implUseCase) placeStickerImages(ctx context.Context, sheet string, stickers []model.Sticker, row, col int) error {
	for _, s := range stickers {
		if s.ImageURL == "" {
			continue
		}
		if err := uc.sheets.InsertImage(ctx, sheet, s.ImageURL, col, row); err != nil {
			return fmt.Errorf("insert sticker %s: %w", s.ID, err)
		}
	}
	return nil
}

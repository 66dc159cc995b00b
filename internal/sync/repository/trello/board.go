package trello

import (
	"context"
	"fmt"

	"trello-sheets-sync/internal/model"
	pkgTrello "trello-sheets-sync/pkg/trello"
)

func (r *implRepository) ListBoards(ctx context.Context, username string) ([]model.Board, error) {
	raw, err := r.client.GetBoards(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list boards of %s: %w", username, err)
	}
	r.l.Debugf(ctx, "trello: fetched %d boards for %s", len(raw), username)

	boards := make([]model.Board, 0, len(raw))
	for _, b := range raw {
		boards = append(boards, model.Board{ID: b.ID, Name: b.Name, URL: b.URL, Closed: b.Closed})
	}
	return boards, nil
}

func (r *implRepository) ListLists(ctx context.Context, boardID string) ([]model.List, error) {
	raw, err := r.client.GetLists(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list lists of board %s: %w", boardID, err)
	}

	lists := make([]model.List, 0, len(raw))
	for _, l := range raw {
		lists = append(lists, model.List{ID: l.ID, Name: l.Name, BoardID: boardID, Closed: l.Closed})
	}
	return lists, nil
}

func (r *implRepository) ListCards(ctx context.Context, listID string) ([]model.Card, error) {
	raw, err := r.client.GetCards(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list cards of list %s: %w", listID, err)
	}

	cards := make([]model.Card, 0, len(raw))
	for _, c := range raw {
		cards = append(cards, toCard(c, listID))
	}
	return cards, nil
}

func (r *implRepository) ListStickers(ctx context.Context, cardID string) ([]model.Sticker, error) {
	raw, err := r.client.GetStickers(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("list stickers of card %s: %w", cardID, err)
	}

	stickers := make([]model.Sticker, 0, len(raw))
	for _, s := range raw {
		stickers = append(stickers, model.Sticker{ID: s.ID, Image: s.Image, ImageURL: s.ImageURL})
	}
	return stickers, nil
}

func toCard(c pkgTrello.Card, listID string) model.Card {
	labels := make([]model.Label, 0, len(c.Labels))
	for _, l := range c.Labels {
		labels = append(labels, model.Label{ID: l.ID, Name: l.Name, Color: l.Color})
	}
	return model.Card{
		ID:               c.ID,
		Name:             c.Name,
		Labels:           labels,
		DateLastActivity: c.DateLastActivity,
		Closed:           c.Closed,
		ShortURL:         c.ShortURL,
		ListID:           listID,
	}
}

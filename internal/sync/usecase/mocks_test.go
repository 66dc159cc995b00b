package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"trello-sheets-sync/internal/model"
	"trello-sheets-sync/internal/sync/repository"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockBoardRepo serves a fixed account and records every remote call.
type mockBoardRepo struct {
	boards   []model.Board
	lists    map[string][]model.List
	cards    map[string][]model.Card
	stickers map[string][]model.Sticker
	failOn   string // call that returns an error, e.g. "cards:l2"
	calls    []string
}

func (m *mockBoardRepo) record(call string) error {
	m.calls = append(m.calls, call)
	if call == m.failOn {
		return fmt.Errorf("remote failure on %s", call)
	}
	return nil
}

func (m *mockBoardRepo) ListBoards(ctx context.Context, username string) ([]model.Board, error) {
	if err := m.record("boards:" + username); err != nil {
		return nil, err
	}
	return m.boards, nil
}

func (m *mockBoardRepo) ListLists(ctx context.Context, boardID string) ([]model.List, error) {
	if err := m.record("lists:" + boardID); err != nil {
		return nil, err
	}
	return m.lists[boardID], nil
}

func (m *mockBoardRepo) ListCards(ctx context.Context, listID string) ([]model.Card, error) {
	if err := m.record("cards:" + listID); err != nil {
		return nil, err
	}
	return m.cards[listID], nil
}

func (m *mockBoardRepo) ListStickers(ctx context.Context, cardID string) ([]model.Sticker, error) {
	if err := m.record("stickers:" + cardID); err != nil {
		return nil, err
	}
	return m.stickers[cardID], nil
}

type cellKey struct {
	sheet    string
	row, col int
}

type image struct {
	sheet    string
	url      string
	col, row int
}

// memSheets is an in-memory SheetWriter.
type memSheets struct {
	order     []string
	summary   map[string][][]any
	cells     map[cellKey]string
	headers   map[string]model.Board
	images    []image
	active    string
	activeErr error
	flushes   int
}

func newMemSheets(initial ...string) *memSheets {
	return &memSheets{
		order:   append([]string{}, initial...),
		summary: map[string][][]any{},
		cells:   map[cellKey]string{},
		headers: map[string]model.Board{},
	}
}

func (m *memSheets) has(name string) bool {
	for _, n := range m.order {
		if n == name {
			return true
		}
	}
	return false
}

func (m *memSheets) SheetName(boardName string) string { return boardName }

func (m *memSheets) ResetSummarySheet(ctx context.Context, name string) error {
	if !m.has(name) {
		m.order = append(m.order, name)
	}
	m.summary[name] = [][]any{{"Board", "List", "Card", "Labels", "Stickers", "Last Activity", "Closed", "URL", "", ""}}
	return nil
}

func (m *memSheets) CreateOrReplaceSheet(ctx context.Context, name string) error {
	_ = m.DeleteSheet(ctx, name)
	m.order = append(m.order, name)
	return nil
}

func (m *memSheets) WriteHeaderBlock(ctx context.Context, sheet string, board model.Board, lists []model.List) error {
	m.headers[sheet] = board
	return nil
}

func (m *memSheets) WriteCardCell(ctx context.Context, sheet string, row, col int, text string) error {
	m.cells[cellKey{sheet, row, col}] = text
	return nil
}

func (m *memSheets) AppendSummaryRow(ctx context.Context, sheet string, values []any) error {
	if _, ok := m.summary[sheet]; !ok {
		return errors.New("summary sheet missing")
	}
	m.summary[sheet] = append(m.summary[sheet], values)
	return nil
}

func (m *memSheets) InsertImage(ctx context.Context, sheet, url string, col, row int) error {
	m.images = append(m.images, image{sheet: sheet, url: url, col: col, row: row})
	return nil
}

func (m *memSheets) StyleRange(ctx context.Context, sheet string, rng model.Range, style model.Style) error {
	return nil
}

func (m *memSheets) ListSheets(ctx context.Context) ([]string, error) {
	return append([]string{}, m.order...), nil
}

func (m *memSheets) DeleteSheet(ctx context.Context, name string) error {
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			delete(m.summary, name)
			return nil
		}
	}
	return nil
}

func (m *memSheets) ActiveSheet(ctx context.Context) (string, error) {
	return m.active, m.activeErr
}

func (m *memSheets) Flush(ctx context.Context) error {
	m.flushes++
	return nil
}

var _ repository.SheetWriter = (*memSheets)(nil)

type mockSnapshots struct {
	saved []model.Snapshot
	err   error
}

func (m *mockSnapshots) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, snapshot)
	return "snapshots/" + snapshot.RunID + ".yaml", nil
}

// ── Fixtures ───────────────────────────────────────────────────────────────

// scenarioRepo is the single-board account used throughout the tests.
func scenarioRepo() *mockBoardRepo {
	return &mockBoardRepo{
		boards: []model.Board{{ID: "b1", Name: "Proj", URL: "http://x/b1"}},
		lists:  map[string][]model.List{"b1": {{ID: "l1", Name: "Todo", BoardID: "b1"}}},
		cards: map[string][]model.Card{"l1": {{
			ID:               "c1",
			Name:             "Fix bug",
			Labels:           []model.Label{{Name: "urgent"}},
			DateLastActivity: "2024-01-01",
			ShortURL:         "http://x/c1",
		}}},
		stickers: map[string][]model.Sticker{},
	}
}

// multiBoardRepo has two open boards, one closed board, and closed cards.
func multiBoardRepo() *mockBoardRepo {
	return &mockBoardRepo{
		boards: []model.Board{
			{ID: "b1", Name: "Proj", URL: "http://x/b1"},
			{ID: "b2", Name: "Archive", Closed: true},
			{ID: "b3", Name: "Ops", URL: "http://x/b3"},
		},
		lists: map[string][]model.List{
			"b1": {{ID: "l1", Name: "Todo"}, {ID: "l2", Name: "Done"}},
			"b2": {{ID: "l9", Name: "Old"}},
			"b3": {{ID: "l3", Name: "Backlog"}},
		},
		cards: map[string][]model.Card{
			"l1": {
				{ID: "c1", Name: "Fix bug", Labels: []model.Label{{Name: "urgent"}, {Name: ""}, {Name: "bug"}}},
				{ID: "c2", Name: "Plain"},
			},
			"l2": {{ID: "c3", Name: "Shipped", Closed: true}},
			"l9": {{ID: "c9", Name: "Never synced"}},
			"l3": {{ID: "c4", Name: "Rotate keys"}},
		},
		stickers: map[string][]model.Sticker{
			"c2": {
				{ID: "s1", ImageURL: "https://trello.com/stickers/taco-cool.png"},
				{ID: "s2"},
				{ID: "s3", ImageURL: "https://trello.com/stickers/check.png"},
			},
		},
	}
}

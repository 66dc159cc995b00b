package model_test

import (
	"testing"

	"trello-sheets-sync/internal/model"
)

func TestAnnotation(t *testing.T) {
	t.Run("Empty renders nothing", func(t *testing.T) {
		a := model.Annotation{}
		if !a.IsEmpty() {
			t.Errorf("expected empty annotation")
		}
		if got := a.Render(model.DefaultDelimiter); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("Labels then stickers", func(t *testing.T) {
		a := model.Annotation{Labels: []string{"urgent", "bug"}, Stickers: []string{"star.png"}}
		if got := a.RenderLabels("|+|"); got != "|+|urgent|+|bug|+|" {
			t.Errorf("unexpected labels: %q", got)
		}
		if got := a.RenderStickers("|+|"); got != "|+|star.png|+|" {
			t.Errorf("unexpected stickers: %q", got)
		}
		if got := a.Render("|+|"); got != "|+|urgent|+|bug|+||+|star.png|+|" {
			t.Errorf("unexpected render: %q", got)
		}
	})
}

func TestStickerToken(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{url: "https://trello.com/images/stickers/taco-cool.png", want: "taco-cool.png"},
		{url: "no-slash.png", want: "no-slash.png"},
		{url: "http://x/dir/", want: ""},
		{url: "", want: ""},
	}
	for _, tc := range cases {
		if got := (model.Sticker{ImageURL: tc.url}).Token(); got != tc.want {
			t.Errorf("Token(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestLayout(t *testing.T) {
	if model.CardNameColumn(0) != 1 || model.AnnotationColumn(0) != 2 {
		t.Errorf("unexpected first list columns")
	}
	if model.CardNameColumn(2) != 5 || model.AnnotationColumn(2) != 6 {
		t.Errorf("unexpected third list columns")
	}
	if model.CardRow(0) != 4 {
		t.Errorf("cards must start on row 4")
	}
}

func TestSummaryRowValues(t *testing.T) {
	row := model.SummaryRow{Board: "Proj", List: "Todo", Card: "Fix bug", Labels: "|+|urgent|+|", LastActivity: "2024-01-01", URL: "http://x/c1"}
	values := row.Values()
	if len(values) != model.SummaryRowWidth {
		t.Fatalf("expected %d values, got %d", model.SummaryRowWidth, len(values))
	}
	if values[6] != false {
		t.Errorf("closed flag must be surfaced verbatim, got %v", values[6])
	}
}

package model

import "strings"

// DefaultDelimiter separates label names and sticker tokens in rendered annotations.
const DefaultDelimiter = "|+|"

// Annotation is the structured form of a card's labels and sticker tokens.
type Annotation struct {
	Labels   []string
	Stickers []string
}

// IsEmpty reports whether there is nothing to render.
func (a Annotation) IsEmpty() bool {
	return len(a.Labels) == 0 && len(a.Stickers) == 0
}

// RenderLabels renders only the label part.
func (a Annotation) RenderLabels(delim string) string {
	return joinDelimited(a.Labels, delim)
}

// RenderStickers renders only the sticker part.
func (a Annotation) RenderStickers(delim string) string {
	return joinDelimited(a.Stickers, delim)
}

// Render concatenates the label and sticker parts the way the per-board sheet shows them.
func (a Annotation) Render(delim string) string {
	return a.RenderLabels(delim) + a.RenderStickers(delim)
}

// joinDelimited returns delim + join(items, delim) + delim, or "" for no items.
func joinDelimited(items []string, delim string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(delim)
	for _, item := range items {
		b.WriteString(item)
		b.WriteString(delim)
	}
	return b.String()
}

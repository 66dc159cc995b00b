package model

import "strings"

// Board is a Trello board as returned by GET /members/{user}/boards.
type Board struct {
	ID     string
	Name   string
	URL    string
	Closed bool
}

// List is an ordered column within a board.
type List struct {
	ID      string
	Name    string
	BoardID string
	Closed  bool
}

// Card is a single work item within a list.
type Card struct {
	ID               string
	Name             string
	Labels           []Label
	DateLastActivity string // passed through verbatim from Trello
	Closed           bool
	ShortURL         string
	ListID           string
}

// Label is a named tag attached to a card. Name may be empty.
type Label struct {
	ID    string
	Name  string
	Color string
}

// Sticker is a decorative image attached to a card.
type Sticker struct {
	ID       string
	Image    string
	ImageURL string
}

// Token returns the trailing path segment of the sticker image URL,
// or "" when the sticker has no image URL.
func (s Sticker) Token() string {
	if s.ImageURL == "" {
		return ""
	}
	return s.ImageURL[strings.LastIndex(s.ImageURL, "/")+1:]
}

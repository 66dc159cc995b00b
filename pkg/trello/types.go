package trello

// Board is the Trello board object.
type Board struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Closed bool   `json:"closed"`
}

// List is the Trello list object.
type List struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BoardID string `json:"idBoard"`
	Closed  bool   `json:"closed"`
}

// Label is a label attached to a card.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Card is the Trello card object.
type Card struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Labels           []Label `json:"labels"`
	DateLastActivity string  `json:"dateLastActivity"`
	Closed           bool    `json:"closed"`
	ShortURL         string  `json:"shortUrl"`
	ListID           string  `json:"idList"`
}

// Sticker is a sticker placed on a card.
type Sticker struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	ImageURL string `json:"imageUrl"`
}

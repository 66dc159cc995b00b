package model

// SummaryColumns are the header cells of the summary sheet. The two trailing
// blanks are spacer columns.
var SummaryColumns = []string{"Board", "List", "Card", "Labels", "Stickers", "Last Activity", "Closed", "URL", "", ""}

// SummaryColumnWidths are the pixel widths of SummaryColumns.
var SummaryColumnWidths = []int{120, 180, 300, 180, 150, 150, 80, 150, 100, 100}

// SummaryRowWidth is the number of populated cells in a summary row.
const SummaryRowWidth = 8

// SummaryRow is one denormalized row per card.
type SummaryRow struct {
	Board        string `json:"board" yaml:"board"`
	List         string `json:"list" yaml:"list"`
	Card         string `json:"card" yaml:"card"`
	Labels       string `json:"labels" yaml:"labels"`
	Stickers     string `json:"stickers" yaml:"stickers"`
	LastActivity string `json:"last_activity" yaml:"last_activity"`
	Closed       bool   `json:"closed" yaml:"closed"`
	URL          string `json:"url" yaml:"url"`
}

// Values returns the row cells in summary column order.
func (r SummaryRow) Values() []any {
	return []any{r.Board, r.List, r.Card, r.Labels, r.Stickers, r.LastActivity, r.Closed, r.URL}
}

package model

// Style is a foreground/background/font-size triple applied to a cell range.
type Style struct {
	Foreground string
	Background string
	FontSize   int
}

// Range is a rectangular block of cells, 1-based and inclusive.
type Range struct {
	Row     int
	Column  int
	Rows    int
	Columns int
}

var (
	SummaryHeaderStyle = Style{Foreground: "black", Background: "#c9daf8", FontSize: 14}
	BoardTitleStyle    = Style{Foreground: "black", Background: "white", FontSize: 12}
	ListHeaderStyle    = Style{Foreground: "black", Background: "#c9daf8", FontSize: 14}
	ListSubHeaderStyle = Style{Foreground: "black", Background: "#c9daf8", FontSize: 11}
)

package model

// Per-board sheet layout. Rows and columns are 1-based.
const (
	BoardTitleRow     = 1
	BoardURLColumn    = 3
	ListHeaderRow     = 2
	ListSubHeaderRow  = 3
	FirstCardRow      = 4
	ColumnsPerList    = 2
	BoardColumnWidth  = 150
	CardNameSubHeader = "Card Name"
	AnnotationHeader  = "Labels&Stickers"
)

// CardNameColumn returns the column holding card names for the list at listIndex.
func CardNameColumn(listIndex int) int {
	return 1 + listIndex*ColumnsPerList
}

// AnnotationColumn returns the column holding annotations for the list at listIndex.
func AnnotationColumn(listIndex int) int {
	return 2 + listIndex*ColumnsPerList
}

// CardRow returns the sheet row of the card at cardIndex within its list.
func CardRow(cardIndex int) int {
	return FirstCardRow + cardIndex
}

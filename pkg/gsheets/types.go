package gsheets

// Config selects the spreadsheet and write pacing.
type Config struct {
	SpreadsheetID string
	TokenPath     string  // OAuth desktop token, default "token.json"
	RateLimit     float64 // write requests per second, 0 disables pacing
}

// SheetInfo is a simplified view of a sheet's properties.
type SheetInfo struct {
	ID    int64
	Title string
	Index int64
}

// GridRange addresses a block of cells, 0-based with exclusive ends like the Sheets API.
type GridRange struct {
	SheetID     int64
	StartRow    int64
	EndRow      int64
	StartColumn int64
	EndColumn   int64
}

// CellFormat is the subset of formatting the sync writes.
type CellFormat struct {
	Foreground string
	Background string
	FontSize   int64
	Wrap       bool
}

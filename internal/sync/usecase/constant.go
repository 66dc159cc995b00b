package usecase

// DefaultSummarySheetName is the summary sheet title used when none is configured.
const DefaultSummarySheetName = "Trello"

package sync

import "context"

// UseCase drives the board -> list -> card -> sticker traversal and renders
// it into the spreadsheet. Every entry point is the same pipeline with a
// different set of stages enabled. Runs on one UseCase never overlap.
type UseCase interface {
	// Sync runs the pipeline with the configured flags (board sheets, sticker images).
	Sync(ctx context.Context) (SyncOutput, error)

	// SyncAll resets the summary sheet and regenerates every open board's sheet.
	SyncAll(ctx context.Context) (SyncOutput, error)

	// SyncSummary resets and refills the summary sheet only.
	SyncSummary(ctx context.Context) (SyncOutput, error)

	// SyncBoard regenerates the sheet of a single board. It refuses to run
	// against the summary sheet.
	SyncBoard(ctx context.Context, input SyncBoardInput) (SyncOutput, error)

	// ResetAll deletes every sheet except the summary sheet and refills the summary.
	ResetAll(ctx context.Context) (SyncOutput, error)
}

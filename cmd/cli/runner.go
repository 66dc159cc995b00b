package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"trello-sheets-sync/internal/sync"
	"trello-sheets-sync/pkg/log"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	uc     sync.UseCase
	logger log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	UseCase sync.UseCase
	Logger  log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.NewNop()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Runner{
		uc:     opts.UseCase,
		logger: opts.Logger,
		output: opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		syncCommand, summaryCommand, allCommand, boardCommand, resetCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Sync runs with the configured board-sheet and sticker flags.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	return r.report(ctx, cmd)(r.uc.Sync(ctx))
}

// Summary refills the summary sheet only.
func (r *Runner) Summary(ctx context.Context, cmd *cli.Command) error {
	return r.report(ctx, cmd)(r.uc.SyncSummary(ctx))
}

// All refills the summary sheet and every board sheet.
func (r *Runner) All(ctx context.Context, cmd *cli.Command) error {
	return r.report(ctx, cmd)(r.uc.SyncAll(ctx))
}

// Board regenerates a single board sheet.
func (r *Runner) Board(ctx context.Context, cmd *cli.Command) error {
	return r.report(ctx, cmd)(r.uc.SyncBoard(ctx, sync.SyncBoardInput{SheetName: cmd.String("sheet")}))
}

// Reset deletes every board sheet and refills the summary sheet.
func (r *Runner) Reset(ctx context.Context, cmd *cli.Command) error {
	return r.report(ctx, cmd)(r.uc.ResetAll(ctx))
}

// report prints the outcome of a run. Selecting the wrong sheet is a user
// mistake, not a failure: it is printed as a warning and the command exits 0.
func (r *Runner) report(ctx context.Context, cmd *cli.Command) func(sync.SyncOutput, error) error {
	return func(out sync.SyncOutput, err error) error {
		switch {
		case errors.Is(err, sync.ErrSummarySheetActive):
			r.logger.Warn(ctx, "Select 'Update Main Sheet' option or activate correct board sheet")
			return r.writePlain("warning: the summary sheet cannot be synced as a board; run `summary` or pass --sheet with a board sheet name\n")
		case errors.Is(err, sync.ErrNoSheetSelected):
			r.logger.Warn(ctx, "No board sheet selected")
			return r.writePlain("warning: this sheet backend has no active sheet; pass --sheet\n")
		case errors.Is(err, sync.ErrBoardNotFound):
			r.logger.Warnf(ctx, "%v", err)
			return r.writePlain("warning: %v\n", err)
		case err != nil:
			return err
		}

		if cmd.Bool("json") {
			return r.writeJSON(out, cmd.Bool("pretty"))
		}
		if err := r.writePlain("run %s (%s): %d boards, %d lists, %d cards\n", out.RunID, out.Mode, out.Boards, out.Lists, out.Cards); err != nil {
			return err
		}
		if len(out.DeletedSheets) > 0 {
			if err := r.writePlain("deleted sheets: %v\n", out.DeletedSheets); err != nil {
				return err
			}
		}
		if out.SnapshotKey != "" {
			return r.writePlain("snapshot: %s\n", out.SnapshotKey)
		}
		return nil
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

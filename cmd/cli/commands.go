package main

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print the run result as JSON, rows included",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

// syncCommand runs with the configured options, like a scheduled trigger would.
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "sync",
		Usage:  "Sync using sync.add_board_sheets and sync.insert_card_stickers",
		Flags:  outputFlags(),
		Action: r.Sync,
	}
}

func summaryCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "summary",
		Aliases: []string{"main"},
		Usage:   "Update the summary sheet only",
		Flags:   outputFlags(),
		Action:  r.Summary,
	}
}

func allCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "all",
		Usage:  "Update the summary sheet and every board sheet",
		Flags:  outputFlags(),
		Action: r.All,
	}
}

func boardCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Update a single board sheet",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "sheet",
				Aliases: []string{"s"},
				Usage:   "Board sheet name (defaults to the workbook's active sheet)",
			},
		}, outputFlags()...),
		Action: r.Board,
	}
}

func resetCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "reset",
		Usage:  "Delete every board sheet and update the summary sheet",
		Flags:  outputFlags(),
		Action: r.Reset,
	}
}

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/postings/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively (TUI)",
	Long:  "Opens the split-pane browser: search, date range and sort on the left, applied jobs on the right.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Startup errors go to stdout before the alt screen starts. The board gets
	// a discard logger since any output once the TUI owns the terminal
	// corrupts the display.
	logger := setupLogger(debug)
	silentLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg, board, cleanup := setupBoard(logger, silentLogger)
	defer cleanup()

	err := browse.Run(board, browse.Options{
		Sort:          cfg.Display.DefaultSort,
		Locale:        cfg.Display.Locale,
		RelativeDates: cfg.Display.RelativeDates,
	})
	if err != nil {
		logger.Error("browser failed", "error", err)
		cleanup()
		os.Exit(1)
	}
	return nil
}

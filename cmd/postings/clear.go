package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/amishk599/postings/internal/listing"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all applied jobs",
	Long:  "Empties the applied list after asking for confirmation. Use --yes to skip the prompt.",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}

// promptConfirmer asks on the terminal; a prompt error counts as "no".
type promptConfirmer struct{}

func (promptConfirmer) Confirm(prompt string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(prompt)
	return err == nil && ok
}

func runClear(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	_, board, cleanup := setupBoard(logger, logger)
	defer cleanup()

	var confirmer listing.Confirmer = promptConfirmer{}
	if clearYes {
		confirmer = listing.ConfirmFunc(func(string) bool { return true })
	}

	cleared, err := board.ClearAll(confirmer)
	if err != nil {
		return fmt.Errorf("clearing applied jobs: %w", err)
	}
	if !cleared {
		logger.Info("nothing cleared")
		return nil
	}
	logger.Info("cleared applied jobs")
	return nil
}

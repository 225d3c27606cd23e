package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/amishk599/postings/internal/browse"
)

var appliedCmd = &cobra.Command{
	Use:   "applied",
	Short: "List the jobs you applied to",
	RunE:  runApplied,
}

func init() {
	rootCmd.AddCommand(appliedCmd)
}

func runApplied(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	cfg, board, cleanup := setupBoard(logger, logger)
	defer cleanup()

	view := board.View(listingCriteria(cfg))
	if len(view.Stale) > 0 {
		pterm.Warning.Printfln("%d applied id(s) do not match any job: %v", len(view.Stale), view.Stale)
	}

	list := browse.NewAppliedListView(view.Applied)
	if list.Empty() {
		fmt.Println(browse.NoAppliedMessage)
		return nil
	}

	data := pterm.TableData{{"ID", "Title", "Description"}}
	for _, r := range list.Rows {
		data = append(data, []string{strconv.Itoa(r.ID), r.Title, r.Description})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	fmt.Printf("\nTotal: %d applied\n", len(list.Rows))
	return nil
}

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/amishk599/postings/internal/browse"
	"github.com/amishk599/postings/internal/filter"
	"github.com/amishk599/postings/internal/model"
)

var (
	listQuery string
	listSort  string
	listFrom  string
	listTo    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered and sorted job listing",
	Long:  "Applies the same search, date range and sort as the browser and prints the result as a table.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "case-insensitive search over title and description")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort mode: newest, title, title_desc (default from config)")
	listCmd.Flags().StringVar(&listFrom, "from", "", "only jobs added on or after this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "only jobs added on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	cfg, board, cleanup := setupBoard(logger, logger)
	defer cleanup()

	criteria := listingCriteria(cfg)
	criteria.Query = listQuery
	if listSort != "" {
		criteria.Sort = model.SortMode(listSort)
		if !criteria.Sort.Valid() {
			return fmt.Errorf("invalid --sort %q: want newest, title or title_desc", listSort)
		}
	}
	if err := validateDateFlags(listFrom, listTo); err != nil {
		return err
	}
	criteria.From, criteria.To = listFrom, listTo

	view := board.View(criteria)
	logger.Debug("derived listing", "query", criteria.Query, "sort", criteria.Sort, "jobs", len(view.Jobs))

	if len(view.Jobs) == 0 {
		pterm.Info.Println(browse.NoMatchesMessage)
		return nil
	}

	now := time.Now()
	data := pterm.TableData{{"ID", "Title", "Description", "Added", "Applied"}}
	for _, j := range view.Jobs {
		row := browse.NewRowView(j, view.IsApplied(j.ID), now, cfg.Display.RelativeDates)
		mark := ""
		if !row.Apply.Enabled {
			mark = "✓"
		}
		data = append(data, []string{strconv.Itoa(row.ID), row.Title, row.Description, row.Added, mark})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	fmt.Printf("\n%d of %d jobs (sorted by %s)\n", len(view.Jobs), len(board.Jobs()), criteria.Sort.Label())
	return nil
}

// validateDateFlags rejects malformed --from/--to values, checking --from
// first. Empty values are allowed.
func validateDateFlags(from, to string) error {
	flags := []struct{ name, value string }{
		{"--from", from},
		{"--to", to},
	}
	for _, f := range flags {
		if _, ok := filter.ParseDate(f.value); f.value != "" && !ok {
			return fmt.Errorf("invalid %s %q: want YYYY-MM-DD", f.name, f.value)
		}
	}
	return nil
}

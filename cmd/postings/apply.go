package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>...",
	Short: "Mark jobs as applied",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runApply,
}

var unapplyCmd = &cobra.Command{
	Use:   "unapply <job-id>...",
	Short: "Remove jobs from the applied list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUnapply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(unapplyCmd)
}

func parseJobIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid job id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	return mutateJobs(args, "applied", func(b boardMutator, id int) error { return b.Apply(id) })
}

func runUnapply(cmd *cobra.Command, args []string) error {
	return mutateJobs(args, "unapplied", func(b boardMutator, id int) error { return b.Unapply(id) })
}

type boardMutator interface {
	Apply(id int) error
	Unapply(id int) error
	IsApplied(id int) bool
}

func mutateJobs(args []string, verb string, fn func(b boardMutator, id int) error) error {
	ids, err := parseJobIDs(args)
	if err != nil {
		return err
	}

	logger := setupLogger(debug)
	_, board, cleanup := setupBoard(logger, logger)
	defer cleanup()

	for _, id := range ids {
		before := board.IsApplied(id)
		if err := fn(board, id); err != nil {
			if missing, ok := jobNotFound(err); ok {
				return fmt.Errorf("no job with id %d", missing)
			}
			return fmt.Errorf("%s %d: %w", verb, id, err)
		}
		switch {
		case board.IsApplied(id) != before:
			logger.Info(verb, "job", describeJob(board, id), "applied", board.Applied().Len())
		case !knownJob(board, id):
			logger.Warn("no job with this id, nothing "+verb, "job_id", id)
		default:
			logger.Info("already "+verb, "job", describeJob(board, id))
		}
	}
	return nil
}

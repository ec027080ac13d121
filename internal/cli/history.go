package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cube"
	"github.com/behrlich/cubecost/internal/store"
)

// addHistoryFlag registers the --history flag shared by solve and twist.
// Recording is opt-in: commands only touch the store when a path is given.
func addHistoryFlag(cmd *cobra.Command) {
	cmd.Flags().String("history", "", "Append this solve to a SQLite history file at the given path")
}

// recordHistory stores a solve if --history names a path; it is a no-op
// otherwise. Failures are returned so the caller can decide how loud to be.
func recordHistory(cmd *cobra.Command, scramble, algorithm, evalName string, solution []cube.Move, cost time.Duration) error {
	path, _ := cmd.Flags().GetString("history")
	if path == "" {
		return nil
	}

	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Record(store.Solve{
		Scramble:   scramble,
		Algorithm:  algorithm,
		Evaluator:  evalName,
		Solution:   cube.FormatSequence(solution),
		MoveCount:  len(solution),
		CostMillis: cost.Milliseconds(),
	})
	return err
}

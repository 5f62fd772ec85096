package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/log"
	"github.com/coderelay/mcpsync/internal/strategy"
	"github.com/coderelay/mcpsync/internal/util"
)

func init() {
	var table bool

	strategyCmd := &cobra.Command{
		Use:   "strategy [blobCount]",
		Short: "Show the upload strategy picked for a blob count",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if table || len(args) == 0 {
				util.PrettyPrintJSON(strategyTable())
				return
			}
			blobCount, err := strconv.Atoi(args[0])
			if err != nil {
				log.Error("Blob count must be an integer", zap.String("arg", args[0]))
				os.Exit(1)
			}
			util.PrettyPrintJSON(displayStrategy(strategy.Select(blobCount)))
		},
	}
	strategyCmd.Flags().BoolVar(&table, "table", false, "Show all tiers instead of one")
	rootCmd.AddCommand(strategyCmd)
}

// displayStrategy renders Timeout as a duration string instead of
// nanoseconds.
func displayStrategy(s strategy.UploadStrategy) map[string]any {
	return map[string]any{
		"scale":       s.Scale,
		"batch-size":  s.BatchSize,
		"concurrency": s.Concurrency,
		"timeout":     s.Timeout.String(),
	}
}

func strategyTable() map[string]any {
	t := make(map[string]any)
	for _, s := range strategy.Tiers() {
		t[s.Scale] = displayStrategy(s)
	}
	return t
}

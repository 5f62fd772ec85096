package main

import (
	"bufio"
	"os"
	"strings"

	zappretty "github.com/maoueh/zap-pretty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/log"
	"github.com/coderelay/mcpsync/internal/util"
)

func init() {
	var lines int

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show the tail of the upload log file",
		Run: func(cmd *cobra.Command, args []string) {
			logFile := getConfig().Log.File
			if logFile == "" {
				log.Error("No log file configured")
				os.Exit(1)
			}
			f, err := os.Open(logFile)
			if err != nil {
				log.Error("Failed to open log file",
					zap.String("logFile", logFile),
					zap.Error(err))
				os.Exit(1)
			}
			defer f.Close()

			tail, err := util.TailLines(f, lines)
			if err != nil {
				log.Error("Failed to read log file",
					zap.String("logFile", logFile),
					zap.Error(err))
				os.Exit(1)
			}

			scanner := bufio.NewScanner(strings.NewReader(strings.Join(tail, "\n")))
			processor := zappretty.NewProcessor(scanner, os.Stdout)
			processor.Process()
		},
	}
	logCmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of log lines to show")
	rootCmd.AddCommand(logCmd)
}

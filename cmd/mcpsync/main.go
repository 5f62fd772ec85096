package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcpsync",
	Short: "mcpsync syncs project files to an MCP context server",
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		// The binary is often invoked with argv meant for a larger host
		// process. Flags we do not know are not ours to reject.
		UnknownFlags: true,
	},
}

func main() {
	// The whitelist is per-command in cobra, not inherited.
	for _, c := range rootCmd.Commands() {
		c.FParseErrWhitelist = rootCmd.FParseErrWhitelist
	}
	rootCmd.Execute()
}

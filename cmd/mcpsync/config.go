package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/coderelay/mcpsync/internal/util"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Run: func(cmd *cobra.Command, args []string) {
			display := *getConfig()
			display.Token = maskToken(display.Token)
			util.PrettyPrintJSONFlatten(display)
		},
	}
	rootCmd.AddCommand(configCmd)
}

// maskToken keeps enough of the credential to recognize it and no more.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-4)
}

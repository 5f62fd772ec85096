package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/client"
	"github.com/coderelay/mcpsync/internal/log"
	"github.com/coderelay/mcpsync/internal/notify"
)

func init() {
	var wait time.Duration

	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the sync endpoint answers with this configuration",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := getConfig()
			c := newClient()

			// The channel never consults enable-log itself; callers bind
			// a host only when diagnostics are wanted. Unbound sends are
			// silent no-ops.
			notifier := notify.NewChannel()
			if cfg.EnableLog {
				notifier.Bind(notify.NewStdioHost(cmd.OutOrStdout(), "mcpsync"))
			}
			notifier.Send(notify.LevelInfo, "checking sync endpoint "+cfg.BaseURL)

			var resp *client.PingResponse
			var err error
			if wait > 0 {
				resp, err = c.WaitReachable(cmd.Context(), wait)
			} else {
				resp, err = c.CallPing()
			}
			if err != nil {
				notifier.Send(notify.LevelError, "sync endpoint is not reachable: "+err.Error())
				notifier.Close()
				log.Error("Sync endpoint is not reachable", zap.Error(err))
				os.Exit(1)
			}
			notifier.Send(notify.LevelInfo, "sync endpoint is reachable")
			notifier.Close()
			log.Info("Sync endpoint is reachable", zap.Object("response", resp))
		},
	}
	pingCmd.Flags().DurationVar(&wait, "wait", 0,
		"Keep polling until the endpoint answers or this duration passes")
	rootCmd.AddCommand(pingCmd)
}

package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/client"
	"github.com/coderelay/mcpsync/internal/config"
	"github.com/coderelay/mcpsync/internal/log"
	"github.com/coderelay/mcpsync/internal/strategy"
)

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"(env: MCPSYNC_CONFIG)  Config file path, if not specified, will try to load from "+config.DefaultConfigPath)
	config.AddFlags(rootCmd.PersistentFlags())
}

var store = config.NewStore()

// getConfig must be called in a command execute. Otherwise flags are not initialized yet.
func getConfig() *config.Config {
	if cfg, err := store.Get(); err == nil {
		return cfg
	}
	configFile := os.Getenv("MCPSYNC_CONFIG")
	if rootCmd.PersistentFlags().Lookup("config").Value.String() != "" {
		configFile = rootCmd.PersistentFlags().Lookup("config").Value.String()
	}
	cfg, err := store.InitFromFlagSet(configFile, rootCmd.PersistentFlags())
	if err != nil {
		log.Error("Failed to load config", zap.Error(err))
		os.Exit(1)
	}
	if cfg.EnableLog {
		if err := log.SetupJSONLogging(cfg.Log); err != nil {
			log.Warn("Failed to set up file logging", zap.Error(err))
		}
	} else if err := log.SetLevel(cfg.Log.Level); err != nil {
		log.Warn("Invalid log level", zap.String("level", cfg.Log.Level), zap.Error(err))
	}
	return cfg
}

// newClient must be called in a command execute. Otherwise flags are not initialized yet.
func newClient() *client.Client {
	cfg := getConfig()
	return client.New(client.Config{
		BaseURL: cfg.BaseURL,
		Token:   cfg.Token,
		Timeout: strategy.Select(0).Timeout,
	})
}

package log

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls the local diagnostic log. It is unrelated to the
// enable-log switch, which gates notifications to the MCP host.
type Config struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

func DefaultConfig(workDir string) Config {
	return Config{
		File:  filepath.Join(workDir, "mcpsync.log"),
		Level: "info",
	}
}

// SetupJSONLogging switches the global logger to production JSON output
// written to cfg.File. Used when the process runs unattended under an
// MCP host, where stderr may be discarded.
func SetupJSONLogging(cfg Config) error {
	parsedLevel, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	// zap sinks do not create parent directories.
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(parsedLevel)
	zapConfig.Encoding = "json"
	zapConfig.OutputPaths = []string{cfg.File}
	l, err := zapConfig.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

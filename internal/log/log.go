package log

import (
	"os"
	"time"

	prettyconsole "github.com/thessem/zap-prettyconsole"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	// readableLevel is shared by every readable-mode core so the config
	// layer can lower or raise the threshold after flags are parsed.
	readableLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// SetupReadableLogging directs logs to stderr in a human-readable form,
// the mode interactive commands run in. Stdout is never logged to: an
// MCP-spawned process owns it for protocol traffic.
func SetupReadableLogging() {
	ec := prettyconsole.NewEncoderConfig()
	ec.EncodeTime = prettyconsole.DefaultTimeEncoder(time.DateTime)
	enc := prettyconsole.NewEncoder(ec)
	logger = zap.New(zapcore.NewCore(enc, os.Stderr, readableLevel))
}

func init() {
	SetupReadableLogging()
}

// SetLevel adjusts the readable-mode threshold in place. JSON file
// logging carries its own level and is unaffected.
func SetLevel(level string) error {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	readableLevel.SetLevel(parsed)
	return nil
}

func Named(name string) *zap.Logger {
	return logger.Named(name)
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/coderelay/mcpsync/internal/log"
)

// Config is the validated, process-wide configuration of the sync client.
// It is created once by a Store and must be treated as read-only afterwards.
type Config struct {
	// BaseURL of the ingestion endpoint. Always carries an http:// or
	// https:// prefix and never ends with a slash.
	BaseURL string `json:"base-url"`
	// Token is the opaque credential presented to the endpoint.
	Token string `json:"token"`
	// EnableLog gates whether callers forward diagnostics to the MCP host.
	// The notification channel itself does not consult it.
	EnableLog bool `json:"enable-log"`

	// BatchSize is the static upload batch size for callers that do not
	// use adaptive strategy selection. Always DefaultBatchSize.
	BatchSize int `json:"batch-size"`
	// MaxLinesPerBlob is the chunking threshold for splitting file content
	// into blobs. Always DefaultMaxLinesPerBlob.
	MaxLinesPerBlob int `json:"max-lines-per-blob"`

	TextExtensions  []string `json:"text-extensions"`
	ExcludePatterns []string `json:"exclude-patterns"`

	Log log.Config `json:"log"`

	textExts map[string]struct{}
}

// IsTextExtension reports whether ext (dot-prefixed, case-sensitive) is a
// recognized text extension.
func (c *Config) IsTextExtension(ext string) bool {
	_, ok := c.textExts[ext]
	return ok
}

// IsTextFile reports whether path's extension is a recognized text extension.
func (c *Config) IsTextFile(path string) bool {
	return c.IsTextExtension(filepath.Ext(path))
}

// IsExcluded reports whether any exclude pattern matches path's base name
// or the path itself. Patterns are independent; order never matters.
func (c *Config) IsExcluded(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range c.ExcludePatterns {
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}

// AddFlags registers the command-line surface consumed by Load.
func AddFlags(f *pflag.FlagSet) {
	defCfg := DefaultConfig()
	f.String("base-url", "",
		"(env: MCPSYNC_BASE_URL)  Ingestion endpoint; https:// is assumed when no scheme is given")
	f.String("token", "",
		"(env: MCPSYNC_TOKEN)  Credential presented to the ingestion endpoint")
	f.Bool("enable-log", false,
		"(env: MCPSYNC_ENABLE_LOG)  Forward diagnostics to the connected MCP host")
	f.String("log.file", defCfg.Log.File,
		"(env: MCPSYNC_LOG__FILE)  Local diagnostic log file path")
	f.String("log.level", defCfg.Log.Level,
		"(env: MCPSYNC_LOG__LEVEL)  Local diagnostic log level (debug, info, warn, error)")
}

// Load builds a Config by merging, in order of increasing priority:
// built-in defaults, the TOML config file, MCPSYNC_* environment variables
// and command-line flags. It then normalizes and validates the result.
//
// Both required fields are checked only after the merge, so any source may
// supply them; a missing one yields a *MissingArgumentError naming the flag.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "json"), nil); err != nil {
		return nil, err
	}

	displayLoadFileFailure := true
	if configPath == "" {
		configPath = DefaultConfigPath
		displayLoadFileFailure = false
	}
	if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
		if os.IsNotExist(err) {
			if displayLoadFileFailure {
				log.Warn("Config file does not exist, skip loading", zap.String("file", configPath))
			}
		} else {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// MCPSYNC_BASE_URL -> base-url, MCPSYNC_LOG__LEVEL -> log.level.
	// A double underscore nests; single underscores become dashes.
	if err := k.Load(env.ProviderWithValue("MCPSYNC_", ".", func(key string, value string) (string, any) {
		if len(value) == 0 {
			return "", nil
		}
		key = strings.ToLower(strings.TrimPrefix(key, "MCPSYNC_"))
		key = strings.ReplaceAll(key, "__", ".")
		key = strings.ReplaceAll(key, "_", "-")
		return key, value
	}), nil); err != nil {
		log.Warn("Failed to load environment variables", zap.Error(err))
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			log.Warn("Failed to load command-line flags", zap.Error(err))
		}
	}

	var instance Config
	if err := k.UnmarshalWithConf("", &instance, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := instance.finish(); err != nil {
		return nil, err
	}
	return &instance, nil
}

// finish validates required fields, normalizes the base URL, pins the
// non-configurable constants and builds the extension lookup set.
func (c *Config) finish() error {
	if c.BaseURL == "" {
		return &MissingArgumentError{Flag: "base-url"}
	}
	if c.Token == "" {
		return &MissingArgumentError{Flag: "token"}
	}
	c.BaseURL = normalizeBaseURL(c.BaseURL)

	c.BatchSize = DefaultBatchSize
	c.MaxLinesPerBlob = DefaultMaxLinesPerBlob

	c.textExts = make(map[string]struct{}, len(c.TextExtensions))
	for _, ext := range c.TextExtensions {
		c.textExts[ext] = struct{}{}
	}
	return nil
}

// normalizeBaseURL assumes https:// when no scheme is present and strips
// exactly one trailing slash.
func normalizeBaseURL(raw string) string {
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return strings.TrimSuffix(raw, "/")
}

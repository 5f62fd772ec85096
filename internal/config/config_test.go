package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flags)
	err := flags.Parse(args)
	require.NoError(t, err)
	return flags
}

func TestLoadMissingBaseURLReturnsError(t *testing.T) {
	t.Setenv("MCPSYNC_BASE_URL", "")
	t.Setenv("MCPSYNC_TOKEN", "")

	_, err := Load("", nil)
	require.Error(t, err)

	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "base-url", missing.Flag)
	require.EqualError(t, err, "missing required argument: --base-url")
}

func TestLoadMissingTokenReturnsError(t *testing.T) {
	t.Setenv("MCPSYNC_TOKEN", "")

	_, err := Load("", parseFlags(t, "--base-url", "example.com"))
	require.Error(t, err)

	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "token", missing.Flag)
}

func TestLoadBaseURLCheckedBeforeToken(t *testing.T) {
	// With both fields absent, the error names base-url.
	t.Setenv("MCPSYNC_BASE_URL", "")
	t.Setenv("MCPSYNC_TOKEN", "")

	_, err := Load("", parseFlags(t))
	var missing *MissingArgumentError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "base-url", missing.Flag)
}

func TestLoadMinimalFlagsAppliesDefaults(t *testing.T) {
	cfg, err := Load("", parseFlags(t, "--base-url", "example.com", "--token", "tk123"))
	require.NoError(t, err)

	require.Equal(t, "https://example.com", cfg.BaseURL)
	require.Equal(t, "tk123", cfg.Token)
	require.False(t, cfg.EnableLog)
	require.Equal(t, DefaultBatchSize, cfg.BatchSize)
	require.Equal(t, DefaultMaxLinesPerBlob, cfg.MaxLinesPerBlob)
	require.Equal(t, DefaultTextExtensions, cfg.TextExtensions)
	require.Equal(t, DefaultExcludePatterns, cfg.ExcludePatterns)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestBaseURLNormalization(t *testing.T) {
	load := func(rawURL string) string {
		cfg, err := Load("", parseFlags(t, "--base-url", rawURL, "--token", "tk"))
		require.NoError(t, err)
		return cfg.BaseURL
	}

	require.Equal(t, "https://example.com", load("example.com"))
	require.Equal(t, "http://example.com", load("http://example.com"))
	require.Equal(t, "https://example.com", load("https://example.com"))
	require.Equal(t, "https://example.com", load("https://example.com/"))
	require.Equal(t, "https://example.com:8443/api", load("example.com:8443/api/"))
	// Exactly one trailing slash is stripped.
	require.Equal(t, "https://example.com/", load("example.com//"))
	// Scheme detection is a plain prefix check.
	require.Equal(t, "https://httpsfoo", load("httpsfoo"))
}

func TestLoadValidTomlConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
base-url = "sync.internal:9000"
token = "configtoken"
enable-log = true

[log]
level = "debug"
file = "test.log"
`

	err := os.WriteFile(configPath, []byte(tomlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath, nil)
	require.NoError(t, err)

	require.Equal(t, "https://sync.internal:9000", cfg.BaseURL)
	require.Equal(t, "configtoken", cfg.Token)
	require.True(t, cfg.EnableLog)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "test.log", cfg.Log.File)
}

func TestLoadPartialConfigFileMergesWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
base-url = "sync.internal"
token = "tk"
`

	err := os.WriteFile(configPath, []byte(tomlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath, nil)
	require.NoError(t, err)

	defaultConfig := DefaultConfig()
	require.Equal(t, defaultConfig.TextExtensions, cfg.TextExtensions)
	require.Equal(t, defaultConfig.ExcludePatterns, cfg.ExcludePatterns)
	require.Equal(t, defaultConfig.Log, cfg.Log)
}

func TestLoadInvalidTomlSyntaxReturnsError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	invalidToml := `base-url = [invalid toml`

	err := os.WriteFile(configPath, []byte(invalidToml), 0644)
	require.NoError(t, err)

	_, err = Load(configPath, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config file")
}

func TestLoadConfigOverride(t *testing.T) {
	// priority order: defaults < config file < env vars < flags

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
base-url = "confighost"
token = "configtoken"

[log]
level = "info"
file = "config.log"
`

	err := os.WriteFile(configPath, []byte(tomlContent), 0644)
	require.NoError(t, err)

	t.Setenv("MCPSYNC_BASE_URL", "envhost")
	t.Setenv("MCPSYNC_LOG__LEVEL", "error")

	flags := parseFlags(t,
		"--base-url", "flaghost", // Should override env var and config file
		"--log.file", "/flag.log", // Should override config file value
	)

	cfg, err := Load(configPath, flags)
	require.NoError(t, err)

	require.Equal(t, "https://flaghost", cfg.BaseURL) // Flag wins over env var and config
	require.Equal(t, "error", cfg.Log.Level)          // Env var wins over config (no flag set)
	require.Equal(t, "/flag.log", cfg.Log.File)       // Flag wins over config
	require.Equal(t, "configtoken", cfg.Token)        // Config file wins over default (no env or flag)
}

func TestEnvVarsAlone(t *testing.T) {
	t.Setenv("MCPSYNC_BASE_URL", "envhost")
	t.Setenv("MCPSYNC_TOKEN", "envtoken")
	t.Setenv("MCPSYNC_ENABLE_LOG", "true")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	require.Equal(t, "https://envhost", cfg.BaseURL)
	require.Equal(t, "envtoken", cfg.Token)
	require.True(t, cfg.EnableLog)
}

func TestEmptyEnvVarsUseDefault(t *testing.T) {
	// If env var is set to an empty string, it falls back to the default
	// value instead of being empty.
	t.Setenv("MCPSYNC_ENABLE_LOG", "")
	t.Setenv("MCPSYNC_LOG__LEVEL", "")

	cfg, err := Load("", parseFlags(t, "--base-url", "example.com", "--token", "tk"))
	require.NoError(t, err)

	require.False(t, cfg.EnableLog)
	require.Equal(t, DefaultConfig().Log.Level, cfg.Log.Level)
}

func TestBatchSizeAndMaxLinesAreNotConfigurable(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
base-url = "example.com"
token = "tk"
batch-size = 99
max-lines-per-blob = 5
`

	err := os.WriteFile(configPath, []byte(tomlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath, nil)
	require.NoError(t, err)

	require.Equal(t, DefaultBatchSize, cfg.BatchSize)
	require.Equal(t, DefaultMaxLinesPerBlob, cfg.MaxLinesPerBlob)
}

func TestDefaultTables(t *testing.T) {
	require.Len(t, DefaultTextExtensions, 40)
	require.Contains(t, DefaultTextExtensions, ".py")
	require.Contains(t, DefaultTextExtensions, ".svelte")

	require.Contains(t, DefaultExcludePatterns, "node_modules")
	require.Contains(t, DefaultExcludePatterns, ".git")
	require.Contains(t, DefaultExcludePatterns, "*.egg-info")
	require.Contains(t, DefaultExcludePatterns, StateDirName)
}

func TestIsTextExtension(t *testing.T) {
	cfg, err := Load("", parseFlags(t, "--base-url", "example.com", "--token", "tk"))
	require.NoError(t, err)

	require.True(t, cfg.IsTextExtension(".py"))
	require.True(t, cfg.IsTextExtension(".rs"))
	require.True(t, cfg.IsTextExtension(".vue"))
	require.False(t, cfg.IsTextExtension(".exe"))
	require.False(t, cfg.IsTextExtension(".PY")) // case-sensitive
	require.False(t, cfg.IsTextExtension("py"))  // dot-prefixed

	require.True(t, cfg.IsTextFile("cmd/app/main.go"))
	require.True(t, cfg.IsTextFile("README.md"))
	require.False(t, cfg.IsTextFile("bin/tool"))
	require.False(t, cfg.IsTextFile("image.png"))
}

func TestIsExcluded(t *testing.T) {
	cfg, err := Load("", parseFlags(t, "--base-url", "example.com", "--token", "tk"))
	require.NoError(t, err)

	require.True(t, cfg.IsExcluded("node_modules"))
	require.True(t, cfg.IsExcluded("web/node_modules")) // base name matches at any depth
	require.True(t, cfg.IsExcluded("proj/.git"))
	require.True(t, cfg.IsExcluded("dist"))
	require.True(t, cfg.IsExcluded("pkg/mylib.egg-info"))
	require.True(t, cfg.IsExcluded("app/cache.pyc"))
	require.True(t, cfg.IsExcluded(".mcpsync"))

	require.False(t, cfg.IsExcluded("src/main.py"))
	require.False(t, cfg.IsExcluded("distributed"))
}

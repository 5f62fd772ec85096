package config

import (
	"os"
	"path/filepath"

	"github.com/coderelay/mcpsync/internal/log"
)

const (
	// DefaultBatchSize is the static batch size for callers that do not
	// consult strategy selection. The adaptive value lives in the
	// strategy package.
	DefaultBatchSize = 10

	// DefaultMaxLinesPerBlob caps how many lines of file content go into
	// a single blob. Not user-configurable.
	DefaultMaxLinesPerBlob = 800

	// StateDirName is the tool's own state directory. It is always part
	// of the exclude set so a sync never ingests itself.
	StateDirName = ".mcpsync"
)

// DefaultTextExtensions lists the file extensions treated as uploadable
// text content. Dot-prefixed, case-sensitive.
var DefaultTextExtensions = []string{
	".py", ".js", ".ts", ".jsx", ".tsx",
	".java", ".go", ".rs", ".cpp", ".c", ".h", ".hpp", ".cs",
	".rb", ".php", ".swift", ".kt", ".scala", ".clj",
	".md", ".txt",
	".json", ".yaml", ".yml", ".toml", ".xml", ".ini", ".conf",
	".html", ".css", ".scss", ".sass", ".less",
	".sql", ".sh", ".bash", ".ps1", ".bat",
	".vue", ".svelte",
}

// DefaultExcludePatterns lists path fragments that are never uploaded.
// Order is preserved for display only; each pattern matches independently.
var DefaultExcludePatterns = []string{
	".venv", "venv", ".env", "env",
	"node_modules",
	".git", ".svn", ".hg",
	"__pycache__", ".pytest_cache", ".mypy_cache", ".tox",
	".eggs", "*.egg-info",
	"dist", "build", "target", "out",
	".idea", ".vscode", ".vs",
	".DS_Store", "Thumbs.db",
	"*.pyc", "*.pyo", "*.pyd", "*.so", "*.dll",
	StateDirName,
}

var (
	DefaultWorkDir    = defaultWorkDir()
	DefaultConfigPath = defaultConfigPath()
)

func defaultWorkDir() string {
	baseDir, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(baseDir, StateDirName)
	}
	wd, err := os.Getwd()
	if err == nil {
		return filepath.Join(wd, StateDirName)
	}
	return filepath.Join(os.TempDir(), StateDirName)
}

func defaultConfigPath() string {
	baseDir, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(baseDir, ".config", "mcpsync", "config.toml")
	}
	wd, err := os.Getwd()
	if err == nil {
		return filepath.Join(wd, "mcpsync_config.toml")
	}
	return "./mcpsync_config.toml"
}

func DefaultConfig() Config {
	return Config{
		BatchSize:       DefaultBatchSize,
		MaxLinesPerBlob: DefaultMaxLinesPerBlob,
		TextExtensions:  DefaultTextExtensions,
		ExcludePatterns: DefaultExcludePatterns,
		Log:             log.DefaultConfig(DefaultWorkDir),
	}
}

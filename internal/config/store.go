package config

import (
	"sync"

	"github.com/spf13/pflag"
)

// Store holds the single Config of a process. It is an explicit object
// rather than a package global so tests can run several configurations
// side by side; a process wires one store through its components.
type Store struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewStore() *Store {
	return &Store{}
}

// Init parses args (the process arguments, program name excluded) and
// stores the resulting Config. Unrecognized and malformed flags are
// ignored; a string flag consumes the token that follows it no matter
// what that token looks like.
//
// Init succeeds at most once per store: a second call returns
// ErrAlreadyInitialized and leaves the stored Config untouched.
func (s *Store) Init(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("mcpsync", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	AddFlags(fs)
	// Malformed input must not abort configuration bring-up; whatever
	// parsed cleanly before the error still applies.
	_ = fs.Parse(args)
	return s.init("", fs)
}

// InitFromFlagSet is Init for callers that already own a parsed FlagSet,
// such as the CLI. configPath selects the TOML file ("" for the default).
func (s *Store) InitFromFlagSet(configPath string, flags *pflag.FlagSet) (*Config, error) {
	return s.init(configPath, flags)
}

func (s *Store) init(configPath string, flags *pflag.FlagSet) (*Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg != nil {
		return nil, ErrAlreadyInitialized
	}
	cfg, err := Load(configPath, flags)
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	return cfg, nil
}

// Get returns the stored Config, shared by identity: every caller sees
// the same value and must treat it as read-only.
func (s *Store) Get() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cfg == nil {
		return nil, ErrNotInitialized
	}
	return s.cfg, nil
}

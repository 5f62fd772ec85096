package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by Store.Get before a successful Init.
	ErrNotInitialized = errors.New("configuration is not initialized")

	// ErrAlreadyInitialized is returned when Init is called on a store
	// that already holds a configuration.
	ErrAlreadyInitialized = errors.New("configuration is already initialized")
)

// MissingArgumentError reports a required flag that no configuration
// source supplied.
type MissingArgumentError struct {
	Flag string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: --%s", e.Flag)
}

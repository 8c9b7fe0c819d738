// Package cli holds process-level conventions shared by the roster commands
package cli

import (
	"errors"

	"github.com/thenoetrevino/roster/internal/config"
)

// Exit codes for the roster command.
// These codes follow Unix conventions.
const (
	// ExitSuccess indicates the session ended through the exit action.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: store connectivity failures at startup, and any store
	// read or write failure during the session.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown flags, an unreadable config file, or invalid
	// configuration values such as an unsupported driver.
	ExitUsage = 2
)

// ExitCodeFor maps an error returned by the root command to an exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitUsage
	default:
		return ExitError
	}
}

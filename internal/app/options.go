package app

import (
	"io"

	"github.com/thenoetrevino/roster/internal/prompt"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	prompter   prompt.Prompter
	out        io.Writer
	accessible bool
}

// WithPrompter replaces the interactive huh prompter, e.g. with a script
func WithPrompter(p prompt.Prompter) Option {
	return func(cfg *appConfig) {
		cfg.prompter = p
	}
}

// WithOutput sets where tables and messages are written (default stdout)
func WithOutput(w io.Writer) Option {
	return func(cfg *appConfig) {
		cfg.out = w
	}
}

// WithAccessible switches the huh prompter to line-based prompts
func WithAccessible(accessible bool) Option {
	return func(cfg *appConfig) {
		cfg.accessible = accessible
	}
}

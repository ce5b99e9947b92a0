// Package config holds the small set of tunables the editor reads at
// startup. There is no flag parser here: the only CLI surface is a single
// optional file path (handled by cmd/giga directly), so a Config is built
// programmatically with functional options rather than parsed from argv.
package config

import "time"

// Defaults match the reference design: a poll interval of 250ms, no log
// file (logging disabled), and chroma's "monokai" style.
const (
	DefaultVCSPollInterval = 250 * time.Millisecond
	DefaultTheme           = "monokai"
)

// Config is the editor's runtime configuration.
type Config struct {
	VCSPollInterval time.Duration
	LogFile         string
	Theme           string
}

// Option configures a Config during construction.
type Option func(*Config)

// WithVCSPollInterval overrides the VCS poll thread's sleep interval.
func WithVCSPollInterval(d time.Duration) Option {
	return func(c *Config) { c.VCSPollInterval = d }
}

// WithLogFile sets the path logs are appended to. Empty disables logging.
func WithLogFile(path string) Option {
	return func(c *Config) { c.LogFile = path }
}

// WithTheme sets the chroma style name used for syntax highlighting.
func WithTheme(name string) Option {
	return func(c *Config) { c.Theme = name }
}

// New builds a Config with the defaults applied first, then opts in order.
func New(opts ...Option) *Config {
	c := &Config{
		VCSPollInterval: DefaultVCSPollInterval,
		Theme:           DefaultTheme,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

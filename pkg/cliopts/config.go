// SPDX-License-Identifier: MPL-2.0

package cliopts

// Config is the open, mutable record option side effects write to and the
// resolved command handler reads. One Config lives for one invocation:
// created fresh, defaulted by Init callbacks, mutated by Action callbacks
// during the scan, then discarded after the handler returns. The scan
// that owns it is single-threaded, so no locking is involved.
type Config struct {
	// LogLevel is the requested logging level (silent, warn, info,
	// verbose, debug, trace).
	LogLevel string

	// WorkingDir is the directory the invocation should run in. Set by
	// the early -C option before relative paths are computed.
	WorkingDir string

	// IsHelp is set when the user asked for help output.
	IsHelp bool

	// IsVersion is set when the user asked for the program version.
	IsVersion bool

	// NoUpdateNotifier disables the update notification check.
	NoUpdateNotifier bool

	// InteractiveServerPort is reserved for REPL/server mode; the core
	// never reads it.
	InteractiveServerPort int

	extra map[string]any
}

// NewConfig returns an empty Config ready for Init callbacks.
func NewConfig() *Config {
	return &Config{extra: map[string]any{}}
}

// Set stores a command-specific value under the given key. Commands use
// this for options that have no dedicated Config field.
func (c *Config) Set(key string, value any) {
	c.extra[key] = value
}

// Get returns the command-specific value stored under key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.extra[key]
	return v, ok
}

// GetString returns the string stored under key, or "" when absent or of
// a different type.
func (c *Config) GetString(key string) string {
	if v, ok := c.extra[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetBool returns the bool stored under key, or false when absent or of a
// different type.
func (c *Config) GetBool(key string) bool {
	if v, ok := c.extra[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetStrings returns the string slice stored under key. Options marked
// IsMultiple typically accumulate into one of these.
func (c *Config) GetStrings(key string) []string {
	if v, ok := c.extra[key]; ok {
		if ss, ok := v.([]string); ok {
			return ss
		}
	}
	return nil
}

// Append adds a value to the string slice stored under key, creating it
// on first use.
func (c *Config) Append(key, value string) {
	c.extra[key] = append(c.GetStrings(key), value)
}

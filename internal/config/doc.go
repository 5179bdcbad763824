// SPDX-License-Identifier: MPL-2.0

// Package config loads host-level settings for applications built on the
// framework: the default log level and whether the update notifier is
// suppressed. Settings come from an optional config.toml under the
// platform config directory and from CLISTART_-prefixed environment
// variables; command-line options always win over both.
package config

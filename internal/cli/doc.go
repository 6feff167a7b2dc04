// Package cli implements the shimmer command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to small testable functions for the actual work:
//
//	shimmer demo        - Full-screen animated theme preview
//	shimmer skeleton    - Print a static placeholder frame
//	shimmer themes      - List themes (builtin + config)
//	shimmer themes init - Write a starter .shimmer.yaml
//	shimmer version     - Print version information
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command
// and available to all subcommands. Command-specific flags like --theme
// and --band are defined on individual commands; only flags the user
// actually set override the resolved theme's fields.
//
// # Theme Resolution
//
// Commands resolve themes through internal/config: an explicit --theme
// flag wins, then the config file's default, then the builtin default.
// A missing config file is not an error; the builtins are always
// available.
package cli

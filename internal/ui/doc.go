// Package ui provides terminal UI helpers for the shimmer CLI.
//
// It holds the color palette and status symbols shared across commands,
// the branded header, and the interactive preset picker built on Huh
// forms. The shimmer effect itself lives in pkg/shimmer; this package is
// only the demo program's chrome.
//
// Colors are ANSI codes for broad terminal compatibility, with a few neon
// hex accents for the header. Use --no-color on the CLI to switch the
// whole program to monochrome output.
package ui

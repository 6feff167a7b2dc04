package ui

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/shimmertea/shimmer/internal/errors"
)

// PickItem is one selectable entry in an interactive picker.
type PickItem struct {
	Key    string // Value returned when selected
	Label  string // Display name
	Detail string // Short description shown alongside the label
}

// IsInteractive reports whether stdin is attached to a terminal.
// Pickers should be skipped entirely when it returns false (piped input,
// CI) rather than blocking on a form nobody can answer.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Pick shows an interactive single-select form and returns the chosen key.
func Pick(title string, items []PickItem) (string, error) {
	if len(items) == 0 {
		return "", errors.New(errors.ErrConfig,
			"Nothing to pick from",
			"This is a bug; please report it")
	}

	options := make([]huh.Option[string], 0, len(items))
	for _, item := range items {
		label := item.Label
		if item.Detail != "" {
			label += " (" + item.Detail + ")"
		}
		options = append(options, huh.NewOption(label, item.Key))
	}

	choice := items[0].Key
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Pass the choice as a flag instead of using the interactive picker")
	}
	return choice, nil
}

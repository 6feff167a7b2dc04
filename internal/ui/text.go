package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GradientText colors each rune of s by cycling through GradientColors.
// Spaces keep their position but carry no style.
func GradientText(s string) string {
	var b strings.Builder
	i := 0
	for _, r := range s {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		style := lipgloss.NewStyle().Foreground(GradientColors[i%len(GradientColors)]).Bold(true)
		b.WriteString(style.Render(string(r)))
		i++
	}
	return b.String()
}

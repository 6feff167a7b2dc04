package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication, kept as ANSI codes for broad
// terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Neon accents for the demo header and footer.
const (
	ColorNeonPink lipgloss.Color = "#ff5fd2"
	ColorNeonCyan lipgloss.Color = "#00e5ff"
)

// GradientColors is the accent cycle used by animated indicators
// (pink -> purple -> cyan -> green).
var GradientColors = []lipgloss.Color{
	"#ff5fd2",
	"#b15fff",
	"#00e5ff",
	"#5fff87",
}

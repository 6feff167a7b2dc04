package shimmer

import "strings"

// PlaceholderBlock is the rune skeleton helpers fill placeholder cells
// with. A full block keeps the shimmer band readable at cell granularity.
const PlaceholderBlock = '█'

// PlaceholderLine returns one placeholder line of the given rune width.
// Non-positive widths return an empty string.
func PlaceholderLine(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(PlaceholderBlock), width)
}

// PlaceholderParagraph returns lines placeholder lines of the given width,
// with the last line shortened to 60% the way trailing text usually falls
// short of the margin.
func PlaceholderParagraph(width, lines int) string {
	if width <= 0 || lines <= 0 {
		return ""
	}
	out := make([]string, lines)
	for i := range out {
		out[i] = PlaceholderLine(width)
	}
	if lines > 1 {
		short := width * 6 / 10
		if short < 1 {
			short = 1
		}
		out[lines-1] = PlaceholderLine(short)
	}
	return strings.Join(out, "\n")
}

// PlaceholderRows returns count placeholder rows, each made of columns of
// the given widths separated by two spaces. Useful for list and table
// skeletons while real data loads.
func PlaceholderRows(count int, widths ...int) []string {
	if count <= 0 || len(widths) == 0 {
		return nil
	}
	cols := make([]string, 0, len(widths))
	for _, w := range widths {
		cols = append(cols, PlaceholderLine(w))
	}
	row := strings.Join(cols, "  ")
	rows := make([]string, count)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// Redact replaces every non-space rune in content with the placeholder
// block, preserving layout. Composing Redact with an effect is the usual
// skeleton pattern: redact first and shimmer the blocks. Shimmering first
// and redacting after would blank the styling, so order matters, but
// neither order is enforced.
func Redact(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		switch r {
		case ' ', '\n', '\t':
			b.WriteRune(r)
		default:
			b.WriteRune(PlaceholderBlock)
		}
	}
	return b.String()
}

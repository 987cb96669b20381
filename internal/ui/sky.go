package ui

import (
	"strings"
)

// renderSky draws the current starfield frame. Empty cells stay blank so
// the terminal background shows through.
func (m Model) renderSky(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	styles := m.theme.Styles()
	grid := m.field.Frame()
	blank := strings.Repeat(" ", width)

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		if y >= len(grid) {
			b.WriteString(blank)
			continue
		}
		row := grid[y]
		for x := 0; x < width; x++ {
			if x >= len(row) || row[x].Glyph == 0 {
				b.WriteByte(' ')
				continue
			}
			cell := row[x]
			b.WriteString(styles.Star(cell.Level).Render(string(cell.Glyph)))
		}
	}
	return b.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/five82/missionctl/internal/launch"
)

var sidebarSections = []string{"Telemetry", "Launch Ops", "Newsroom", "Comms"}

// renderSidebar draws the station navigation column.
func (m Model) renderSidebar(width, height int) string {
	styles := m.theme.Styles()
	inner := width - 2
	rule := styles.FaintText.Render(strings.Repeat("─", inner))

	var b strings.Builder
	b.WriteString(styles.Logo.Render(stationName))
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")
	for _, name := range sidebarSections {
		b.WriteString(styles.AccentText.Render("▸ "))
		b.WriteString(styles.Text.Render(name))
		b.WriteString("\n")
	}
	b.WriteString(rule)
	b.WriteString("\n")

	mode := "ACQUIRING"
	if m.engine.State() == launch.StateCounting {
		mode = m.engine.Target().Mode.String()
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("Mode   %s", mode)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("Stars  %d", m.field.Len())))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Theme  " + truncateWidth(m.theme.Name, inner-7)))

	return styles.Sidebar.Width(width).Height(height).MaxHeight(height).Render(b.String())
}

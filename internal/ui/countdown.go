package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/missionctl/internal/launch"
)

// renderCountdown draws the T-minus panel.
func (m Model) renderCountdown(width, height int) string {
	styles := m.theme.Styles()
	inner := width - 4

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("T-MINUS"))
	b.WriteString("\n")

	if m.engine.State() != launch.StateCounting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render("Acquiring launch schedule…"))
		return panelBox(styles.Panel, width, height, b.String())
	}

	target := m.engine.Target()
	b.WriteString(styles.Text.Bold(true).Render(truncateWidth(target.Provider, inner)))
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(truncateWidth(target.Mission, inner)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(truncateWidth(target.Pad, inner)))
	b.WriteString("\n\n")
	b.WriteString(m.renderDigits(styles))

	return panelBox(styles.Panel, width, height, b.String())
}

// renderDigits lays out DD:HH:MM:SS with unit labels underneath.
func (m Model) renderDigits(styles Styles) string {
	days, hours, minutes, seconds := m.remaining.Digits()
	units := []struct{ value, label string }{
		{days, "DAYS"},
		{hours, "HRS"},
		{minutes, "MIN"},
		{seconds, "SEC"},
	}

	cols := make([]string, 0, len(units)*2)
	for i, u := range units {
		if i > 0 {
			cols = append(cols, styles.FaintText.Render(" : \n"))
		}
		col := lipgloss.JoinVertical(lipgloss.Center,
			styles.Digits.Render(u.value),
			styles.FaintText.Render(u.label),
		)
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

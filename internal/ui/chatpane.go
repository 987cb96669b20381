package ui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/missionctl/internal/chat"
)

// renderChat draws the comms panel: transcript viewport above the input.
func (m Model) renderChat(width, height int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("COMMS"))
	b.WriteString("\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return panelBox(styles.PanelFocus, width, height, b.String())
}

// refreshTranscript re-renders the messages into the viewport and pins it
// to the newest line.
func (m *Model) refreshTranscript() {
	width := m.transcript.Width
	if width <= 0 {
		return
	}
	m.transcript.SetContent(m.formatTranscript(width))
	m.transcript.GotoBottom()
}

func (m Model) formatTranscript(width int) string {
	styles := m.theme.Styles()
	msgs := m.widget.Messages()
	if len(msgs) == 0 {
		return styles.FaintText.Render("Channel open. Ask about status, launches or the crew.")
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		label := styles.AccentText.Bold(true).Render("YOU ›")
		text := msg.Text
		if msg.Author == chat.AuthorBot {
			label = styles.WarningText.Bold(true).Render("MC  ›")
			if msg.Pending {
				text = m.spinner.View() + " " + msg.Text
			}
		}
		body := wordwrap.String(text, max(width-6, 10))
		b.WriteString(label + " " + indentTail(body, "      "))
	}
	return b.String()
}

// indentTail indents every line after the first.
func indentTail(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

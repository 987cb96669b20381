package ui

import (
	"strings"

	"github.com/five82/missionctl/internal/news"
)

// renderNews draws the headline cards or the offline notice.
func (m Model) renderNews(width, height int) string {
	styles := m.theme.Styles()
	inner := width - 4

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("NEWS UPLINK"))
	b.WriteString("\n")

	switch {
	case m.newsLoading && len(m.panel.Cards) == 0 && m.panel.Notice == "":
		b.WriteString(m.spinner.View() + " " + styles.MutedText.Render("Fetching headlines…"))
	case m.panel.Notice != "":
		b.WriteString(styles.DangerText.Render(m.panel.Notice))
	default:
		for i, card := range m.panel.Cards {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(renderCard(card, styles, inner))
		}
	}

	return panelBox(styles.Panel, width, height, b.String())
}

func renderCard(card news.Card, styles Styles, width int) string {
	lines := []string{
		styles.AccentText.Render(truncateWidth(strings.ToUpper(card.Source), width)),
		styles.Text.Bold(true).Render(truncateWidth(card.Title, width)),
		styles.FaintText.Render(truncateWidth(card.Image, width)),
		hyperlink(card.Link, styles.InfoText.Render(card.Label)),
	}
	return strings.Join(lines, "\n")
}

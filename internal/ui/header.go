package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/missionctl/internal/launch"
)

const stationName = "MISSION CONTROL"

// renderHeader renders the station bar: logo, clocks and launch mode.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(3)

	parts := []string{
		bg.Render("◉ "+stationName, styles.Logo),
		bg.Render("UTC", styles.FaintText) + bg.Spaces(1) + bg.Render(m.utcText, styles.Text.Bold(true)),
		bg.Render("LOCAL", styles.FaintText) + bg.Spaces(1) + bg.Render(m.localText, styles.Text),
	}
	if chip := m.modeChip(styles, bg); chip != "" {
		parts = append(parts, chip)
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(parts, sep))
}

// modeChip labels the countdown source; empty while loading.
func (m Model) modeChip(styles Styles, bg BgStyle) string {
	if m.engine.State() != launch.StateCounting {
		return ""
	}
	target := m.engine.Target()
	style := styles.SuccessText
	if target.Mode == launch.ModeSimulated {
		style = styles.WarningText.Bold(true)
	}
	return bg.Render("● "+target.Mode.String(), style)
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	bindings := m.keys.ShortHelp()
	if m.widget.Visible() {
		bindings = m.keys.ChatHelp()
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		segments = append(segments, renderBinding(b, styles, bg, colon))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).MaxHeight(1).Render(strings.Join(segments, bg.Spaces(2)))
}

func renderBinding(b key.Binding, styles Styles, bg BgStyle, colon string) string {
	h := b.Help()
	return bg.Render(h.Key, styles.AccentText) + colon + bg.Render(h.Desc, styles.MutedText)
}

// renderMain composes the dashboard below the header.
func (m Model) renderMain() string {
	l := computeLayout(m.width, m.height, m.showSidebar, m.widget.Visible())

	rows := []string{
		m.renderHeader(),
		m.renderSky(l.width, l.skyHeight),
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCountdown(l.countdownW, l.bodyHeight),
		m.renderNews(l.newsW, l.bodyHeight),
	)
	if l.sidebar > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(l.sidebar, l.bodyHeight), body)
	}
	if l.bodyHeight > 0 {
		rows = append(rows, body)
	}
	if l.chatHeight > 0 {
		rows = append(rows, m.renderChat(l.width, l.chatHeight))
	}
	rows = append(rows, m.renderCommandBar())

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// panelBox draws a bordered panel of exactly width × height cells.
func panelBox(style lipgloss.Style, width, height int, content string) string {
	innerW := width - style.GetHorizontalFrameSize()
	innerH := height - style.GetVerticalFrameSize()
	if innerW < 1 || innerH < 1 {
		return ""
	}
	if lines := strings.Split(content, "\n"); len(lines) > innerH {
		content = strings.Join(lines[:innerH], "\n")
	}
	return style.
		Width(innerW + style.GetHorizontalPadding()).
		Height(innerH).
		Render(content)
}

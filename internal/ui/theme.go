package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/missionctl/internal/starfield"
)

// Theme defines colors for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Sidebar

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Star brightness ramp, dimmest first.
	Stars [starfield.Levels]string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header     lipgloss.Style
	Logo       lipgloss.Style
	Panel      lipgloss.Style
	PanelFocus lipgloss.Style
	PanelTitle lipgloss.Style
	Sidebar    lipgloss.Style
	Digits     lipgloss.Style

	stars [starfield.Levels]lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	s := Styles{
		Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		SuccessText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		WarningText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		DangerText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		InfoText:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PanelFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Sidebar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Digits: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
	}
	for i, color := range t.Stars {
		s.stars[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s
}

// WithBackground returns a copy of the text styles sharing bgColor, for bars
// drawn on a solid surface.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.InfoText = s.InfoText.Background(bg)
	out.Header = s.Header.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

// Star returns the style for a star brightness level.
func (s Styles) Star(level int) lipgloss.Style {
	if level < 0 {
		level = 0
	}
	if level >= len(s.stars) {
		level = len(s.stars) - 1
	}
	return s.stars[level]
}

// Theme definitions

var themes = map[string]Theme{
	"Deep Space": deepSpaceTheme(),
	"Mars Dust":  marsDustTheme(),
	"Slate":      slateTheme(),
}

var themeOrder = []string{"Deep Space", "Mars Dust", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return deepSpaceTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func deepSpaceTheme() Theme {
	return Theme{
		Name: "Deep Space",

		Background: "#05070f",
		Surface:    "#0b1224",
		SurfaceAlt: "#111a33",

		Border:      "#1f2d52",
		BorderFocus: "#4cc9f0",

		Text:    "#e6ecff",
		Muted:   "#8b97b8",
		Faint:   "#55607d",
		Accent:  "#4cc9f0",
		Success: "#52d68a",
		Warning: "#ffb703",
		Danger:  "#ff4d6d",
		Info:    "#7b9cff",

		Stars: [starfield.Levels]string{"#2a3150", "#4a5378", "#7d86a8", "#b8bfd9", "#ffffff"},
	}
}

func marsDustTheme() Theme {
	return Theme{
		Name: "Mars Dust",

		Background: "#140806",
		Surface:    "#23100b",
		SurfaceAlt: "#2e1710",

		Border:      "#5a2a1c",
		BorderFocus: "#f4a261",

		Text:    "#f7e6d9",
		Muted:   "#c09a86",
		Faint:   "#7a5a4a",
		Accent:  "#f4a261",
		Success: "#9bc53d",
		Warning: "#e9c46a",
		Danger:  "#e63946",
		Info:    "#e76f51",

		Stars: [starfield.Levels]string{"#3a211a", "#6b4334", "#a06d57", "#d8ab8f", "#fff1e6"},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		Stars: [starfield.Levels]string{"#1e293b", "#334155", "#64748b", "#cbd5e1", "#f8fafc"},
	}
}

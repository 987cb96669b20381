package ui

import "github.com/mattn/go-runewidth"

// truncateWidth shortens s to at most width terminal cells, marking the cut
// with an ellipsis.
func truncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// hyperlink wraps label in an OSC 8 terminal hyperlink to url.
func hyperlink(url, label string) string {
	if url == "" {
		return label
	}
	return "\x1b]8;;" + url + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}

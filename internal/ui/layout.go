package ui

import "time"

// Layout thresholds, in terminal cells.
const (
	sidebarWidth     = 26
	minSidebarWidth  = 70 // below this the sidebar is not drawn
	minSkyHeight     = 3
	chatPanelHeight  = 14
	countdownMinWide = 44
)

// Timing constants.
const (
	clockInterval     = time.Second
	countdownInterval = time.Second
	defaultFPS        = 30
)

// layout holds computed pane sizes for the current terminal.
type layout struct {
	width, height int

	skyHeight  int
	bodyHeight int
	chatHeight int
	sidebar    int
	countdownW int
	newsW      int
}

// computeLayout splits the screen. The starfield canvas depends only on the
// terminal size so toggling panels never regenerates the stars.
func computeLayout(width, height int, showSidebar, showChat bool) layout {
	l := layout{width: width, height: height}
	usable := height - 2 // header + command bar
	if usable < 0 {
		usable = 0
	}

	l.skyHeight = usable / 3
	if l.skyHeight < minSkyHeight {
		l.skyHeight = minSkyHeight
	}
	if l.skyHeight > usable {
		l.skyHeight = usable
	}

	rest := usable - l.skyHeight
	if showChat {
		l.chatHeight = chatPanelHeight
		if l.chatHeight > rest*2/3 {
			l.chatHeight = rest * 2 / 3
		}
	}
	l.bodyHeight = rest - l.chatHeight
	if l.bodyHeight < 0 {
		l.bodyHeight = 0
	}

	mainW := width
	if showSidebar && width >= minSidebarWidth {
		l.sidebar = sidebarWidth
		mainW -= sidebarWidth
	}
	l.countdownW = mainW * 2 / 5
	if l.countdownW < countdownMinWide && mainW >= 2*countdownMinWide {
		l.countdownW = countdownMinWide
	}
	l.newsW = mainW - l.countdownW
	return l
}

// frameInterval converts a frame rate into a tick period.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}

package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/plantview/internal/session"
)

// Screen geometry.
const (
	headerHeight = 1
	footerHeight = 1

	// editorShare is the editor pane's percentage of the terminal width.
	editorShare    = 45
	minEditorWidth = 24

	overlayMarginX = 4
	overlayMarginY = 2

	themePanelWidth = 28
)

// Timing constants.
const (
	// settleDelay stands in for the next animation frame after an overlay opens.
	settleDelay = 16 * time.Millisecond

	// fadeDuration is the overlay fade-out before the transition ends.
	fadeDuration = 150 * time.Millisecond

	// DefaultFrameInterval is the backdrop animation interval.
	DefaultFrameInterval = 80 * time.Millisecond

	previewTimeout  = 15 * time.Second
	downloadTimeout = 30 * time.Second
)

const (
	expandLabel = "[Expand]"
	closeLabel  = "[x]"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout holds the screen regions of one frame. View and the mouse hit test
// both derive from it so clicks land where things are drawn.
type layout struct {
	editor  rect
	output  rect
	gutterW int

	// actionRows is the height of the download block at the bottom of the
	// output pane: the trigger row plus open menu entries.
	actionRows int
	trigger    rect
	expand     rect
	menu       rect

	themeToggle rect
	themePanel  rect

	overlay      rect
	overlayClose rect
}

func (m Model) layout() layout {
	var l layout

	bodyH := max(m.height-headerHeight-footerHeight, 3)
	editorW := max(m.width*editorShare/100, min(minEditorWidth, m.width))
	l.editor = rect{0, headerHeight, editorW, bodyH}
	l.output = rect{editorW, headerHeight, m.width - editorW, bodyH}
	l.gutterW = len(strconv.Itoa(m.sess.Gutter.Count()))

	if m.sess.Downloads.Visible() {
		innerX := l.output.x + 1
		innerW := l.output.w - 2
		row := l.output.y + l.output.h - 2

		tw := lipgloss.Width(m.triggerLabel())
		l.trigger = rect{innerX, row, tw, 1}
		if m.sess.OverlayAvailable() {
			l.expand = rect{innerX + tw + 1, row, lipgloss.Width(expandLabel), 1}
		}
		l.actionRows = 1
		if m.sess.Downloads.IsOpen() {
			n := len(m.sess.Downloads.Links())
			l.menu = rect{innerX, row - n, innerW, n}
			l.actionRows += n
		}
	}

	tw := lipgloss.Width(m.themeToggleLabel())
	l.themeToggle = rect{m.width - tw, 0, tw, 1}

	ph := len(m.sess.Theme.Options()) + 3
	l.themePanel = rect{(m.width - themePanelWidth) / 2, (m.height - ph) / 2, themePanelWidth, ph}

	ow := max(m.width-2*overlayMarginX, 12)
	oh := max(m.height-2*overlayMarginY, 5)
	l.overlay = rect{(m.width - ow) / 2, (m.height - oh) / 2, ow, oh}
	cw := lipgloss.Width(closeLabel)
	l.overlayClose = rect{l.overlay.x + l.overlay.w - 1 - cw, l.overlay.y + 1, cw, 1}

	return l
}

// hit maps a cell to the session region under it. The index is the menu
// entry or theme option under the pointer, or -1.
func (l layout) hit(s *session.State, x, y int) (session.Region, int) {
	if s.Overlay.Shown() {
		if l.overlay.contains(x, y) {
			return session.RegionOverlayContent, -1
		}
		return session.RegionOverlayBackdrop, -1
	}
	if s.ThemeMenu.IsOpen() {
		if !l.themePanel.contains(x, y) {
			return session.RegionOther, -1
		}
		idx := y - l.themePanel.y - 2
		if idx < 0 || idx >= len(s.Theme.Options()) {
			idx = -1
		}
		return session.RegionThemePanel, idx
	}
	if l.themeToggle.contains(x, y) {
		return session.RegionThemeToggle, -1
	}
	if s.Downloads.IsOpen() && l.menu.contains(x, y) {
		return session.RegionDownloadMenu, y - l.menu.y
	}
	if l.trigger.contains(x, y) {
		return session.RegionDownloadTrigger, -1
	}
	return session.RegionOther, -1
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/plantview/internal/preview"
	"github.com/five82/plantview/internal/session"
	"github.com/five82/plantview/internal/theme"
)

// fadeAmount is how far the overlay frame is blended toward the preset's
// fade color while opening or closing.
const fadeAmount = 0.5

// overlayPalette dims the frame during the open and close transitions.
func (m Model) overlayPalette() theme.Palette {
	switch m.sess.Overlay.Phase() {
	case session.OverlayOpening, session.OverlayClosing:
		return m.sess.Theme.Active().Faded(fadeAmount)
	default:
		return m.palette
	}
}

// refreshOverlay sizes the overlay viewport and redraws the image at the
// current zoom.
func (m *Model) refreshOverlay() {
	if !m.ready || !m.sess.Overlay.Shown() {
		return
	}
	l := m.layout()
	m.overlayView.Width = max(l.overlay.w-2, 1)
	m.overlayView.Height = max(l.overlay.h-3, 1)

	img := m.preview.img
	switch {
	case img != nil && m.preview.id == m.sess.Result.Identifier:
		cols := preview.Columns(img, m.overlayView.Width, m.sess.Overlay.Zoom())
		m.overlayView.SetContent(preview.Render(img, cols, m.palette.Background))
	case m.preview.err != nil && m.preview.id == m.sess.Result.Identifier:
		m.overlayView.SetContent("")
	default:
		m.overlayView.SetContent(m.styles.MutedText.Render("Rendering..."))
	}
}

// renderOverlay draws the enlarged diagram in a box over a shaded backdrop.
func (m Model) renderOverlay() string {
	l := m.layout()
	pal := m.overlayPalette()
	styles := pal.Styles()

	innerW := max(l.overlay.w-2, 1)
	zoom := fmt.Sprintf("Zoom %d%%", int(m.sess.Overlay.Zoom()*100+0.5))
	left := styles.AccentText.Render("Diagram") + "  " + styles.MutedText.Render(zoom) +
		"  " + styles.FaintText.Render("+/- zoom  0 reset")
	gap := max(innerW-lipgloss.Width(left)-lipgloss.Width(closeLabel), 1)
	title := left + lipgloss.NewStyle().Width(gap).Render("") + styles.DangerText.Render(closeLabel)

	box := styles.FocusedPane.
		Width(innerW).
		Height(max(l.overlay.h-2, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.overlayView.View()))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(pal.Faint)),
	)
}

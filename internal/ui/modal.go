package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderThemePanel renders the theme selector as a centered modal. Its
// geometry matches layout().themePanel: border, title row, one row per
// option.
func (m Model) renderThemePanel() string {
	styles := m.styles
	innerW := themePanelWidth - 4

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Theme"))
	cursor := m.sess.ThemeMenu.Cursor()
	for i, opt := range m.sess.Theme.Options() {
		marker := "  "
		if opt.Active {
			marker = "* "
		}
		style := styles.Text
		if i == cursor {
			style = styles.Selected
		}
		b.WriteString("\n")
		b.WriteString(style.Width(innerW).Render(marker + opt.Label))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.BorderFocus)).
		Padding(0, 1).
		Width(themePanelWidth - 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.palette.Background)),
	)
}

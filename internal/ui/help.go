package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.styles

	sections := []helpSection{
		{
			title: "Editor",
			items: []helpItem{
				{"type", "Edit source, preview updates live"},
				{"esc", "Close menus"},
			},
		},
		{
			title: "Downloads",
			items: []helpItem{
				{"ctrl+d", "Open/close menu"},
				{"up/down", "Choose format"},
				{"enter", "Save to download dir"},
				{"ctrl+y", "Copy link"},
			},
		},
		{
			title: "Diagram",
			items: []helpItem{
				{"ctrl+o", "Expand"},
				{"+/-", "Zoom in/out"},
				{"0", "Reset zoom"},
				{"x/esc", "Close"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"ctrl+t", "Theme panel"},
				{"f2", "Cycle theme"},
				{"f1", "Toggle help"},
				{"ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.palette.Warning)).
		Width(10)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.Accent)).
		Padding(1, 2).
		Width(46)

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

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

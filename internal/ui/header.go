package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/plantview/internal/render"
)

const logo = "plantview"

// renderMain renders the full editor screen.
func (m Model) renderMain() string {
	l := m.layout()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody(l))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader draws the logo, the render status and the theme toggle.
func (m Model) renderHeader() string {
	bg := NewBgStyle(m.palette.Surface)

	left := bg.Spaces(1) + bg.Render(logo, m.styles.Logo) + bg.Spaces(2) + m.statusBadge(bg)
	right := bg.Render(m.themeToggleLabel(), m.styles.MutedText)
	return bg.Spread(left, right, m.width)
}

func (m Model) statusBadge(bg BgStyle) string {
	switch m.sess.Result.Kind {
	case render.KindSuccess:
		return bg.Render("rendered", m.styles.SuccessText)
	case render.KindFailure:
		return bg.Render("error", m.styles.DangerText)
	default:
		return bg.Render("empty", m.styles.FaintText)
	}
}

// themeToggleLabel is the header control that opens the theme panel.
func (m Model) themeToggleLabel() string {
	return " Theme: " + m.sess.Theme.Active().Label + " "
}

// renderFooter shows the latest status message, or the bindings that
// apply to whatever has input.
func (m Model) renderFooter() string {
	bg := NewBgStyle(m.palette.Surface)
	if m.status != "" {
		style := m.styles.MutedText
		if m.statusErr {
			style = m.styles.DangerText
		}
		status := ansi.Truncate(m.status, max(m.width-2, 1), "…")
		return bg.Spread(bg.Spaces(1)+bg.Render(status, style), "", m.width)
	}
	hints := m.help.ShortHelpView(m.keys.contextHelp(m.sess, m.caps.Clipboard))
	return bg.Spread(bg.Spaces(1)+hints, "", m.width)
}

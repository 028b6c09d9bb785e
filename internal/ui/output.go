package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/plantview/internal/preview"
	"github.com/five82/plantview/internal/render"
)

const placeholderText = "Type PlantUML on the left to render a diagram."

// renderBody lays the editor and output panes side by side.
func (m Model) renderBody(l layout) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderEditor(l), m.renderOutput(l))
}

// renderEditor draws the gutter next to the textarea. The gutter starts
// at the textarea's scroll offset.
func (m Model) renderEditor(l layout) string {
	innerW, innerH := max(l.editor.w-2, 1), max(l.editor.h-2, 1)
	gutter := m.styles.FaintText.Render(m.sess.Gutter.Render(innerH))
	body := lipgloss.JoinHorizontal(lipgloss.Top, gutter, " ", m.editor.View())
	return m.styles.FocusedPane.
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH + 2).
		Render(body)
}

// renderOutput draws exactly one of the placeholder, the image or the error,
// with the download block underneath on success.
func (m Model) renderOutput(l layout) string {
	innerW, innerH := max(l.output.w-2, 1), max(l.output.h-2, 1)
	contentH := max(innerH-l.actionRows, 1)

	var content string
	switch m.sess.Result.Kind {
	case render.KindSuccess:
		content = m.renderImage(innerW, contentH)
	case render.KindFailure:
		content = m.renderError(innerW)
	default:
		content = m.renderPlaceholder(innerW, contentH)
	}
	content = lipgloss.NewStyle().
		Width(innerW).
		Height(contentH).
		MaxHeight(contentH).
		Render(content)

	if l.actionRows > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderActions(innerW))
	}
	return m.styles.Pane.
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH + 2).
		Render(content)
}

// renderPlaceholder centers the hint over the backdrop animation.
func (m Model) renderPlaceholder(width, height int) string {
	hint := m.styles.MutedText.Render(placeholderText)
	if m.rain == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, hint)
	}
	frame := m.rain.Render()
	if frame == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, hint)
	}
	rows := strings.Split(frame, "\n")
	if len(rows) > height {
		rows = rows[:height]
	}
	mid := len(rows) / 2
	rows[mid] = lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)
	return strings.Join(rows, "\n")
}

// renderImage draws the rasterised preview above its image reference. A
// failed fetch leaves the image area blank.
func (m Model) renderImage(width, height int) string {
	res := m.sess.Result
	ref := m.styles.FaintText.Render(ansi.Truncate(res.ImageRef, width, "…"))

	current := m.preview.id == res.Identifier
	img := m.preview.img
	if img == nil || !current {
		if current && m.preview.err != nil {
			return ref
		}
		return lipgloss.JoinVertical(lipgloss.Left, m.styles.MutedText.Render("Rendering..."), ref)
	}

	cols := fitColumns(img, width, height-1)
	bg := m.palette.Background
	key := fmt.Sprintf("%s/%d/%s", m.preview.id, cols, bg)
	art := m.cache.get(key, func() string {
		return preview.Render(img, cols, bg)
	})
	return lipgloss.JoinVertical(lipgloss.Left, art, ref)
}

func (m Model) renderError(width int) string {
	return m.styles.DangerText.Width(width).Render(m.sess.Result.Message)
}

// triggerLabel is the download menu toggle.
func (m Model) triggerLabel() string {
	if m.sess.Downloads.IsOpen() {
		return "[Download ^]"
	}
	return "[Download v]"
}

// renderActions draws the open menu entries above the trigger row.
func (m Model) renderActions(width int) string {
	var rows []string
	if m.sess.Downloads.IsOpen() {
		cursor := m.sess.Downloads.Cursor()
		for i, link := range m.sess.Downloads.Links() {
			label := fmt.Sprintf(" %-4s %s", link.Format, link.URL)
			label = ansi.Truncate(label, width, "…")
			style := m.styles.Text
			if i == cursor {
				style = m.styles.Selected
			}
			rows = append(rows, style.Width(width).Render(label))
		}
	}

	trigger := m.styles.AccentText.Render(m.triggerLabel())
	if m.sess.OverlayAvailable() {
		trigger += " " + m.styles.AccentText.Render(expandLabel)
	}
	rows = append(rows, trigger)
	return strings.Join(rows, "\n")
}

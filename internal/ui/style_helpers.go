package ui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/plantview/internal/preview"
)

// BgStyle renders runs of text on one background color. lipgloss resets
// between styled segments, so every space gets the background too.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for the given hex color.
func NewBgStyle(hex string) BgStyle {
	bg := lipgloss.Color(hex)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render styles text word by word, joining with background spaces.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return wordStyle.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = wordStyle.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Spaces returns n background spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Spread places left and right on one width-wide line, filling between.
func (b BgStyle) Spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + b.Spaces(gap) + right
}

// renderCache keeps the last rasterised preview. Rasterising is far slower
// than a frame, and View runs on every animation tick.
type renderCache struct {
	key string
	out string
}

func (c *renderCache) get(key string, build func() string) string {
	if c.key != key {
		c.key = key
		c.out = build()
	}
	return c.out
}

func (c *renderCache) reset() {
	c.key = ""
	c.out = ""
}

// fitColumns sizes img to fit within cols x rows cells without upscaling.
// Each cell row holds two pixel rows.
func fitColumns(img image.Image, cols, rows int) int {
	if img == nil || cols <= 0 || rows <= 0 {
		return 0
	}
	b := img.Bounds()
	byHeight := int(float64(rows*2) * float64(b.Dx()) / float64(b.Dy()))
	return preview.Columns(img, min(cols, max(byHeight, 1)), 1)
}

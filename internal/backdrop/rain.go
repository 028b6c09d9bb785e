// Package backdrop draws the falling-glyph animation shown behind the
// placeholder. It is purely cosmetic.
package backdrop

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/plantview/internal/theme"
)

var glyphs = []rune("ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿ0123456789@#$%&*+=<>")

// Rain is a grid of falling glyph columns.
type Rain struct {
	width, height int
	heads         []int
	cells         [][]rune
	params        theme.Backdrop
	trail         []lipgloss.Style
	head          lipgloss.Style
	rng           *rand.Rand
}

// New returns an empty animation; call Resize before Render.
func New(params theme.Backdrop, seed uint64) *Rain {
	r := &Rain{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	r.Reinit(params)
	return r
}

// Reinit swaps the animation parameters and restarts every column.
func (r *Rain) Reinit(params theme.Backdrop) {
	r.params = params
	r.head = lipgloss.NewStyle().Foreground(lipgloss.Color(params.GlowColor)).Bold(true)

	length := 3 + int(params.ShadowIntensity*8)
	r.trail = make([]lipgloss.Style, length)
	for i := range r.trail {
		t := float64(i+1) / float64(length+1)
		r.trail[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blend(params.GlyphColor, params.FadeColor, t)))
	}
	r.reset()
}

// Resize changes the grid geometry and restarts every column.
func (r *Rain) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = max(width, 0), max(height, 0)
	r.reset()
}

func (r *Rain) reset() {
	r.heads = make([]int, r.width)
	r.cells = make([][]rune, r.height)
	for y := range r.cells {
		r.cells[y] = make([]rune, r.width)
		for x := range r.cells[y] {
			r.cells[y][x] = r.glyph()
		}
	}
	for x := range r.heads {
		if r.height > 0 {
			r.heads[x] = -r.rng.IntN(r.height)
		}
	}
}

func (r *Rain) glyph() rune {
	return glyphs[r.rng.IntN(len(glyphs))]
}

// Step advances every column by one row. Columns past the bottom restart
// once a random draw exceeds the preset's drop-reset threshold.
func (r *Rain) Step() {
	for x := range r.heads {
		r.heads[x]++
		if r.heads[x] >= r.height && r.rng.Float64() > r.params.DropReset {
			r.heads[x] = 0
		}
		if h := r.heads[x]; h >= 0 && h < r.height {
			r.cells[h][x] = r.glyph()
		}
	}
}

// Render draws the current frame as width x height cells.
func (r *Rain) Render() string {
	if r.width == 0 || r.height == 0 {
		return ""
	}
	var b strings.Builder
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			dist := r.heads[x] - y
			switch {
			case dist == 0:
				b.WriteString(r.head.Render(string(r.cells[y][x])))
			case dist > 0 && dist <= len(r.trail):
				b.WriteString(r.trail[dist-1].Render(string(r.cells[y][x])))
			default:
				b.WriteByte(' ')
			}
		}
		if y < r.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Package preview draws raster diagrams as terminal half-block cells.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // renderer png payloads
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const upperHalf = "▀"

// Decode parses an image payload.
func Decode(body []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode image: empty bounds")
	}
	return img, nil
}

// Columns returns the rendered width in cells for img at zoom, where zoom 1
// fits the image into fit columns without upscaling.
func Columns(img image.Image, fit int, zoom float64) int {
	if img == nil || fit <= 0 {
		return 0
	}
	base := min(img.Bounds().Dx(), fit)
	cols := int(math.Round(float64(base) * zoom))
	return max(cols, 1)
}

// Scale resamples img to cols pixels wide, preserving aspect ratio, over an
// opaque background.
func Scale(img image.Image, cols int, background color.Color) *image.RGBA {
	src := img.Bounds()
	rows := int(math.Round(float64(cols) * float64(src.Dy()) / float64(src.Dx())))
	rows = max(rows, 1)
	if rows%2 == 1 {
		rows++
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}

// Render draws img cols cells wide. Each cell carries two vertically stacked
// pixels. Transparent areas take the background color.
func Render(img image.Image, cols int, background string) string {
	if img == nil || cols <= 0 {
		return ""
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}
	scaled := Scale(img, cols, bg)

	b := scaled.Bounds()
	var out strings.Builder
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := hex(scaled.At(x, y))
			bottom := hex(scaled.At(x, y+1))
			out.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
		if y+2 < b.Dy() {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

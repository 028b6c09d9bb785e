package session

import (
	"strconv"
	"strings"
)

// LineCount returns the number of newline-delimited rows in src, at least 1.
func LineCount(src string) int {
	return strings.Count(src, "\n") + 1
}

// Gutter is the line-number column beside the editor. It has no state of
// its own beyond what is derived from the source and the editor's scroll.
type Gutter struct {
	count  int
	offset int
}

// Update recomputes the row count from src.
func (g *Gutter) Update(src string) {
	g.count = LineCount(src)
	if g.offset >= g.count {
		g.offset = g.count - 1
	}
}

// Sync mirrors the editor's scroll offset.
func (g *Gutter) Sync(offset int) {
	if offset < 0 {
		offset = 0
	}
	g.offset = offset
}

// Count returns the number of gutter entries.
func (g *Gutter) Count() int {
	if g.count < 1 {
		return 1
	}
	return g.count
}

// Offset returns the first visible row, zero-based.
func (g *Gutter) Offset() int { return g.offset }

// Numbers returns every entry, 1..Count.
func (g *Gutter) Numbers() []int {
	n := g.Count()
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Render returns height rows of right-aligned numbers starting at the
// scroll offset. Rows past the end are blank.
func (g *Gutter) Render(height int) string {
	if height <= 0 {
		return ""
	}
	n := g.Count()
	width := len(strconv.Itoa(n))
	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		line := g.offset + i + 1
		if line > n {
			rows = append(rows, strings.Repeat(" ", width))
			continue
		}
		num := strconv.Itoa(line)
		rows = append(rows, strings.Repeat(" ", width-len(num))+num)
	}
	return strings.Join(rows, "\n")
}

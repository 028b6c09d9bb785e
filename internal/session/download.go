package session

import "github.com/five82/plantview/internal/render"

// MenuState is the download menu disclosure state.
type MenuState int

const (
	MenuHidden MenuState = iota
	MenuClosed
	MenuOpen
)

func (s MenuState) String() string {
	switch s {
	case MenuClosed:
		return "closed"
	case MenuOpen:
		return "open"
	default:
		return "hidden"
	}
}

// DownloadMenu exposes one link per format for the current identifier.
// It becomes Hidden only through the render pipeline.
type DownloadMenu struct {
	state  MenuState
	links  []render.Link
	cursor int
}

// State returns the disclosure state.
func (d *DownloadMenu) State() MenuState { return d.state }

// Visible reports whether the trigger is shown.
func (d *DownloadMenu) Visible() bool { return d.state != MenuHidden }

// IsOpen reports whether the link list is expanded.
func (d *DownloadMenu) IsOpen() bool { return d.state == MenuOpen }

// Links returns the current links.
func (d *DownloadMenu) Links() []render.Link { return d.links }

// Show replaces every link at once and reveals the trigger. An open menu
// stays open.
func (d *DownloadMenu) Show(links []render.Link) {
	d.links = append([]render.Link(nil), links...)
	if d.cursor >= len(d.links) {
		d.cursor = 0
	}
	if d.state == MenuHidden {
		d.state = MenuClosed
	}
}

// Hide removes the menu after a render without a diagram.
func (d *DownloadMenu) Hide() {
	d.state = MenuHidden
	d.links = nil
	d.cursor = 0
}

// Toggle flips Closed and Open. It reports whether anything changed.
func (d *DownloadMenu) Toggle() bool {
	switch d.state {
	case MenuClosed:
		d.state = MenuOpen
		return true
	case MenuOpen:
		d.state = MenuClosed
		return true
	}
	return false
}

// Dismiss closes an open menu.
func (d *DownloadMenu) Dismiss() bool {
	if d.state != MenuOpen {
		return false
	}
	d.state = MenuClosed
	return true
}

// MoveCursor moves the highlighted entry, wrapping around.
func (d *DownloadMenu) MoveCursor(delta int) {
	n := len(d.links)
	if n == 0 {
		d.cursor = 0
		return
	}
	d.cursor = ((d.cursor+delta)%n + n) % n
}

// Cursor returns the highlighted entry index.
func (d *DownloadMenu) Cursor() int { return d.cursor }

// Selected returns the highlighted link while the menu is open.
func (d *DownloadMenu) Selected() (render.Link, bool) {
	if d.state != MenuOpen || len(d.links) == 0 {
		return render.Link{}, false
	}
	return d.links[d.cursor], true
}

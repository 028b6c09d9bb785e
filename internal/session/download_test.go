package session

import (
	"testing"

	"github.com/five82/plantview/internal/render"
)

func testLinks(id string) []render.Link {
	return render.NewLinks("https://r", nil).All(id)
}

func TestDownloadMenu_HiddenUntilShown(t *testing.T) {
	var d DownloadMenu
	if d.Visible() || d.Toggle() || d.Dismiss() {
		t.Fatalf("hidden menu responded to input: %v", d.State())
	}
	if _, ok := d.Selected(); ok {
		t.Fatalf("hidden menu has a selection")
	}
}

func TestDownloadMenu_Transitions(t *testing.T) {
	var d DownloadMenu
	d.Show(testLinks("a"))
	if d.State() != MenuClosed {
		t.Fatalf("after Show state = %v, want closed", d.State())
	}
	if !d.Toggle() || d.State() != MenuOpen {
		t.Fatalf("Toggle from closed: %v", d.State())
	}
	if !d.Toggle() || d.State() != MenuClosed {
		t.Fatalf("Toggle from open: %v", d.State())
	}
	d.Toggle()
	if !d.Dismiss() || d.State() != MenuClosed {
		t.Fatalf("Dismiss from open: %v", d.State())
	}
	if d.Dismiss() {
		t.Fatalf("Dismiss from closed reported a change")
	}
	d.Hide()
	if d.State() != MenuHidden || len(d.Links()) != 0 {
		t.Fatalf("Hide: state=%v links=%d", d.State(), len(d.Links()))
	}
}

func TestDownloadMenu_CursorAndSelection(t *testing.T) {
	var d DownloadMenu
	d.Show(testLinks("abc"))
	d.Toggle()

	d.MoveCursor(-1)
	link, ok := d.Selected()
	if !ok || link.Format != render.FormatTXT {
		t.Fatalf("Selected after wrap = %#v, %v; want txt", link, ok)
	}
	d.MoveCursor(2)
	link, _ = d.Selected()
	if link.Format != render.FormatSVG {
		t.Fatalf("Selected = %q, want svg", link.Format)
	}

	d.Show(testLinks("xyz"))
	link, _ = d.Selected()
	if link.URL != "https://r/svg/xyz" {
		t.Fatalf("Selected after refresh = %q, want refreshed svg link", link.URL)
	}
}

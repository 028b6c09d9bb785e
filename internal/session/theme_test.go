package session

import (
	"bytes"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/five82/plantview/internal/theme"
)

type memStore struct {
	stored  string
	loadErr error
	saveErr error
	saved   string
	saves   int
}

func (m *memStore) LoadTheme() (string, error) { return m.stored, m.loadErr }

func (m *memStore) SaveTheme(key string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = key
	return nil
}

type recordingBackdrop struct {
	calls []theme.Backdrop
}

func (r *recordingBackdrop) Reinit(p theme.Backdrop) { r.calls = append(r.calls, p) }

func sortedClasses(c *ThemeController) []string {
	out := c.Classes()
	sort.Strings(out)
	return out
}

func TestThemeController_RoundTripRestoresClasses(t *testing.T) {
	for _, key := range theme.Keys() {
		direct := NewThemeController(nil, nil, nil)
		direct.Apply(key, false)

		roundTrip := NewThemeController(nil, nil, nil)
		persisted := roundTrip.Apply(key, false).Key
		roundTrip.Apply("dracula", false)
		roundTrip.Apply(persisted, false)

		a, b := sortedClasses(direct), sortedClasses(roundTrip)
		if strings.Join(a, ",") != strings.Join(b, ",") {
			t.Fatalf("key %q: classes %v after round trip, want %v", key, b, a)
		}
		if len(a) > 1 {
			t.Fatalf("key %q: %d classes applied, want at most 1", key, len(a))
		}
	}
}

func TestThemeController_UnknownKeyFallsBack(t *testing.T) {
	c := NewThemeController(nil, nil, nil)
	c.Apply("slate", false)
	got := c.Apply("no-such-theme", false)
	if got.Key != theme.DefaultKey || c.ActiveKey() != theme.DefaultKey {
		t.Fatalf("Apply(unknown) = %q, want %q", got.Key, theme.DefaultKey)
	}
	if len(c.Classes()) != 0 {
		t.Fatalf("Classes() = %v, want none for default preset", c.Classes())
	}
}

func TestThemeController_OptionsMarkActive(t *testing.T) {
	c := NewThemeController(nil, nil, nil)
	c.Apply("amber", false)
	active := 0
	for _, opt := range c.Options() {
		if opt.Active {
			active++
			if opt.Key != "amber" {
				t.Fatalf("active option = %q, want amber", opt.Key)
			}
		}
	}
	if active != 1 {
		t.Fatalf("%d active options, want 1", active)
	}
}

func TestThemeController_PersistAndReinit(t *testing.T) {
	store := &memStore{}
	bd := &recordingBackdrop{}
	c := NewThemeController(store, bd, nil)

	c.Apply("dracula", false)
	if store.saves != 0 || len(bd.calls) != 0 {
		t.Fatalf("suppressed apply persisted (%d) or reinit (%d)", store.saves, len(bd.calls))
	}

	c.Apply("slate", true)
	if store.saved != "slate" {
		t.Fatalf("saved = %q, want slate", store.saved)
	}
	if len(bd.calls) != 1 || bd.calls[0] != theme.Get("slate").Backdrop {
		t.Fatalf("reinit calls = %#v, want slate backdrop", bd.calls)
	}
}

func TestThemeController_SaveFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	store := &memStore{saveErr: errors.New("disk full")}
	bd := &recordingBackdrop{}
	c := NewThemeController(store, bd, logger)

	got := c.Apply("amber", true)
	if got.Key != "amber" || c.ActiveKey() != "amber" {
		t.Fatalf("active = %q, want amber despite save failure", c.ActiveKey())
	}
	if !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("log = %q, want save error logged", buf.String())
	}
	if len(bd.calls) != 1 {
		t.Fatalf("reinit calls = %d, want 1", len(bd.calls))
	}
}

func TestThemeController_Startup(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		store := &memStore{stored: "dracula"}
		c := NewThemeController(store, nil, nil)
		if got := c.Startup("slate"); got.Key != "dracula" {
			t.Fatalf("Startup = %q, want dracula", got.Key)
		}
		if store.saves != 0 {
			t.Fatalf("Startup persisted")
		}
	})
	t.Run("unset", func(t *testing.T) {
		store := &memStore{}
		c := NewThemeController(store, nil, nil)
		if got := c.Startup("slate"); got.Key != "slate" {
			t.Fatalf("Startup = %q, want slate fallback", got.Key)
		}
		if store.saves != 0 {
			t.Fatalf("Startup persisted")
		}
	})
	t.Run("unknown stored key", func(t *testing.T) {
		store := &memStore{stored: "neon"}
		c := NewThemeController(store, nil, nil)
		if got := c.Startup("slate"); got.Key != "slate" {
			t.Fatalf("Startup = %q, want slate fallback", got.Key)
		}
		if store.saves != 0 {
			t.Fatalf("Startup persisted")
		}
	})
	t.Run("unavailable", func(t *testing.T) {
		var buf bytes.Buffer
		store := &memStore{stored: "amber", loadErr: errors.New("permission denied")}
		c := NewThemeController(store, nil, slog.New(slog.NewTextHandler(&buf, nil)))
		if got := c.Startup(""); got.Key != theme.DefaultKey {
			t.Fatalf("Startup = %q, want default", got.Key)
		}
		if store.saves != 0 {
			t.Fatalf("Startup persisted")
		}
		if !strings.Contains(buf.String(), "permission denied") {
			t.Fatalf("log = %q, want read error logged", buf.String())
		}
	})
	t.Run("no store", func(t *testing.T) {
		c := NewThemeController(nil, nil, nil)
		if got := c.Startup("amber"); got.Key != "amber" {
			t.Fatalf("Startup = %q, want amber", got.Key)
		}
	})
}

func TestThemeMenu(t *testing.T) {
	var m ThemeMenu
	if m.Close() {
		t.Fatalf("Close on closed menu reported a change")
	}
	m.Toggle(2)
	if !m.IsOpen() || m.Cursor() != 2 {
		t.Fatalf("Toggle: open=%v cursor=%d", m.IsOpen(), m.Cursor())
	}
	m.MoveCursor(3, 4)
	if m.Cursor() != 1 {
		t.Fatalf("MoveCursor wrap = %d, want 1", m.Cursor())
	}
	m.MoveCursor(-2, 4)
	if m.Cursor() != 3 {
		t.Fatalf("MoveCursor negative wrap = %d, want 3", m.Cursor())
	}
	if !m.Close() || m.IsOpen() {
		t.Fatalf("Close failed")
	}
}

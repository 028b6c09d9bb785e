package session

import (
	"log/slog"

	"github.com/five82/plantview/internal/theme"
)

// PreferenceStore persists the theme key. Either call may fail when storage
// is unavailable.
type PreferenceStore interface {
	LoadTheme() (string, error)
	SaveTheme(key string) error
}

// Reinitializer restarts the backdrop animation for new parameters.
type Reinitializer interface {
	Reinit(params theme.Backdrop)
}

// ThemeOption is one entry of the theme selector.
type ThemeOption struct {
	Key    string
	Label  string
	Active bool
}

// ThemeController tracks the active preset. Store and backdrop are optional.
type ThemeController struct {
	active   theme.Preset
	classes  map[string]struct{}
	store    PreferenceStore
	backdrop Reinitializer
	logger   *slog.Logger
}

// NewThemeController returns a controller on the default preset. Nothing is
// persisted until Apply is called with persist set.
func NewThemeController(store PreferenceStore, backdrop Reinitializer, logger *slog.Logger) *ThemeController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &ThemeController{
		classes:  make(map[string]struct{}),
		store:    store,
		backdrop: backdrop,
		logger:   logger,
	}
	c.swap(theme.Get(theme.DefaultKey))
	return c
}

// Startup applies the stored preference, or fallback when storage is
// unavailable, unset or names an unknown preset. It never writes.
func (c *ThemeController) Startup(fallback string) theme.Preset {
	key := fallback
	if c.store != nil {
		stored, err := c.store.LoadTheme()
		switch {
		case err != nil:
			c.logger.Warn("theme preference unavailable", "error", err)
		case stored == "":
			// unset
		default:
			if _, ok := theme.Lookup(stored); !ok {
				c.logger.Debug("unknown stored theme, using fallback", "theme", stored, "fallback", fallback)
				break
			}
			key = stored
		}
	}
	return c.Apply(key, false)
}

// Apply activates key, falling back to the default preset for unknown keys.
// With persist the choice is saved and the backdrop re-initialised; a failed
// save is logged and otherwise ignored.
func (c *ThemeController) Apply(key string, persist bool) theme.Preset {
	if _, ok := theme.Lookup(key); !ok {
		c.logger.Debug("unknown theme, using default", "theme", key)
	}
	preset := theme.Get(key)
	c.swap(preset)

	if !persist {
		return preset
	}
	if c.store != nil {
		if err := c.store.SaveTheme(preset.Key); err != nil {
			c.logger.Warn("save theme preference", "theme", preset.Key, "error", err)
		}
	}
	if c.backdrop != nil {
		c.backdrop.Reinit(preset.Backdrop)
	}
	return preset
}

// Cycle applies and persists the preset after the active one.
func (c *ThemeController) Cycle() theme.Preset {
	return c.Apply(theme.Next(c.active.Key), true)
}

func (c *ThemeController) swap(preset theme.Preset) {
	if c.active.Class != "" {
		delete(c.classes, c.active.Class)
	}
	if preset.Class != "" {
		c.classes[preset.Class] = struct{}{}
	}
	c.active = preset
}

// Active returns the active preset.
func (c *ThemeController) Active() theme.Preset { return c.active }

// ActiveKey returns the key that is (or would be) persisted.
func (c *ThemeController) ActiveKey() string { return c.active.Key }

// Classes returns the style classes currently applied.
func (c *ThemeController) Classes() []string {
	out := make([]string, 0, len(c.classes))
	for cls := range c.classes {
		out = append(out, cls)
	}
	return out
}

// Options lists every preset with the active one marked.
func (c *ThemeController) Options() []ThemeOption {
	keys := theme.Keys()
	out := make([]ThemeOption, 0, len(keys))
	for _, k := range keys {
		p := theme.Get(k)
		out = append(out, ThemeOption{Key: p.Key, Label: p.Label, Active: p.Key == c.active.Key})
	}
	return out
}

// ThemeMenu is the open/closed state of the theme selector panel.
type ThemeMenu struct {
	open   bool
	cursor int
}

// IsOpen reports whether the panel is shown.
func (m *ThemeMenu) IsOpen() bool { return m.open }

// Toggle opens or closes the panel, placing the cursor on activeIdx.
func (m *ThemeMenu) Toggle(activeIdx int) {
	m.open = !m.open
	if m.open {
		m.cursor = activeIdx
	}
}

// Close hides the panel.
func (m *ThemeMenu) Close() bool {
	if !m.open {
		return false
	}
	m.open = false
	return true
}

// MoveCursor moves the highlighted option among n entries.
func (m *ThemeMenu) MoveCursor(delta, n int) {
	if n <= 0 {
		m.cursor = 0
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Cursor returns the highlighted option index.
func (m *ThemeMenu) Cursor() int { return m.cursor }

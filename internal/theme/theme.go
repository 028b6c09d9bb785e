// Package theme defines the fixed set of named presets: a terminal palette
// plus the parameters of the falling-glyph backdrop.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Backdrop holds the cosmetic animation parameters of a preset. They are
// swapped as a unit on theme change.
type Backdrop struct {
	GlyphColor      string
	GlowColor       string
	ShadowIntensity float64 // 0..1, how strongly trailing glyphs fade
	FadeColor       string  // color trailing glyphs fade toward
	Background      string
	DropReset       float64 // probability threshold for restarting a column
}

// Palette is the set of colors the UI draws with.
type Palette struct {
	Background string
	Surface    string
	SurfaceAlt string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Preset is one selectable theme.
type Preset struct {
	Key      string
	Label    string
	Class    string // optional page-wide style class, empty for none
	Palette  Palette
	Backdrop Backdrop
}

// DefaultKey is the preset used when nothing valid is selected.
const DefaultKey = "matrix"

var presets = map[string]Preset{
	"matrix":  matrixPreset(),
	"dracula": draculaPreset(),
	"slate":   slatePreset(),
	"amber":   amberPreset(),
}

var order = []string{"matrix", "dracula", "slate", "amber"}

// Lookup returns the preset for key and whether it exists. Keys are
// case-insensitive.
func Lookup(key string) (Preset, bool) {
	p, ok := presets[normalize(key)]
	return p, ok
}

// Get returns the preset for key, falling back to the default preset.
func Get(key string) Preset {
	if p, ok := Lookup(key); ok {
		return p
	}
	return presets[DefaultKey]
}

// Resolve returns the canonical key for key, or DefaultKey when unknown.
func Resolve(key string) string {
	if _, ok := Lookup(key); ok {
		return normalize(key)
	}
	return DefaultKey
}

// Next returns the key after current in the cycle.
func Next(current string) string {
	current = normalize(current)
	for i, k := range order {
		if k == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Keys returns the preset keys in display order.
func Keys() []string {
	dup := make([]string, len(order))
	copy(dup, order)
	return dup
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Blend mixes color a toward b by t in [0,1]. Invalid colors return a.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	if t <= 0 {
		return ca.Hex()
	}
	if t >= 1 {
		return cb.Hex()
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

// Faded returns a copy of the palette with every foreground pulled toward the
// backdrop fade color. Used while the overlay fades out.
func (p Preset) Faded(t float64) Palette {
	out := p.Palette
	target := p.Backdrop.FadeColor
	for _, c := range []*string{&out.Text, &out.Muted, &out.Faint, &out.Accent, &out.BorderFocus, &out.Border} {
		*c = Blend(*c, target, t)
	}
	return out
}

func matrixPreset() Preset {
	return Preset{
		Key:   "matrix",
		Label: "Matrix",
		Palette: Palette{
			Background:    "#000000",
			Surface:       "#050f05",
			SurfaceAlt:    "#0a1a0a",
			SelectionBg:   "#14532d",
			SelectionText: "#dcfce7",
			Border:        "#166534",
			BorderFocus:   "#22c55e",
			Text:          "#d1fae5",
			Muted:         "#4ade80",
			Faint:         "#15803d",
			Accent:        "#00ff41",
			Success:       "#22c55e",
			Warning:       "#facc15",
			Danger:        "#f87171",
			Info:          "#67e8f9",
		},
		Backdrop: Backdrop{
			GlyphColor:      "#00ff41",
			GlowColor:       "#b9ffc9",
			ShadowIntensity: 0.8,
			FadeColor:       "#000000",
			Background:      "#000000",
			DropReset:       0.975,
		},
	}
}

func draculaPreset() Preset {
	// Official Dracula palette: https://draculatheme.com/spec
	return Preset{
		Key:   "dracula",
		Label: "Dracula",
		Class: "theme-dracula",
		Palette: Palette{
			Background:    "#191A21",
			Surface:       "#282A36",
			SurfaceAlt:    "#21222C",
			SelectionBg:   "#44475A",
			SelectionText: "#F8F8F2",
			Border:        "#44475A",
			BorderFocus:   "#BD93F9",
			Text:          "#F8F8F2",
			Muted:         "#6272A4",
			Faint:         "#44475A",
			Accent:        "#BD93F9",
			Success:       "#50FA7B",
			Warning:       "#FFB86C",
			Danger:        "#FF5555",
			Info:          "#8BE9FD",
		},
		Backdrop: Backdrop{
			GlyphColor:      "#BD93F9",
			GlowColor:       "#FF79C6",
			ShadowIntensity: 0.6,
			FadeColor:       "#191A21",
			Background:      "#191A21",
			DropReset:       0.98,
		},
	}
}

func slatePreset() Preset {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Preset{
		Key:   "slate",
		Label: "Slate",
		Class: "theme-slate",
		Palette: Palette{
			Background:    "#020617", // slate-950
			Surface:       "#0f172a", // slate-900
			SurfaceAlt:    "#1e293b", // slate-800
			SelectionBg:   "#0284c7", // sky-600
			SelectionText: "#f8fafc", // slate-50
			Border:        "#334155", // slate-700
			BorderFocus:   "#38bdf8", // sky-400
			Text:          "#f1f5f9", // slate-100
			Muted:         "#94a3b8", // slate-400
			Faint:         "#64748b", // slate-500
			Accent:        "#38bdf8", // sky-400
			Success:       "#22c55e", // green-500
			Warning:       "#f59e0b", // amber-500
			Danger:        "#ef4444", // red-500
			Info:          "#06b6d4", // cyan-500
		},
		Backdrop: Backdrop{
			GlyphColor:      "#64748b",
			GlowColor:       "#38bdf8",
			ShadowIntensity: 0.5,
			FadeColor:       "#020617",
			Background:      "#020617",
			DropReset:       0.985,
		},
	}
}

func amberPreset() Preset {
	return Preset{
		Key:   "amber",
		Label: "Amber CRT",
		Class: "theme-amber",
		Palette: Palette{
			Background:    "#120a00",
			Surface:       "#1c1000",
			SurfaceAlt:    "#261600",
			SelectionBg:   "#78350f",
			SelectionText: "#fff7ed",
			Border:        "#92400e",
			BorderFocus:   "#fbbf24",
			Text:          "#fde68a",
			Muted:         "#d97706",
			Faint:         "#92400e",
			Accent:        "#ffb000",
			Success:       "#a3e635",
			Warning:       "#fbbf24",
			Danger:        "#f87171",
			Info:          "#fcd34d",
		},
		Backdrop: Backdrop{
			GlyphColor:      "#ffb000",
			GlowColor:       "#ffe08a",
			ShadowIntensity: 0.7,
			FadeColor:       "#120a00",
			Background:      "#120a00",
			DropReset:       0.97,
		},
	}
}

// Styles returns Lipgloss styles for the palette.
func (p Palette) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SelectionBg)).
			Foreground(lipgloss.Color(p.SelectionText)),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.BorderFocus)),
	}
}

// Styles contains pre-built Lipgloss styles for a palette.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
}

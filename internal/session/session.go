package session

import (
	"log/slog"

	"github.com/five82/plantview/internal/render"
)

// State is the single UI-state record of an editing session. Controllers
// are mutated only through Dispatch so each transition can be tested
// without a terminal.
type State struct {
	Source    string
	Result    render.Result
	Downloads DownloadMenu
	Overlay   Overlay
	Gutter    Gutter
	ThemeMenu ThemeMenu
	Theme     *ThemeController

	pipeline render.Pipeline
	logger   *slog.Logger
}

// New builds a session on an empty source. A nil theme controller gets one
// with no storage and no backdrop.
func New(pipeline render.Pipeline, themes *ThemeController, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if themes == nil {
		themes = NewThemeController(nil, nil, logger)
	}
	s := &State{
		Overlay:  NewOverlay(),
		Theme:    themes,
		pipeline: pipeline,
		logger:   logger,
	}
	s.Gutter.Update("")
	return s
}

// Pipeline returns the render pipeline.
func (s *State) Pipeline() render.Pipeline { return s.pipeline }

// OverlayAvailable reports whether the open-overlay affordance is shown.
func (s *State) OverlayAvailable() bool { return s.Result.Succeeded() }

// Seed loads the code parameter of rawURL into the session and renders
// once. It reports whether a seed was found.
func (s *State) Seed(rawURL string) (Effects, bool) {
	code := CodeFromURL(rawURL)
	s.logger.Debug("url bootstrap", "found", code != "")
	if code == "" {
		return Effects{}, false
	}
	return s.Dispatch(SourceChanged{Text: code}), true
}

// Effects lists the asynchronous follow-ups a transition asks the host to
// schedule.
type Effects struct {
	// Settle requests an OverlaySettled event on the next frame.
	Settle bool
	// AwaitTransition requests an OverlayTransitionEnded event once the
	// fade-out finishes.
	AwaitTransition bool
	// LoadImage is the identifier whose preview should be fetched.
	LoadImage string
	// ThemeChanged is set when the active preset changed.
	ThemeChanged bool
}

// Dispatch applies ev to the relevant controller.
func (s *State) Dispatch(ev Event) Effects {
	switch ev := ev.(type) {
	case SourceChanged:
		return s.setSource(ev.Text)
	case Scrolled:
		s.Gutter.Sync(ev.Offset)
	case ToggleDownloads:
		s.Downloads.Toggle()
	case DownloadCursor:
		s.Downloads.MoveCursor(ev.Delta)
	case PointerPress:
		return s.pointerPress(ev.Target)
	case Cancel:
		return s.cancel()
	case OpenOverlay:
		if s.OverlayAvailable() && s.Overlay.Open(s.Result.ImageRef) {
			s.Downloads.Dismiss()
			return Effects{Settle: true, LoadImage: s.Result.Identifier}
		}
	case CloseOverlay:
		if s.Overlay.Close(ev.Immediate) && !ev.Immediate {
			return Effects{AwaitTransition: true}
		}
	case OverlaySettled:
		s.Overlay.Settle()
	case OverlayTransitionEnded:
		s.Overlay.TransitionEnd(ev.Fade)
	case ZoomIn:
		if s.Overlay.Active() {
			s.Overlay.ZoomIn()
		}
	case ZoomOut:
		if s.Overlay.Active() {
			s.Overlay.ZoomOut()
		}
	case ZoomReset:
		if s.Overlay.Active() {
			s.Overlay.ResetZoom()
		}
	case ZoomSet:
		if s.Overlay.Active() {
			s.Overlay.SetZoom(ev.Factor)
		}
	case ToggleThemeMenu:
		s.ThemeMenu.Toggle(s.activeThemeIndex())
	case ThemeCursor:
		s.ThemeMenu.MoveCursor(ev.Delta, len(s.Theme.Options()))
	case SelectTheme:
		key := ev.Key
		if key == "" {
			opts := s.Theme.Options()
			key = opts[s.ThemeMenu.Cursor()%len(opts)].Key
		}
		before := s.Theme.ActiveKey()
		s.Theme.Apply(key, true)
		return Effects{ThemeChanged: before != s.Theme.ActiveKey()}
	case CycleTheme:
		before := s.Theme.ActiveKey()
		s.Theme.Cycle()
		return Effects{ThemeChanged: before != s.Theme.ActiveKey()}
	}
	return Effects{}
}

func (s *State) setSource(text string) Effects {
	s.Source = text
	s.Gutter.Update(text)

	res := s.pipeline.Render(text)
	s.Result = res
	switch res.Kind {
	case render.KindSuccess:
		s.Downloads.Show(res.Links)
		s.logger.Debug("diagram rendered", "identifier", res.Identifier)
		return Effects{LoadImage: res.Identifier}
	case render.KindFailure:
		s.logger.Debug("diagram encode failed", "message", res.Message)
	}
	s.Downloads.Hide()
	s.Overlay.Close(true)
	return Effects{}
}

func (s *State) pointerPress(target Region) Effects {
	if s.Overlay.Shown() {
		if target == RegionOverlayBackdrop && s.Overlay.Close(false) {
			return Effects{AwaitTransition: true}
		}
		return Effects{}
	}
	if target != RegionDownloadMenu && target != RegionDownloadTrigger {
		s.Downloads.Dismiss()
	}
	if target != RegionThemePanel && target != RegionThemeToggle {
		s.ThemeMenu.Close()
	}
	return Effects{}
}

func (s *State) cancel() Effects {
	var fx Effects
	if s.Overlay.Active() && s.Overlay.Close(false) {
		fx.AwaitTransition = true
	}
	s.Downloads.Dismiss()
	s.ThemeMenu.Close()
	return fx
}

func (s *State) activeThemeIndex() int {
	for i, opt := range s.Theme.Options() {
		if opt.Active {
			return i
		}
	}
	return 0
}

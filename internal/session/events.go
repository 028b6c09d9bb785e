package session

// Event is an input delivered to State.Dispatch.
type Event interface {
	isEvent()
}

// Region identifies what a pointer press landed on.
type Region int

const (
	RegionOther Region = iota
	RegionDownloadTrigger
	RegionDownloadMenu
	RegionOverlayContent
	RegionOverlayBackdrop
	RegionThemeToggle
	RegionThemePanel
)

type (
	// SourceChanged carries the full editor text after an edit.
	SourceChanged struct{ Text string }
	// Scrolled carries the editor's first visible row.
	Scrolled struct{ Offset int }

	// ToggleDownloads activates the download trigger.
	ToggleDownloads struct{}
	// DownloadCursor moves the highlighted download entry.
	DownloadCursor struct{ Delta int }

	// PointerPress is a mouse press on Target.
	PointerPress struct{ Target Region }
	// Cancel is the cancel key.
	Cancel struct{}

	OpenOverlay            struct{}
	CloseOverlay           struct{ Immediate bool }
	OverlaySettled         struct{}
	OverlayTransitionEnded struct{ Fade uint64 }

	ZoomIn    struct{}
	ZoomOut   struct{}
	ZoomReset struct{}
	ZoomSet   struct{ Factor float64 }

	ToggleThemeMenu struct{}
	ThemeCursor     struct{ Delta int }
	// SelectTheme applies Key, or the highlighted option when Key is empty.
	SelectTheme struct{ Key string }
	CycleTheme  struct{}
)

func (SourceChanged) isEvent()          {}
func (Scrolled) isEvent()               {}
func (ToggleDownloads) isEvent()        {}
func (DownloadCursor) isEvent()         {}
func (PointerPress) isEvent()           {}
func (Cancel) isEvent()                 {}
func (OpenOverlay) isEvent()            {}
func (CloseOverlay) isEvent()           {}
func (OverlaySettled) isEvent()         {}
func (OverlayTransitionEnded) isEvent() {}
func (ZoomIn) isEvent()                 {}
func (ZoomOut) isEvent()                {}
func (ZoomReset) isEvent()              {}
func (ZoomSet) isEvent()                {}
func (ToggleThemeMenu) isEvent()        {}
func (ThemeCursor) isEvent()            {}
func (SelectTheme) isEvent()            {}
func (CycleTheme) isEvent()             {}

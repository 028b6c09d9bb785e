package session

import "math"

// Zoom bounds and step for the overlay viewer.
const (
	MinZoom     = 0.5
	MaxZoom     = 3.0
	ZoomStep    = 0.25
	DefaultZoom = 1.0
)

// OverlayPhase is the overlay's visibility state.
type OverlayPhase int

const (
	OverlayClosed OverlayPhase = iota
	OverlayOpening
	OverlayOpen
	OverlayClosing
)

func (p OverlayPhase) String() string {
	switch p {
	case OverlayOpening:
		return "opening"
	case OverlayOpen:
		return "open"
	case OverlayClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Overlay is a modal image viewer with a clamped zoom factor.
type Overlay struct {
	phase OverlayPhase
	zoom  float64
	image string
	fade  uint64 // bumped on each deferred close
}

// NewOverlay returns a closed overlay at default zoom.
func NewOverlay() Overlay {
	return Overlay{zoom: DefaultZoom}
}

// Phase returns the current phase.
func (o *Overlay) Phase() OverlayPhase { return o.phase }

// Image returns the displayed image reference, empty once hidden.
func (o *Overlay) Image() string { return o.image }

// Zoom returns the zoom factor.
func (o *Overlay) Zoom() float64 {
	if o.zoom == 0 {
		return DefaultZoom
	}
	return o.zoom
}

// Fade identifies the latest deferred close. A transition end carrying an
// older value belongs to a fade that was interrupted.
func (o *Overlay) Fade() uint64 { return o.fade }

// Shown reports whether the overlay occupies the screen, including while it
// fades out.
func (o *Overlay) Shown() bool { return o.phase != OverlayClosed }

// Active reports whether the overlay accepts zoom input.
func (o *Overlay) Active() bool {
	return o.phase == OverlayOpening || o.phase == OverlayOpen
}

// Open shows image. It is a no-op without an image reference.
func (o *Overlay) Open(image string) bool {
	if image == "" {
		return false
	}
	o.image = image
	o.phase = OverlayOpening
	return true
}

// Settle runs on the animation opportunity after Open and marks the
// overlay fully visible with zoom reset.
func (o *Overlay) Settle() bool {
	if o.phase != OverlayOpening {
		return false
	}
	o.phase = OverlayOpen
	o.zoom = DefaultZoom
	return true
}

// Close hides the overlay. Without immediate it enters Closing and waits
// for TransitionEnd; if that never arrives the overlay stays Closing.
func (o *Overlay) Close(immediate bool) bool {
	if o.phase == OverlayClosed {
		return false
	}
	if immediate {
		o.phase = OverlayClosed
		o.image = ""
		return true
	}
	if o.phase == OverlayClosing {
		return false
	}
	o.phase = OverlayClosing
	o.fade++
	return true
}

// TransitionEnd completes the deferred close identified by fade.
func (o *Overlay) TransitionEnd(fade uint64) bool {
	if o.phase != OverlayClosing || fade != o.fade {
		return false
	}
	o.phase = OverlayClosed
	o.image = ""
	return true
}

// SetZoom stores factor clamped to [MinZoom, MaxZoom]. NaN resets.
func (o *Overlay) SetZoom(factor float64) float64 {
	o.zoom = ClampZoom(factor)
	return o.zoom
}

// ZoomIn raises zoom by one step.
func (o *Overlay) ZoomIn() float64 { return o.SetZoom(o.Zoom() + ZoomStep) }

// ZoomOut lowers zoom by one step.
func (o *Overlay) ZoomOut() float64 { return o.SetZoom(o.Zoom() - ZoomStep) }

// ResetZoom restores the default zoom.
func (o *Overlay) ResetZoom() float64 { return o.SetZoom(DefaultZoom) }

// ClampZoom bounds factor to the allowed zoom range.
func ClampZoom(factor float64) float64 {
	switch {
	case math.IsNaN(factor):
		return DefaultZoom
	case factor < MinZoom:
		return MinZoom
	case factor > MaxZoom:
		return MaxZoom
	}
	return factor
}

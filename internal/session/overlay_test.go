package session

import (
	"math"
	"testing"
)

func TestOverlay_OpenRequiresImage(t *testing.T) {
	o := NewOverlay()
	if o.Open("") {
		t.Fatalf("Open(\"\") returned true")
	}
	if o.Phase() != OverlayClosed {
		t.Fatalf("phase = %v, want closed", o.Phase())
	}
}

func TestOverlay_OpenSettleClose(t *testing.T) {
	o := NewOverlay()
	if !o.Open("https://r/png/abc") || o.Phase() != OverlayOpening {
		t.Fatalf("Open: phase = %v", o.Phase())
	}
	o.SetZoom(2.5)
	if !o.Settle() || o.Phase() != OverlayOpen || o.Zoom() != DefaultZoom {
		t.Fatalf("Settle: phase=%v zoom=%v", o.Phase(), o.Zoom())
	}
	if o.Settle() {
		t.Fatalf("second Settle reported a change")
	}

	if !o.Close(false) || o.Phase() != OverlayClosing {
		t.Fatalf("Close(false): phase = %v", o.Phase())
	}
	if o.Image() == "" || !o.Shown() {
		t.Fatalf("deferred close cleared the image before the transition ended")
	}
	if o.Close(false) {
		t.Fatalf("second deferred close reported a change")
	}
	if !o.TransitionEnd(o.Fade()) || o.Phase() != OverlayClosed || o.Image() != "" {
		t.Fatalf("TransitionEnd: phase=%v image=%q", o.Phase(), o.Image())
	}
	if o.TransitionEnd(o.Fade()) {
		t.Fatalf("TransitionEnd on closed overlay reported a change")
	}
}

func TestOverlay_MissingTransitionEndStaysClosing(t *testing.T) {
	o := NewOverlay()
	o.Open("ref")
	o.Settle()
	o.Close(false)
	if o.Phase() != OverlayClosing || !o.Shown() || o.Active() {
		t.Fatalf("phase=%v shown=%v active=%v", o.Phase(), o.Shown(), o.Active())
	}
	if !o.Close(true) || o.Phase() != OverlayClosed {
		t.Fatalf("immediate close from closing failed")
	}
}

func TestOverlay_InterruptedFadeIgnoresEarlierEnd(t *testing.T) {
	o := NewOverlay()
	o.Open("ref")
	o.Settle()
	o.Close(false)
	first := o.Fade()

	o.Open("ref")
	o.Settle()
	o.Close(false)
	if o.Fade() == first {
		t.Fatalf("second close reused fade %d", first)
	}
	if o.TransitionEnd(first) || o.Phase() != OverlayClosing {
		t.Fatalf("earlier fade ended the current one: phase=%v", o.Phase())
	}
	if !o.TransitionEnd(o.Fade()) || o.Phase() != OverlayClosed {
		t.Fatalf("current fade did not close: phase=%v", o.Phase())
	}
}

func TestOverlay_SettleIgnoredAfterClose(t *testing.T) {
	o := NewOverlay()
	o.Open("ref")
	o.Close(true)
	if o.Settle() || o.Phase() != OverlayClosed {
		t.Fatalf("late Settle reopened the overlay")
	}
}

func TestOverlay_ZoomClamps(t *testing.T) {
	o := NewOverlay()
	cases := []struct {
		in, want float64
	}{
		{-10, MinZoom},
		{0, MinZoom},
		{0.5, 0.5},
		{1.75, 1.75},
		{3, 3},
		{99, MaxZoom},
		{math.Inf(1), MaxZoom},
		{math.Inf(-1), MinZoom},
		{math.NaN(), DefaultZoom},
	}
	for _, tc := range cases {
		if got := o.SetZoom(tc.in); got != tc.want || o.Zoom() != tc.want {
			t.Fatalf("SetZoom(%v) = %v (stored %v), want %v", tc.in, got, o.Zoom(), tc.want)
		}
	}
}

func TestOverlay_ZoomStepsSaturate(t *testing.T) {
	o := NewOverlay()
	o.SetZoom(MaxZoom)
	for i := 0; i < 5; i++ {
		if got := o.ZoomIn(); got != MaxZoom {
			t.Fatalf("ZoomIn at max = %v", got)
		}
	}
	o.SetZoom(MinZoom)
	for i := 0; i < 5; i++ {
		if got := o.ZoomOut(); got != MinZoom {
			t.Fatalf("ZoomOut at min = %v", got)
		}
	}
	if got := o.ZoomIn(); got != MinZoom+ZoomStep {
		t.Fatalf("ZoomIn from min = %v", got)
	}
	if got := o.ResetZoom(); got != 1.0 {
		t.Fatalf("ResetZoom = %v, want 1.0", got)
	}
}

func TestOverlay_ZeroValueZoom(t *testing.T) {
	var o Overlay
	if o.Zoom() != DefaultZoom {
		t.Fatalf("zero Overlay Zoom() = %v, want %v", o.Zoom(), DefaultZoom)
	}
}

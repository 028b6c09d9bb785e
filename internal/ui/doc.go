// Package ui renders the plantview editor as a Bubble Tea program.
//
// The screen is split into the source editor, with a line-number gutter
// kept in step with the textarea's scroll offset, and the output pane that
// shows the rendered preview, the placeholder over the backdrop animation,
// or the encode error. The download menu, the zoomable diagram overlay and
// the theme panel all live in the session package; this package only maps
// keys and mouse presses onto session events and turns the returned effects
// into tea commands (frame ticks, the overlay settle and fade timers,
// preview and download fetches).
package ui

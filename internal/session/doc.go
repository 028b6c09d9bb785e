// Package session holds the editing session's UI state and the small state
// machines that make it up.
//
// # State
//
// State is the one owned record: the diagram source, the last render result
// and the download menu, overlay, gutter and theme controllers. It is
// created at startup and lives for the session.
//
// # Event Dispatch
//
// Inputs arrive as Event values passed to State.Dispatch, which runs the
// matching transition and returns Effects describing any asynchronous
// follow-up (a deferred overlay settle, waiting for the fade-out to end, a
// preview fetch). The host schedules those and feeds their completion back
// as further events. Nothing in this package touches the terminal.
//
// # Controllers
//
//   - DownloadMenu: Hidden, Closed, Open. Hidden only via the pipeline.
//   - Overlay: Closed, Opening, Open, Closing, with zoom clamped to
//     [MinZoom, MaxZoom].
//   - ThemeController: active preset, persisted through a PreferenceStore.
//   - Gutter: line numbers derived from the source and the editor scroll.
//
// Render results drive the controllers: a blank or unencodable source hides
// the download menu and force-closes the overlay.
package session

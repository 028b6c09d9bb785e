// Package app provides the orchestration layer for plantview.
//
// # Overview
//
// This package is the composition root. It loads configuration, opens the
// log, builds the render pipeline, the renderer client and the theme
// controller, seeds the session with any initial source, and hands off to
// the TUI or to one of the non-interactive commands.
//
// # Commands
//
//   - Run: the editor TUI (blocks until quit or context cancel)
//   - Links: prints the renderer link for every configured format
//   - Export: fetches one format and writes it to a file or stdout
//   - Serve: the HTTP surface, until the context is cancelled
//
// # Initial Source
//
// The first of these wins:
//
//  1. --url: a page URL or query string; the code parameter is decoded the
//     same way the browser page bootstraps
//  2. --code: literal source
//  3. a file argument, or "-" for stdin
//  4. piped stdin
//
// # Logging
//
// The TUI owns the terminal, so its logs go to the configured log file or
// are discarded. The other commands log to stderr unless a log file is set.
//
// # Error Handling
//
// Fatal errors (returned to the caller):
//   - Configuration file unreadable or invalid
//   - Log file cannot be opened
//   - Source file cannot be read
//   - Export or Links given no source, or source that fails to encode
//
// Recoverable errors (logged, feature skipped):
//   - Theme preference unreadable or unwritable
//   - Preview fetch failures
//   - Clipboard or download directory unavailable
package app

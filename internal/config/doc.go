// Package config loads plantview's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/plantview/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/plantview/config.toml
//   - Rendering server: https://www.plantuml.com/plantuml
//   - Download formats: png, svg, txt
//   - Download directory: ~/Downloads
//   - Default theme: matrix
//   - HTTP listen address: 127.0.0.1:8765
//   - Backdrop animation: on, one frame every 80ms
//
// # TOML Format
//
//	server_url = "http://localhost:8080/plantuml"
//	formats = ["png", "svg", "txt"]
//	download_dir = "~/Downloads"
//	default_theme = "dracula"
//	listen = "127.0.0.1:8765"
//	log_file = "~/.local/state/plantview/plantview.log"
//	animation = true
//	frame_ms = 80
//
// Every field is optional. Tilde expansion is performed on paths.
// default_theme only seeds the theme when no preference has been saved; an
// unknown name resolves to the default preset.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and unknown format names. A missing
// config file is not an error.
package config

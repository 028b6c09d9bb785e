// Package renderer is an HTTP client for a PlantUML rendering server.
//
// The server is addressed purely through GET requests of the form
//
//	<base>/<format>/<identifier>
//
// where format is png, svg or txt and identifier is produced by the encoder
// package. There is no authentication and no request body.
//
// # Error Handling
//
// Fetch returns errors for transport failures, HTTP status codes >= 400 and
// body read failures. Callers in the TUI treat a failed preview fetch as a
// silently degraded state; downloads surface the error in the status line.
package renderer

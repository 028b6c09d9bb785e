package render

import (
	"fmt"
	"strings"
)

// Format is a renderer output segment.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatTXT Format = "txt"
)

// DefaultBaseURL is the public PlantUML server.
const DefaultBaseURL = "https://www.plantuml.com/plantuml"

// DefaultFormats lists the download formats offered when none are configured.
var DefaultFormats = []Format{FormatPNG, FormatSVG, FormatTXT}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPNG, FormatSVG, FormatTXT:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// Extension returns the file extension for downloads.
func (f Format) Extension() string {
	return "." + string(f)
}

// Link is a download target for one format.
type Link struct {
	Format Format
	URL    string
}

// Links builds renderer URLs of the form base/format/identifier.
type Links struct {
	base    string
	formats []Format
}

// NewLinks returns a builder for base. Empty formats select DefaultFormats.
func NewLinks(base string, formats []Format) Links {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if len(formats) == 0 {
		formats = DefaultFormats
	}
	dup := make([]Format, len(formats))
	copy(dup, formats)
	return Links{base: base, formats: dup}
}

// Base returns the normalized base URL.
func (l Links) Base() string {
	return l.base
}

// Formats returns the enumerated download formats.
func (l Links) Formats() []Format {
	dup := make([]Format, len(l.formats))
	copy(dup, l.formats)
	return dup
}

// URL returns the renderer URL for format and id.
func (l Links) URL(format Format, id string) string {
	return l.base + "/" + string(format) + "/" + id
}

// All returns one link per enumerated format, in order.
func (l Links) All(id string) []Link {
	out := make([]Link, 0, len(l.formats))
	for _, f := range l.formats {
		out = append(out, Link{Format: f, URL: l.URL(f, id)})
	}
	return out
}

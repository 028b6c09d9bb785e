// Package render turns diagram source text into a render result: an
// identifier for the remote renderer plus the image and download links
// derived from it.
package render

import (
	"strings"

	"github.com/five82/plantview/internal/encoder"
)

// Kind tags which variant of Result is active.
type Kind int

const (
	KindEmpty Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "empty"
	}
}

// Result is the outcome of a single render. Exactly one of the variants is
// meaningful, selected by Kind.
type Result struct {
	Kind       Kind
	Identifier string // set only for KindSuccess
	ImageRef   string // set only for KindSuccess
	Message    string // set only for KindFailure
	Links      []Link // set only for KindSuccess
}

// Succeeded reports whether the result carries an identifier.
func (r Result) Succeeded() bool {
	return r.Kind == KindSuccess && r.Identifier != ""
}

// Encoder maps diagram text to a renderer identifier.
type Encoder interface {
	Encode(text string) (string, error)
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(text string) (string, error)

// Encode implements Encoder.
func (f EncoderFunc) Encode(text string) (string, error) { return f(text) }

// PlantUML is the default encoder.
var PlantUML Encoder = EncoderFunc(encoder.Encode)

// Pipeline renders source text. The zero value is not usable; use New.
type Pipeline struct {
	enc     Encoder
	links   Links
	preview Format
}

// New builds a pipeline. A nil encoder selects the PlantUML encoder.
func New(enc Encoder, links Links) Pipeline {
	if enc == nil {
		enc = PlantUML
	}
	if links.base == "" {
		links = NewLinks("", nil)
	}
	return Pipeline{enc: enc, links: links, preview: FormatPNG}
}

// Links returns the link builder used by the pipeline.
func (p Pipeline) Links() Links {
	return p.links
}

// Render trims source and encodes it. Blank input yields KindEmpty and any
// encoder error yields KindFailure with a user-facing message.
func (p Pipeline) Render(source string) Result {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return Result{Kind: KindEmpty}
	}
	id, err := p.enc.Encode(trimmed)
	if err != nil {
		return Result{Kind: KindFailure, Message: FailureMessage(err)}
	}
	if id == "" {
		return Result{Kind: KindFailure, Message: FailureMessage(nil)}
	}
	return Result{
		Kind:       KindSuccess,
		Identifier: id,
		ImageRef:   p.links.URL(p.preview, id),
		Links:      p.links.All(id),
	}
}

// FailureMessage formats an encode error for display.
func FailureMessage(err error) string {
	if err == nil {
		return "Unable to encode diagram"
	}
	return "Unable to encode diagram: " + err.Error()
}

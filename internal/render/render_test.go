package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/five82/plantview/internal/encoder"
)

func TestRender_SuccessCarriesIdentifierAndPNGSegment(t *testing.T) {
	p := New(nil, NewLinks("https://render.example/plantuml/", nil))

	for _, src := range []string{"@startuml\nA->B\n@enduml", "  A -> B  ", "class Foo"} {
		res := p.Render(src)
		if res.Kind != KindSuccess {
			t.Fatalf("Render(%q).Kind = %v, want success (msg %q)", src, res.Kind, res.Message)
		}
		want, err := encoder.Encode(strings.TrimSpace(src))
		if err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}
		if res.Identifier != want {
			t.Fatalf("Identifier = %q, want %q", res.Identifier, want)
		}
		if !strings.Contains(res.ImageRef, "/png/") || !strings.HasSuffix(res.ImageRef, want) {
			t.Fatalf("ImageRef = %q, want png segment and identifier", res.ImageRef)
		}
		if !strings.HasPrefix(res.ImageRef, "https://render.example/plantuml/png/") {
			t.Fatalf("ImageRef = %q, want normalized base", res.ImageRef)
		}
	}
}

func TestRender_BlankIsEmpty(t *testing.T) {
	p := New(nil, NewLinks("", nil))
	for _, src := range []string{"", " ", "\n\t  \n"} {
		res := p.Render(src)
		if res.Kind != KindEmpty {
			t.Fatalf("Render(%q).Kind = %v, want empty", src, res.Kind)
		}
		if res.Identifier != "" || res.ImageRef != "" || len(res.Links) != 0 {
			t.Fatalf("Render(%q) = %#v, want no identifier or links", src, res)
		}
	}
}

func TestRender_EncoderErrorIsFailure(t *testing.T) {
	boom := errors.New("boom")
	p := New(EncoderFunc(func(string) (string, error) { return "", boom }), NewLinks("", nil))

	res := p.Render("A->B")
	if res.Kind != KindFailure {
		t.Fatalf("Kind = %v, want failure", res.Kind)
	}
	if !strings.Contains(res.Message, "boom") {
		t.Fatalf("Message = %q, want it to mention the cause", res.Message)
	}
	if res.Identifier != "" || len(res.Links) != 0 {
		t.Fatalf("failure carries identifier or links: %#v", res)
	}
}

func TestRender_NulInputFailsWithDefaultEncoder(t *testing.T) {
	res := New(nil, Links{}).Render("\u0000")
	if res.Kind != KindFailure {
		t.Fatalf("Kind = %v, want failure", res.Kind)
	}
}

func TestLinks_EndWithFormatAndIdentifier(t *testing.T) {
	l := NewLinks("http://localhost:8080/plantuml", nil)
	links := l.All("SoWkIImgAStDuNBAJrBGjLDmpCbCJbMmKiX8pSd9vt98pKi1IW80")
	if len(links) != len(DefaultFormats) {
		t.Fatalf("len(links) = %d, want %d", len(links), len(DefaultFormats))
	}
	for i, link := range links {
		if link.Format != DefaultFormats[i] {
			t.Fatalf("links[%d].Format = %q, want %q", i, link.Format, DefaultFormats[i])
		}
		suffix := "/" + string(link.Format) + "/SoWkIImgAStDuNBAJrBGjLDmpCbCJbMmKiX8pSd9vt98pKi1IW80"
		if !strings.HasSuffix(link.URL, suffix) {
			t.Fatalf("links[%d].URL = %q, want suffix %q", i, link.URL, suffix)
		}
	}
}

func TestLinks_CustomFormatsAreCopied(t *testing.T) {
	formats := []Format{FormatSVG}
	l := NewLinks("", formats)
	formats[0] = FormatTXT

	got := l.Formats()
	if len(got) != 1 || got[0] != FormatSVG {
		t.Fatalf("Formats() = %v, want [svg]", got)
	}
	if l.Base() != DefaultBaseURL {
		t.Fatalf("Base() = %q, want %q", l.Base(), DefaultBaseURL)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"png": FormatPNG, " SVG ": FormatSVG, "txt": FormatTXT}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("ParseFormat(pdf) returned nil error")
	}
}

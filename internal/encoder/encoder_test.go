package encoder

import (
	"errors"
	"strings"
	"testing"
)

func TestEncode_UsesPlantUMLAlphabet(t *testing.T) {
	id, err := Encode("@startuml\nA->B\n@enduml")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("Encode returned empty identifier")
	}
	if len(id)%4 != 0 {
		t.Fatalf("len(id) = %d, want a multiple of 4", len(id))
	}
	for _, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("identifier %q contains %q outside the PlantUML alphabet", id, r)
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode("Bob -> Alice : hello")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	b, err := Encode("Bob -> Alice : hello")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if a != b {
		t.Fatalf("Encode not deterministic: %q != %q", a, b)
	}
}

func TestEncode_RejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"nul", "\u0000"},
		{"embedded nul", "A->B\x00"},
		{"invalid utf8", "A->B \xff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.in)
			if !errors.Is(err, ErrInvalidSource) {
				t.Fatalf("Encode(%q) error = %v, want ErrInvalidSource", tc.in, err)
			}
		})
	}
}

func TestDecode_ReversesEncode(t *testing.T) {
	inputs := []string{
		"@startuml\nA->B\n@enduml",
		"x",
		"ab",
		"Ünïcödé → arrows",
		strings.Repeat("class Foo\n", 50),
	}
	for _, in := range inputs {
		id, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%q) returned error: %v", in, err)
		}
		got, err := Decode(id)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", id, err)
		}
		if got != in {
			t.Fatalf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	for _, id := range []string{"", "   ", "!!!!", "0000"} {
		if _, err := Decode(id); err == nil {
			t.Fatalf("Decode(%q) returned nil error, want error", id)
		}
	}
}

func TestDecode_RejectsOversizedSource(t *testing.T) {
	id, err := Encode(strings.Repeat("A", maxDecodedBytes+1))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if _, err := Decode(id); !errors.Is(err, ErrInvalidSource) {
		t.Fatalf("Decode error = %v, want ErrInvalidSource", err)
	}

	id, err = Encode(strings.Repeat("A", maxDecodedBytes))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	got, err := Decode(id)
	if err != nil {
		t.Fatalf("Decode at the limit returned error: %v", err)
	}
	if len(got) != maxDecodedBytes {
		t.Fatalf("len(Decode) = %d, want %d", len(got), maxDecodedBytes)
	}
}

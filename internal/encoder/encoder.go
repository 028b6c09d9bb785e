// Package encoder converts PlantUML source text into the compact identifier
// understood by PlantUML rendering servers, and back.
package encoder

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// alphabet is PlantUML's base64 variant.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// maxDecodedBytes bounds the source Decode will inflate.
const maxDecodedBytes = 4 << 20

var encoding = base64.NewEncoding(alphabet).WithPadding(base64.NoPadding)

// ErrInvalidSource is returned for text the encoder refuses to accept.
var ErrInvalidSource = errors.New("invalid diagram source")

// Encode deflates text and encodes it with the PlantUML alphabet.
func Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrInvalidSource)
	}
	if strings.ContainsRune(text, 0) {
		return "", fmt.Errorf("%w: contains NUL byte", ErrInvalidSource)
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create deflate writer: %w", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return "", fmt.Errorf("deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("deflate: %w", err)
	}

	// Zero-pad to whole 3-byte groups so every group yields four characters,
	// matching the reference PlantUML encoders byte for byte.
	data := buf.Bytes()
	if rem := len(data) % 3; rem != 0 {
		data = append(data, make([]byte, 3-rem)...)
	}
	return encoding.EncodeToString(data), nil
}

// Decode reverses Encode.
func Decode(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidSource)
	}
	raw, err := encoding.DecodeString(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	r := flate.NewReader(bytes.NewReader(raw))
	defer func() { _ = r.Close() }()

	out, err := io.ReadAll(io.LimitReader(r, maxDecodedBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: inflate: %v", ErrInvalidSource, err)
	}
	if len(out) > maxDecodedBytes {
		return "", fmt.Errorf("%w: decoded source too large", ErrInvalidSource)
	}
	return string(out), nil
}

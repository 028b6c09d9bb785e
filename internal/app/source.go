package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/five82/plantview/internal/session"
)

// maxSourceBytes bounds how much source is read from a file or stdin.
const maxSourceBytes = 4 << 20

// errNoSource is returned by non-interactive commands given nothing to render.
var errNoSource = errors.New("no diagram source: pass a file, --code, --url or pipe stdin")

// readSource returns the initial source text from the first option that
// carries one. The URL form applies the code parameter decoding. ok is
// false when no source was given.
func readSource(opts Options) (text string, ok bool, err error) {
	switch {
	case opts.URL != "":
		code := session.CodeFromURL(opts.URL)
		return code, code != "", nil
	case opts.Code != "":
		return opts.Code, true, nil
	case opts.File == "-":
		return readAll(opts.Stdin, "stdin")
	case opts.File != "":
		f, err := os.Open(opts.File)
		if err != nil {
			return "", false, fmt.Errorf("open source: %w", err)
		}
		defer func() { _ = f.Close() }()
		return readAll(f, opts.File)
	case opts.StdinPiped:
		return readAll(opts.Stdin, "stdin")
	}
	return "", false, nil
}

func readAll(r io.Reader, name string) (string, bool, error) {
	if r == nil {
		return "", false, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSourceBytes))
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", name, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return text, text != "", nil
}

// seed loads the initial source into the session and renders it once.
func seed(sess *session.State, opts Options) error {
	if opts.URL != "" {
		sess.Seed(opts.URL)
		return nil
	}
	text, ok, err := readSource(opts)
	if err != nil {
		return err
	}
	if ok {
		sess.Dispatch(session.SourceChanged{Text: text})
	}
	return nil
}

package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/five82/plantview/internal/render"
)

// fileStemLen caps how much of the identifier ends up in a file name.
const fileStemLen = 12

// FileName returns the download file name for id in format.
func FileName(id string, format render.Format) string {
	stem := id
	if len(stem) > fileStemLen {
		stem = stem[:fileStemLen]
	}
	return "diagram-" + stem + format.Extension()
}

// Write fetches the payload for id and writes it to path, creating parent
// directories as needed.
func Write(ctx context.Context, f Fetcher, format render.Format, id, path string) error {
	payload, err := f.Fetch(ctx, format, id)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, payload.Body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Save writes the payload into dir under FileName and returns the path.
func Save(ctx context.Context, f Fetcher, format render.Format, id, dir string) (string, error) {
	path := filepath.Join(dir, FileName(id, format))
	if err := Write(ctx, f, format, id, path); err != nil {
		return "", err
	}
	return path, nil
}

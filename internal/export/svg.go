package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/dotfield/internal/canvas"
)

// WriteSVG writes one frame of content as a standalone SVG document.
func WriteSVG(w io.Writer, frame canvas.Frame, content ...canvas.Drawable) error {
	if _, err := io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"); err != nil {
		return err
	}
	return frame.WriteSVG(w, content...)
}

// SaveSVG writes the document to path atomically: readers polling the file
// never see a half-written frame.
func SaveSVG(path string, frame canvas.Frame, content ...canvas.Drawable) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dotfield-*.svg")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteSVG(tmp, frame, content...); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	// CreateTemp opens 0600; the snapshot should read like any written file
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

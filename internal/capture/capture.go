// Package capture writes rendered frames to PNG files.
package capture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// Writer names and saves captures under a directory.
type Writer struct {
	dir string
	now func() time.Time
	seq int
}

// NewWriter returns a writer saving into dir, created on first save.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir, now: time.Now}
}

// Next returns the path of the next capture: dir/frame-<timestamp>-<n>.png.
func (w *Writer) Next() string {
	w.seq++
	name := fmt.Sprintf("frame-%s-%03d.png", w.now().Format("20060102-150405"), w.seq)
	return filepath.Join(w.dir, name)
}

// Save writes img to a new file and returns its path. A scale other than 0 or 1 resizes the image first.
func (w *Writer) Save(img image.Image, scale float64) (string, error) {
	path := w.Next()
	if err := Save(path, img, scale); err != nil {
		return "", err
	}
	return path, nil
}

// Save encodes img as PNG at path, creating the parent directory.
func Save(path string, img image.Image, scale float64) error {
	if img == nil {
		return fmt.Errorf("capture %s: no image", path)
	}
	if scale < 0 {
		return fmt.Errorf("capture %s: negative scale %v", path, scale)
	}
	if scale != 0 && scale != 1 {
		b := img.Bounds()
		wd := max(1, int(float64(b.Dx())*scale))
		ht := max(1, int(float64(b.Dy())*scale))
		img = transform.Resize(img, wd, ht, transform.Linear)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("capture %s: %w", path, err)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("capture %s: %w", path, err)
	}
	return nil
}

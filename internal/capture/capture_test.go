package capture

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 64, G: 64, B: 64, A: 255})
		}
	}
	return img
}

func TestWriterNames(t *testing.T) {
	w := NewWriter("shots")
	w.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	if got := w.Next(); got != filepath.Join("shots", "frame-20260102-030405-001.png") {
		t.Errorf("Next() = %q", got)
	}
	if got := w.Next(); !strings.HasSuffix(got, "-002.png") {
		t.Errorf("second Next() = %q", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "captures"))
	path, err := w.Save(testImage(8, 6), 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v", b)
	}
	r, g, b, _ := img.At(3, 3).RGBA()
	if r>>8 != 64 || g>>8 != 64 || b>>8 != 64 {
		t.Errorf("pixel = %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestSaveScaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "half.png")
	if err := Save(path, testImage(8, 6), 0.5); err != nil {
		t.Fatal(err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestSaveRejects(t *testing.T) {
	dir := t.TempDir()
	if err := Save(filepath.Join(dir, "a.png"), nil, 1); err == nil {
		t.Error("nil image accepted")
	}
	if err := Save(filepath.Join(dir, "b.png"), testImage(2, 2), -1); err == nil {
		t.Error("negative scale accepted")
	}
}

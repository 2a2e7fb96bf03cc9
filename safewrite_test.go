package grating

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage(t *testing.T) *Image {
	t.Helper()
	img, err := GenerateGrating(10, 6, WithImageSize(24), WithOrientation(30), WithPhase(45))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestWriteFileRaster(t *testing.T) {
	img := testImage(t)
	want := img.RGBA()
	tests := []struct {
		ext    string
		decode func(*os.File) (image.Image, error)
	}{
		{".png", func(f *os.File) (image.Image, error) { return png.Decode(f) }},
		{".bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
		{".tiff", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		fname := filepath.Join(dir, "sub", "grating"+tt.ext)
		if err := WriteFile(img, fname); err != nil {
			t.Fatalf("%s: %v", tt.ext, err)
		}
		f, err := os.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		got, err := tt.decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", tt.ext, err)
		}
		for y := 0; y < img.Size; y++ {
			for x := 0; x < img.Size; x++ {
				r1, g1, b1, _ := got.At(x, y).RGBA()
				r2, g2, b2, _ := want.At(x, y).RGBA()
				if r1 != r2 || g1 != g2 || b1 != b2 {
					t.Fatalf("%s: pixel (%d,%d) differs", tt.ext, x, y)
				}
			}
		}
		entries, err := os.ReadDir(filepath.Dir(fname))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("%s: want only the image left behind, got %d files", tt.ext, len(entries))
		}
	}
}

func TestWriteFileVector(t *testing.T) {
	img := testImage(t)
	tests := []struct {
		ext, magic string
	}{
		{".svg", "<svg"},
		{".pdf", "%PDF"},
	}
	for _, tt := range tests {
		fname := filepath.Join(t.TempDir(), "grating"+tt.ext)
		if err := WriteFile(img, fname); err != nil {
			t.Fatalf("%s: %v", tt.ext, err)
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(data, []byte(tt.magic)) {
			t.Errorf("%s: want %q in the output", tt.ext, tt.magic)
		}
	}
}

func TestWriteFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	err := WriteFile(testImage(t), filepath.Join(dir, "grating.jpg"))
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Want an unsupported format error, got %v", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("Want nothing written, got %d files", len(entries))
	}
}

func TestSafeWrite(t *testing.T) {
	s, err := Init("abc")
	if err != nil {
		t.Fatal(err)
	}
	prefix := filepath.Join(t.TempDir(), "out", "grating-")
	fname, err := s.SafeWrite(testImage(t), prefix, ".png")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(fname, prefix) || !strings.HasSuffix(fname, "-abc.png") {
		t.Errorf("Want a seeded name, got %q", fname)
	}
	if _, err := os.Stat(fname); err != nil {
		t.Errorf("Want %s written: %v", fname, err)
	}
}

package grating

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// VectorPixelSize is the side, in millimeters, of one pixel in SVG and PDF
// output.
const VectorPixelSize = 0.25

// SafeWrite saves img to a file named from the seed, see GetFilename, and
// returns the name.
func (s Seed) SafeWrite(img *Image, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	return fname, WriteFile(img, fname)
}

// WriteFile writes img to a temp file then renames it to fname, so readers
// never see a partial image. The format comes from the extension: .png, .bmp,
// .tif, .tiff, .svg or .pdf.
func WriteFile(img *Image, fname string) error {
	ext := strings.ToLower(filepath.Ext(fname))
	write, ok := writers[ext]
	if !ok {
		return fmt.Errorf("grating: unsupported file format %q", ext)
	}

	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}
	// The temp file lives next to the target so the rename stays on one drive.
	tmpfile, err := os.CreateTemp(dir, "grating.*"+ext)
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	tmpfile.Close()

	Logger().Debug("encoding image", "file", fname, "format", ext, "dtype", img.DType)
	if err := write(img, tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("grating: writing %s: %w", fname, err)
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(fname, 0664); err != nil {
		return err
	}
	Logger().Info("saved image", "file", fname)
	return nil
}

// MaybeCreateDir creates dir and its parents if missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}

var writers = map[string]func(*Image, string) error{
	".png":  writePNG,
	".bmp":  encodeWith(bmp.Encode),
	".tif":  encodeWith(writeTIFF),
	".tiff": encodeWith(writeTIFF),
	".svg":  writeVector((*Context).WriteSVG),
	".pdf":  writeVector((*Context).WritePDF),
}

func writePNG(img *Image, fname string) error {
	return gg.SavePNG(fname, img.RGBA())
}

func writeTIFF(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
}

func encodeWith(encode func(io.Writer, image.Image) error) func(*Image, string) error {
	return func(img *Image, fname string) error {
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		if err := encode(f, img.RGBA()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}

func writeVector(write func(*Context, string) error) func(*Image, string) error {
	return func(img *Image, fname string) error {
		side := float64(img.Size) * VectorPixelSize
		ctx := NewContext(side, side)
		ctx.DrawImage(img, VectorPixelSize)
		return write(ctx, fname)
	}
}

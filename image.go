package grating

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DType is the numeric type an Image is quantized to.
type DType int

const (
	Uint8 DType = iota
	Uint16
	Int16
	Float32
	Float64
)

var dtypeNames = [...]string{
	Uint8:   "uint8",
	Uint16:  "uint16",
	Int16:   "int16",
	Float32: "float32",
	Float64: "float64",
}

func (t DType) String() string {
	if t < 0 || int(t) >= len(dtypeNames) {
		return fmt.Sprintf("DType(%d)", int(t))
	}
	return dtypeNames[t]
}

// ParseDType returns the DType named s, e.g. "uint8".
func ParseDType(s string) (DType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range dtypeNames {
		if name == s {
			return DType(t), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown output type %q", ErrInvalidParameter, s)
}

// quantize converts v the way a cast to t would: integers truncate toward
// zero and saturate at the type's range.
func (t DType) quantize(v float64) float64 {
	switch t {
	case Uint8:
		return Clamp(math.Trunc(v), 0, math.MaxUint8)
	case Uint16:
		return Clamp(math.Trunc(v), 0, math.MaxUint16)
	case Int16:
		return Clamp(math.Trunc(v), math.MinInt16, math.MaxInt16)
	case Float32:
		return float64(float32(v))
	}
	return v
}

// Image is a square three channel image. Pix holds the values row by row with
// the channels interleaved, each value already quantized to DType.
type Image struct {
	Size  int
	DType DType
	Pix   []float64
}

// Channels is the number of channels of every Image.
const Channels = 3

func newImage(m *mat.Dense, t DType) *Image {
	n, _ := m.Dims()
	img := &Image{
		Size:  n,
		DType: t,
		Pix:   make([]float64, n*n*Channels),
	}
	i := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := t.quantize(m.At(row, col))
			for ch := 0; ch < Channels; ch++ {
				img.Pix[i] = v
				i++
			}
		}
	}
	return img
}

// At returns channel ch of the pixel at row, col.
func (m *Image) At(row, col, ch int) float64 {
	return m.Pix[(row*m.Size+col)*Channels+ch]
}

// Channel copies channel ch into a matrix.
func (m *Image) Channel(ch int) *mat.Dense {
	d := mat.NewDense(m.Size, m.Size, nil)
	d.Apply(func(row, col int, _ float64) float64 {
		return m.At(row, col, ch)
	}, d)
	return d
}

// RGBA returns an 8-bit opaque copy for display and encoding. Values are read
// on the 0-255 scale whatever the DType.
func (m *Image) RGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.Size, m.Size))
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			dst.SetRGBA(col, row, color.RGBA{
				R: to8(m.At(row, col, 0)),
				G: to8(m.At(row, col, 1)),
				B: to8(m.At(row, col, 2)),
				A: 0xff,
			})
		}
	}
	return dst
}

// Gray returns an 8-bit single channel copy of the first channel.
func (m *Image) Gray() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.Size, m.Size))
	for row := 0; row < m.Size; row++ {
		for col := 0; col < m.Size; col++ {
			dst.SetGray(col, row, color.Gray{Y: to8(m.At(row, col, 0))})
		}
	}
	return dst
}

func to8(v float64) uint8 {
	return uint8(Clamp(math.Trunc(v), 0, math.MaxUint8))
}

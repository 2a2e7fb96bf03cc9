package grating

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"
)

// GenerateGrating makes an imageSize×imageSize×3 sine-wave grating windowed by
// a mask of radius size (see GenerateMask). spatialFrequency is the period of
// the wave in pixels per cycle and must not be 0.
//
// Pixel values are ((wave * mask * contrast) + 1) / 2 * 255, so the background
// outside the mask is mid gray, and are quantized to the output type.
func GenerateGrating(size, spatialFrequency float64, opts ...Option) (*Image, error) {
	p := newParams(opts)
	p.radius = size

	if spatialFrequency == 0 || math.IsNaN(spatialFrequency) || math.IsInf(spatialFrequency, 0) {
		return nil, fmt.Errorf("%w: spatial frequency %v", ErrInvalidParameter, spatialFrequency)
	}
	if p.imageSize <= 0 {
		return nil, fmt.Errorf("%w: image size %d must be positive", ErrInvalidParameter, p.imageSize)
	}

	n := p.imageSize
	// Give the window an explicit center so a shift moves it. The legacy
	// formula never did.
	center := float64(n / 2)
	maskParams := p
	if !maskParams.hasCenter && p.phaseMode != PhaseLegacy {
		maskParams.hasCenter = true
		maskParams.centerX, maskParams.centerY = center, center
	}
	mask, err := generateMask(n, maskParams)
	if err != nil {
		return nil, err
	}

	// Centered phase follows the window, shift included.
	x0, y0 := center, center
	if maskParams.hasCenter {
		x0, y0 = maskParams.centerX+p.shift, maskParams.centerY+p.shift
	}
	im := waveField(n, spatialFrequency, x0, y0, p)
	im.MulElem(im, mask)
	im.Scale(p.contrast, im)
	im.Apply(func(_, _ int, v float64) float64 {
		return (v + 1) / 2 * 255
	}, im)

	Logger().Debug("generated grating",
		"size", size, "spatialFrequency", spatialFrequency,
		"orientation", p.orientation, "phase", p.phase, "imageSize", n,
		"contrast", p.contrast, "dtype", p.dtype)
	return newImage(im, p.dtype), nil
}

// waveField returns the unmasked sine wave, values in [-1,1]. Rows run along
// the 0° direction so orientation 0 gives horizontal stripes. In centered mode
// the pixel at column x0, row y0 has the requested phase.
func waveField(n int, spatialFrequency, x0, y0 float64, p params) *mat.Dense {
	theta := gg.Radians(p.orientation)
	sin, cos := math.Sincos(theta)
	k := 2 * math.Pi / spatialFrequency

	var wave func(proj float64) float64
	switch p.phaseMode {
	case PhaseLegacy:
		phi := p.phase/math.Pi*180 - k*float64(n)/2
		wave = func(proj float64) float64 {
			return math.Sin(k * (proj + phi))
		}
	default:
		projCenter := y0*cos + x0*sin
		phi := gg.Radians(p.phase)
		wave = func(proj float64) float64 {
			return math.Sin(k*(proj-projCenter) + phi)
		}
	}

	im := mat.NewDense(n, n, nil)
	im.Apply(func(row, col int, _ float64) float64 {
		return wave(float64(row)*cos + float64(col)*sin)
	}, im)
	return im
}

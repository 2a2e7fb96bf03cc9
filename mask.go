// Package grating makes sinusoidal grating stimuli windowed by a radial
// gaussian or hard-edged mask.
package grating

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// fwhmScale turns a squared distance over a squared FWHM into the exponent of
// a gaussian with that full width at half maximum.
const fwhmScale = -4 * math.Ln2

// GenerateMask makes a size×size radial mask. Inside the radius the mask is 1,
// outside it decays as a gaussian whose FWHM is the sharpness, or drops to 0
// when the sharpness is 0. With an inner radius the mask is a ring.
//
// Element (row, col) of the result is the pixel at y=row, x=col.
func GenerateMask(size int, opts ...Option) (*mat.Dense, error) {
	p := newParams(opts)
	return generateMask(size, p)
}

func generateMask(size int, p params) (*mat.Dense, error) {
	if err := p.validateMask(size); err != nil {
		return nil, err
	}

	if p.radius < p.sharpness/2 {
		Logger().Debug("mask edge wider than radius, returning zeros",
			"radius", p.radius, "sharpness", p.sharpness)
		return mat.NewDense(size, size, nil), nil
	}

	outer := p.radius - p.sharpness/2
	inner := math.Max(0, p.innerRadius-p.sharpness/2)

	x0, y0 := float64(size/2), float64(size/2)
	if p.hasCenter {
		x0 = p.centerX + p.shift
		y0 = p.centerY + p.shift
	}
	dist2 := func(row, col int) float64 {
		dx, dy := float64(col)-x0, float64(row)-y0
		return dx*dx + dy*dy
	}

	s2 := p.sharpness * p.sharpness
	m := mat.NewDense(size, size, nil)
	m.Apply(func(row, col int, _ float64) float64 {
		over := dist2(row, col) - outer*outer
		if p.sharpness == 0 {
			return step(-over)
		}
		return math.Exp(fwhmScale * math.Max(over, 0) / s2)
	}, m)

	if p.innerRadius <= 0 {
		return m, nil
	}

	ring := mat.NewDense(size, size, nil)
	ring.Apply(func(row, col int, _ float64) float64 {
		under := inner*inner - dist2(row, col)
		if p.sharpness == 0 {
			return step(-under)
		}
		return math.Exp(fwhmScale * math.Max(under, 0) / s2)
	}, ring)
	m.MulElem(m, ring)
	return m, nil
}

// step is the unit step with 0.5 at zero.
func step(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return 0
	}
	return 0.5
}

func (p params) validateMask(size int) error {
	switch {
	case size <= 0:
		return fmt.Errorf("%w: mask size %d must be positive", ErrInvalidParameter, size)
	case p.sharpness < 0 || math.IsNaN(p.sharpness):
		return fmt.Errorf("%w: sharpness %v must be >= 0", ErrInvalidParameter, p.sharpness)
	case p.innerRadius < 0:
		return fmt.Errorf("%w: inner radius %v must be >= 0", ErrInvalidParameter, p.innerRadius)
	case !(p.innerRadius < p.radius):
		return fmt.Errorf("%w: inner radius %v must be less than radius %v",
			ErrInvalidParameter, p.innerRadius, p.radius)
	}
	return nil
}

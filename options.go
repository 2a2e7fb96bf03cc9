package grating

// Option configures GenerateMask and GenerateGrating. Options that a generator
// does not use are ignored, so one option list can feed both.
//
// Example:
//
//	img, err := grating.GenerateGrating(50, 20,
//		grating.WithOrientation(45),
//		grating.WithContrast(0.5),
//		grating.WithInnerRadius(10))
type Option func(*params)

// PhaseMode selects how the phase offset of the sine wave is computed.
type PhaseMode int

const (
	// PhaseCentered puts the requested phase, in degrees, at the mask center.
	PhaseCentered PhaseMode = iota
	// PhaseLegacy reproduces the older stimulus formula, which multiplies the
	// radian phase by 180/π and offsets by a multiple of the period instead of
	// the image center. Only useful to regenerate stimuli made with it.
	PhaseLegacy
)

func (m PhaseMode) String() string {
	switch m {
	case PhaseCentered:
		return "centered"
	case PhaseLegacy:
		return "legacy"
	}
	return "unknown"
}

type params struct {
	radius      float64 // pixels
	sharpness   float64 // FWHM of the edge, pixels
	hasCenter   bool
	centerX     float64
	centerY     float64
	innerRadius float64 // pixels, 0 for a disk
	shift       float64 // pixels

	orientation float64 // degrees
	phase       float64 // degrees
	phaseMode   PhaseMode
	imageSize   int
	contrast    float64
	dtype       DType
}

func defaultParams() params {
	return params{
		radius:    100,
		sharpness: 3,
		imageSize: 224,
		contrast:  1,
		dtype:     Uint8,
	}
}

func newParams(opts []Option) params {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithRadius sets the radius, in pixels, of the region where the mask is 1.
// GenerateGrating overrides it with its size argument.
func WithRadius(r float64) Option {
	return func(p *params) { p.radius = r }
}

// WithSharpness sets the full width at half maximum of the gaussian edge, in
// pixels. Zero gives a hard edge.
func WithSharpness(s float64) Option {
	return func(p *params) { p.sharpness = s }
}

// WithCenter places the mask center at pixel column x, row y.
func WithCenter(x, y float64) Option {
	return func(p *params) {
		p.hasCenter = true
		p.centerX = x
		p.centerY = y
	}
}

// WithInnerRadius makes the mask a ring, fading to 0 inside r.
func WithInnerRadius(r float64) Option {
	return func(p *params) { p.innerRadius = r }
}

// WithShift offsets both coordinates of the mask center by s pixels.
func WithShift(s float64) Option {
	return func(p *params) { p.shift = s }
}

// WithOrientation sets the grating orientation in degrees, 0 is horizontal
// and 90 is vertical.
func WithOrientation(deg float64) Option {
	return func(p *params) { p.orientation = deg }
}

// WithPhase sets the phase of the wave in degrees.
func WithPhase(deg float64) Option {
	return func(p *params) { p.phase = deg }
}

// WithPhaseMode selects the phase formula.
func WithPhaseMode(m PhaseMode) Option {
	return func(p *params) { p.phaseMode = m }
}

// WithImageSize sets the side of the square output image in pixels.
func WithImageSize(n int) Option {
	return func(p *params) { p.imageSize = n }
}

// WithContrast scales the masked wave, normally in [0,1].
func WithContrast(c float64) Option {
	return func(p *params) { p.contrast = c }
}

// WithOutputType sets the numeric type the image is quantized to.
func WithOutputType(t DType) Option {
	return func(p *params) { p.dtype = t }
}

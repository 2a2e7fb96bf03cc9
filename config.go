package grating

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Stimulus describes one grating. It is what a TOML stimulus file decodes to:
//
//	size = 50
//	spatial_frequency = 20
//	orientation = 45
//	inner_radius = 10
//	output_type = "uint8"
type Stimulus struct {
	Size             float64 `toml:"size"`
	SpatialFrequency float64 `toml:"spatial_frequency"`
	Orientation      float64 `toml:"orientation"`
	Phase            float64 `toml:"phase"`
	PhaseMode        string  `toml:"phase_mode"`
	RandomPhase      bool    `toml:"random_phase"`
	ImageSize        int     `toml:"image_size"`
	Sharpness        float64 `toml:"sharpness"`
	Contrast         float64 `toml:"contrast"`
	InnerRadius      float64 `toml:"inner_radius"`
	Shift            float64 `toml:"shift"`
	OutputType       string  `toml:"output_type"`
}

// DefaultStimulus returns the defaults of GenerateGrating.
func DefaultStimulus() Stimulus {
	p := defaultParams()
	return Stimulus{
		Size:             p.radius,
		SpatialFrequency: 20,
		PhaseMode:        p.phaseMode.String(),
		ImageSize:        p.imageSize,
		Sharpness:        p.sharpness,
		Contrast:         p.contrast,
		OutputType:       p.dtype.String(),
	}
}

// LoadStimulus reads a TOML stimulus file. Keys missing from the file keep
// their DefaultStimulus value.
func LoadStimulus(fname string) (Stimulus, error) {
	st := DefaultStimulus()
	md, err := toml.DecodeFile(fname, &st)
	if err != nil {
		return st, fmt.Errorf("grating: reading %s: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return st, fmt.Errorf("grating: %s: unknown keys %s", fname, strings.Join(keys, ", "))
	}
	Logger().Debug("loaded stimulus", "file", fname)
	return st, nil
}

// Encode writes st as TOML.
func (st Stimulus) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(st)
}

// Options converts st to generator options.
func (st Stimulus) Options() ([]Option, error) {
	dtype, err := ParseDType(st.OutputType)
	if err != nil {
		return nil, err
	}
	mode, err := ParsePhaseMode(st.PhaseMode)
	if err != nil {
		return nil, err
	}
	return []Option{
		WithOrientation(st.Orientation),
		WithPhase(st.Phase),
		WithPhaseMode(mode),
		WithImageSize(st.ImageSize),
		WithSharpness(st.Sharpness),
		WithContrast(st.Contrast),
		WithInnerRadius(st.InnerRadius),
		WithShift(st.Shift),
		WithOutputType(dtype),
	}, nil
}

// Generate makes the grating st describes. RandomPhase is left to the caller,
// see Seed.Phase.
func (st Stimulus) Generate() (*Image, error) {
	opts, err := st.Options()
	if err != nil {
		return nil, err
	}
	return GenerateGrating(st.Size, st.SpatialFrequency, opts...)
}

// ParsePhaseMode returns the PhaseMode named s. The empty string is
// PhaseCentered.
func ParsePhaseMode(s string) (PhaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "centered":
		return PhaseCentered, nil
	case "legacy":
		return PhaseLegacy, nil
	}
	return 0, fmt.Errorf("%w: unknown phase mode %q", ErrInvalidParameter, s)
}

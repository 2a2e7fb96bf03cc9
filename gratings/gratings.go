// gratings writes a single grating stimulus, optionally described by a TOML
// file, and can watch that file or show the result in a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/scottkirkwood/grating"
)

var (
	configFlag     = flag.String("config", "", "TOML stimulus file; flags given explicitly override it")
	outFlag        = flag.String("out", "", "Output file; the extension picks the format (png, bmp, tiff, svg, pdf)")
	prefixFlag     = flag.String("prefix", "samples/grating-", "Output name prefix when -out is empty")
	extFlag        = flag.String("ext", ".png", "Output extension when -out is empty")
	seedFlag       = flag.String("seed", "", "Hex value for the seed to use")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective stimulus as TOML and exit")
	watchFlag      = flag.Bool("watch", false, "Regenerate whenever the -config file changes")
	showFlag       = flag.Bool("show", false, "Show the image in a window")
	verboseFlag    = flag.Bool("v", false, "Print debugging output")

	sizeFlag        = flag.Float64("size", 0, "Radius of the grating window in pixels")
	freqFlag        = flag.Float64("spatial-frequency", 0, "Period of the wave in pixels")
	orientationFlag = flag.Float64("orientation", 0, "Orientation in degrees, 0 is horizontal")
	phaseFlag       = flag.Float64("phase", 0, "Phase in degrees")
	phaseModeFlag   = flag.String("phase-mode", "", "centered or legacy")
	randomPhaseFlag = flag.Bool("random-phase", false, "Draw the phase from the seed")
	imageSizeFlag   = flag.Int("image-size", 0, "Side of the image in pixels")
	sharpnessFlag   = flag.Float64("sharpness", 0, "FWHM of the window edge in pixels, 0 for a hard edge")
	contrastFlag    = flag.Float64("contrast", 0, "Contrast, 0-1")
	innerRadiusFlag = flag.Float64("inner-radius", 0, "Inner radius for a ring shaped window")
	shiftFlag       = flag.Float64("shift", 0, "Offset of the window center in pixels")
	outputTypeFlag  = flag.String("output-type", "", "uint8, uint16, int16, float32 or float64")
)

func main() {
	flag.Parse()
	if *verboseFlag {
		grating.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if err := run(); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	g, err := grating.Init(*seedFlag)
	if err != nil {
		return fmt.Errorf("unable to set the seed: %w", err)
	}

	st, err := loadStimulus()
	if err != nil {
		return err
	}
	if *dumpConfigFlag {
		return st.Encode(os.Stdout)
	}

	img, fname, err := generate(&g, st)
	if err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", fname)

	if *showFlag {
		show([]image.Image{img.RGBA()})
	}
	if *watchFlag {
		if *configFlag == "" {
			return fmt.Errorf("-watch needs -config")
		}
		return watchConfig(*configFlag, func() error {
			st, err := loadStimulus()
			if err != nil {
				return err
			}
			_, fname, err := generate(&g, st)
			if err != nil {
				return err
			}
			fmt.Printf("Saved to %s\n", fname)
			return nil
		})
	}
	return nil
}

// loadStimulus reads -config, if any, then applies the flags set on the
// command line.
func loadStimulus() (grating.Stimulus, error) {
	st := grating.DefaultStimulus()
	if *configFlag != "" {
		var err error
		if st, err = grating.LoadStimulus(*configFlag); err != nil {
			return st, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			st.Size = *sizeFlag
		case "spatial-frequency":
			st.SpatialFrequency = *freqFlag
		case "orientation":
			st.Orientation = *orientationFlag
		case "phase":
			st.Phase = *phaseFlag
		case "phase-mode":
			st.PhaseMode = *phaseModeFlag
		case "random-phase":
			st.RandomPhase = *randomPhaseFlag
		case "image-size":
			st.ImageSize = *imageSizeFlag
		case "sharpness":
			st.Sharpness = *sharpnessFlag
		case "contrast":
			st.Contrast = *contrastFlag
		case "inner-radius":
			st.InnerRadius = *innerRadiusFlag
		case "shift":
			st.Shift = *shiftFlag
		case "output-type":
			st.OutputType = *outputTypeFlag
		}
	})
	return st, nil
}

func generate(g *grating.Seed, st grating.Stimulus) (*grating.Image, string, error) {
	if st.RandomPhase {
		st.Phase = g.Phase()
		fmt.Printf("Phase %.1f\n", st.Phase)
	}
	img, err := st.Generate()
	if err != nil {
		return nil, "", err
	}
	if *outFlag != "" {
		return img, *outFlag, grating.WriteFile(img, *outFlag)
	}
	prefix := *prefixFlag
	if *configFlag != "" && !isSet("prefix") {
		prefix = "samples/" + grating.Basename(*configFlag) + "-"
	}
	fname, err := g.SafeWrite(img, prefix, *extFlag)
	return img, fname, err
}

func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

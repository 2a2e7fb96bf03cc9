package grating

import (
	"fmt"
	"math/rand"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed holds the seed used for random phases and output names.
type Seed struct {
	intSeed int64
	rnd     *rand.Rand
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	s := Seed{}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	s.reseed(time.Now().UnixNano() - epoch2020)
	return s, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed given the file seed part of filename
func (s *Seed) SetSeed(hexSeed string) error {
	intSeed, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return fmt.Errorf("grating: bad seed %q: %w", hexSeed, err)
	}
	s.reseed(intSeed)
	return nil
}

func (s *Seed) reseed(intSeed int64) {
	s.intSeed = intSeed
	s.rnd = rand.New(rand.NewSource(intSeed))
}

// Phase returns the next random phase, in degrees in [0,360).
func (s Seed) Phase() float64 {
	return s.rnd.Float64() * 360
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	cmdOut, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) > 7 {
		hash = hash[:7]
	}
	return hash
}

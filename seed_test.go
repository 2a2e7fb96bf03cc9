package grating

import (
	"strings"
	"testing"
)

func TestSeedReproducible(t *testing.T) {
	a, err := Init("c0ffee")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Init("c0ffee")
	if err != nil {
		t.Fatal(err)
	}
	if a.GetSeed() != 0xc0ffee {
		t.Errorf("Want seed %x, got %x", 0xc0ffee, a.GetSeed())
	}
	for i := 0; i < 10; i++ {
		pa, pb := a.Phase(), b.Phase()
		if pa != pb {
			t.Errorf("Want the same phases, got %v and %v", pa, pb)
		}
		if pa < 0 || pa >= 360 {
			t.Errorf("Want a phase in [0,360), got %v", pa)
		}
	}
}

func TestSeedBadHex(t *testing.T) {
	if _, err := Init("xyz"); err == nil {
		t.Errorf("Want an error for a bad seed")
	}
}

func TestGetFilename(t *testing.T) {
	s, err := Init("ff")
	if err != nil {
		t.Fatal(err)
	}
	got := s.GetFilename("samples/grating-", ".png")
	if !strings.HasPrefix(got, "samples/grating-") || !strings.HasSuffix(got, "-ff.png") {
		t.Errorf("Want samples/grating-<hash>-ff.png, got %q", got)
	}
}

package grating

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		cur, low, high, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{11, 10, 0, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.cur, tt.low, tt.high); got != tt.want {
			t.Errorf("Want Clamp(%v, %v, %v) = %v, got %v", tt.cur, tt.low, tt.high, tt.want, got)
		}
	}
	if got := ClampInt(2000, 1, 1000); got != 1000 {
		t.Errorf("Want 1000, got %d", got)
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"stimuli/vertical.toml", "vertical"},
		{"ring.toml", "ring"},
		{"/tmp/a.b.toml", "a.b"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := Basename(tt.in); got != tt.want {
			t.Errorf("Want Basename(%q) = %q, got %q", tt.in, tt.want, got)
		}
	}
}

package grating

import (
	"path/filepath"
	"strings"
)

// Basename retrieves the basename of a file path without its extension.
func Basename(fName string) string {
	base := filepath.Base(fName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

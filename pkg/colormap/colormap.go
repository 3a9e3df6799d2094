// Package colormap maps windowed scalar values to display intensities.
package colormap

// Intensity maps a sample value through the contrast window [min, max] to a
// display intensity in [0, 255].
//
// Windowing policy: a degenerate or inverted window (max <= min) maps every
// value to 0, which keeps the render path free of division by zero. Otherwise
// values at or below min map to 0, values at or above max map to 255, and
// values in between map to floor(255*(v-min)/(max-min)). The interpolation is
// done in float32, matching the stored scalar type; the float32-to-uint8
// conversion truncates, which is a floor for the non-negative range involved,
// so the midpoint of the window maps to 127.
func Intensity(v, min, max float32) uint8 {
	if max <= min {
		return 0
	}
	if v <= min {
		return 0
	}
	if v >= max {
		return 255
	}
	return uint8(255 * (v - min) / (max - min))
}

// Mapper caches the window bounds for the per-pixel render loop. It produces
// bit-for-bit the same mapping as Intensity, including at the clamp
// boundaries; the caching only avoids re-deriving the degenerate flag per
// pixel.
type Mapper struct {
	min, max   float32
	degenerate bool
}

// SetWindow updates the cached window bounds
func (m *Mapper) SetWindow(min, max float32) {
	m.min = min
	m.max = max
	m.degenerate = max <= min
}

// Map converts a sample value to a display intensity using the cached window
func (m *Mapper) Map(v float32) uint8 {
	if m.degenerate {
		return 0
	}
	if v <= m.min {
		return 0
	}
	if v >= m.max {
		return 255
	}
	return uint8(255 * (v - m.min) / (m.max - m.min))
}

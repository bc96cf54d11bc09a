package gradient

import (
	"math"
	"sort"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// String returns the lower-case name of the mode.
func (m ExtendMode) String() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// ParseExtendMode parses "pad", "repeat" or "reflect".
func ParseExtendMode(s string) (ExtendMode, bool) {
	switch s {
	case "pad":
		return ExtendPad, true
	case "repeat":
		return ExtendRepeat, true
	case "reflect":
		return ExtendReflect, true
	}
	return ExtendPad, false
}

// Apply maps an unbounded gradient parameter into [0, 1].
//
// Reflect decides the mirrored half from the parity of floor(|t|) as a
// float, so it stays exact for any finite t. The generated WGSL computes the
// same parity in f32. Non-finite t yields NaN for repeat and reflect.
func (m ExtendMode) Apply(t float64) float64 {
	switch m {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// sortStops returns a copy of stops ordered by offset. Stops with equal
// offsets keep their relative order, which makes them hard transitions.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// NormalizeStops sorts stops by offset and normalizes them.
// Offsets are clamped to [0, 1].
func NormalizeStops(stops []ColorStop, opts ...Option) (*Normalized, error) {
	if len(stops) == 0 {
		return nil, ErrNoColors
	}
	sorted := sortStops(stops)
	colors := make([]RGBA, len(sorted))
	offsets := make([]float64, len(sorted))
	for i, s := range sorted {
		colors[i] = s.Color
		offsets[i] = clamp01(s.Offset)
	}
	return Normalize(colors, offsets, opts...)
}

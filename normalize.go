package gradient

import (
	"fmt"
	"math"
)

// Normalized is the affine form of a piecewise-linear gradient.
//
// Segment i covers [Threshold(i), Threshold(i+1)) and evaluates to
// t*Scale(i) + Bias(i) per channel. The last segment has zero scale, so any
// t at or beyond the last threshold yields the last color.
//
// Storage is packed the way the shader consumes it: bias and scale are
// SegmentCount 4-tuples (R, G, B, A), and thresholds are padded to a multiple
// of four so they upload as vec4 groups. Padding slots are unused.
//
// A Normalized is immutable and safe for concurrent read-only use.
type Normalized struct {
	count      int
	thresholds []float32
	bias       []float32
	scale      []float32
}

// Normalize converts colors and stop positions into bias, scale and
// threshold arrays.
//
// If stops is nil, colors must hold exactly two entries, placed at 0 and 1.
// Otherwise stops must have one entry per color, sorted ascending in [0, 1].
// A first stop other than 0 or a last stop other than 1 causes the nearest
// boundary color to be duplicated at that endpoint.
func Normalize(colors []RGBA, stops []float64, opts ...Option) (*Normalized, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if stops == nil {
		if len(colors) != 2 {
			return nil, fmt.Errorf("%w: got %d", ErrImplicitStops, len(colors))
		}
		stops = []float64{0, 1}
	}
	if len(stops) != len(colors) {
		return nil, fmt.Errorf("%w: %d stops, %d colors", ErrStopCountMismatch, len(stops), len(colors))
	}
	if o.strict {
		if err := validateStops(stops); err != nil {
			return nil, err
		}
	}

	addFirst := stops[0] != 0
	addLast := stops[len(stops)-1] != 1

	count := len(colors)
	if addFirst {
		count++
	}
	if addLast {
		count++
	}

	// Effective stop list in float64; narrowed to float32 once the affine
	// coefficients are known.
	pos := make([]float64, 0, count)
	col := make([]RGBA, 0, count)
	if addFirst {
		pos = append(pos, 0)
		col = append(col, colors[0])
	}
	pos = append(pos, stops...)
	col = append(col, colors...)
	if addLast {
		pos = append(pos, 1)
		col = append(col, colors[len(colors)-1])
	}

	g := &Normalized{
		count:      count,
		thresholds: make([]float32, thresholdSlots(count)),
		bias:       make([]float32, count*4),
		scale:      make([]float32, count*4),
	}

	zeroWidth := 0
	for i := 0; i < count; i++ {
		c0 := channels64(col[i])

		var s [4]float64
		if i < count-1 {
			var ok bool
			s, ok = slope(c0, channels64(col[i+1]), pos[i], pos[i+1])
			if !ok {
				if o.strict {
					return nil, fmt.Errorf("%w: stops %v and %v", ErrZeroWidthSegment, pos[i], pos[i+1])
				}
				// Keep the start color instead of storing Inf/NaN
				// coefficients.
				zeroWidth++
			}
		}

		for c := 0; c < 4; c++ {
			g.scale[i*4+c] = float32(s[c])
			g.bias[i*4+c] = float32(c0[c] - pos[i]*s[c])
		}
		g.thresholds[i] = float32(pos[i])
	}

	log := Logger()
	if zeroWidth > 0 {
		log.Warn("gradient: coincident stops treated as hard transitions", "segments", zeroWidth)
	}
	log.Debug("gradient: normalized",
		"colors", len(colors),
		"segments", count,
		"first_added", addFirst,
		"last_added", addLast)

	return g, nil
}

// MustNormalize is like Normalize but panics on invalid input.
// Use it where a malformed gradient is a programming error.
func MustNormalize(colors []RGBA, stops []float64, opts ...Option) *Normalized {
	g, err := Normalize(colors, stops, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// validateStops enforces range, order and strict monotonicity.
func validateStops(stops []float64) error {
	for i, s := range stops {
		if s < 0 || s > 1 || math.IsNaN(s) {
			return fmt.Errorf("%w: stops[%d] = %v", ErrStopOutOfRange, i, s)
		}
		if i == 0 {
			continue
		}
		switch prev := stops[i-1]; {
		case s < prev:
			return fmt.Errorf("%w: stops[%d] = %v after %v", ErrStopsNotSorted, i, s, prev)
		case s == prev:
			return fmt.Errorf("%w: stops[%d] and stops[%d] are both %v", ErrZeroWidthSegment, i-1, i, s)
		}
	}
	return nil
}

// slope returns the per-channel rate of change between two stops. It
// reports false when the segment collapses at float32 precision: equal
// thresholds, or a rate too steep to store. The search never selects a
// segment whose float32 thresholds coincide; a merely narrow one is drawn
// with its start color.
func slope(c0, c1 [4]float64, t0, t1 float64) ([4]float64, bool) {
	var s [4]float64
	if float32(t0) == float32(t1) {
		return s, false
	}
	dt := t1 - t0
	for c := range s {
		s[c] = (c1[c] - c0[c]) / dt
		if math.Abs(s[c]) > math.MaxFloat32 {
			return [4]float64{}, false
		}
	}
	return s, true
}

// thresholdSlots rounds n up to a whole number of vec4 groups.
func thresholdSlots(n int) int {
	return (n + 3) &^ 3
}

func channels64(c RGBA) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

// SegmentCount returns the number of segments, including synthesized
// endpoints. It is always at least 2.
func (g *Normalized) SegmentCount() int {
	return g.count
}

// Thresholds returns a copy of the padded threshold array.
func (g *Normalized) Thresholds() []float32 {
	return append([]float32(nil), g.thresholds...)
}

// Bias returns a copy of the flat bias array (SegmentCount*4 values).
func (g *Normalized) Bias() []float32 {
	return append([]float32(nil), g.bias...)
}

// Scale returns a copy of the flat scale array (SegmentCount*4 values).
func (g *Normalized) Scale() []float32 {
	return append([]float32(nil), g.scale...)
}

// Threshold returns the start position of segment i.
func (g *Normalized) Threshold(i int) float32 {
	return g.thresholds[i]
}

// BiasAt returns the bias 4-tuple of segment i.
func (g *Normalized) BiasAt(i int) [4]float32 {
	return vec4(g.bias, i)
}

// ScaleAt returns the scale 4-tuple of segment i.
func (g *Normalized) ScaleAt(i int) [4]float32 {
	return vec4(g.scale, i)
}

// ThresholdGroups returns the number of packed threshold vectors.
func (g *Normalized) ThresholdGroups() int {
	return len(g.thresholds) / 4
}

// ThresholdGroup returns packed threshold vector k, holding the thresholds
// of segments 4k..4k+3.
func (g *Normalized) ThresholdGroup(k int) [4]float32 {
	return vec4(g.thresholds, k)
}

func vec4(data []float32, i int) [4]float32 {
	return [4]float32(data[i*4 : i*4+4])
}

package gradient

// SegmentAt returns the index of the segment whose affine form applies at t.
//
// It performs the same midpoint split as the code emitted by
// EmitBinarySearch, so CPU and GPU agree on segment selection, including
// for coincident stops. Values below the first threshold resolve to
// segment 0.
func (g *Normalized) SegmentAt(t float32) int {
	lo, hi := 0, g.count-1
	for lo < hi {
		mid := (lo + hi) / 2
		if t < g.thresholds[mid+1] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ColorAt evaluates t*scale+bias for the segment containing t.
// Callers are expected to clamp or extend t into [0, 1] first.
func (g *Normalized) ColorAt(t float64) RGBA {
	i := g.SegmentAt(float32(t))
	b := g.BiasAt(i)
	s := g.ScaleAt(i)
	return RGBA{
		R: t*float64(s[0]) + float64(b[0]),
		G: t*float64(s[1]) + float64(b[1]),
		B: t*float64(s[2]) + float64(b[2]),
		A: t*float64(s[3]) + float64(b[3]),
	}
}

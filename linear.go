package gradient

import "fmt"

// Point represents a 2D point in pixel coordinates.
type Point struct {
	X, Y float64
}

// LinearGradient represents a linear color transition between two points.
//
// Example:
//
//	lg := gradient.NewLinearGradient(0, 0, 100, 0).
//	    AddColorStop(0, gradient.Red).
//	    AddColorStop(0.5, gradient.Yellow).
//	    AddColorStop(1, gradient.Blue)
//	g, err := lg.Normalize()
type LinearGradient struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How gradient extends beyond bounds
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset.
// Returns the gradient for method chaining.
func (lg *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	lg.Stops = append(lg.Stops, ColorStop{Offset: offset, Color: c})
	return lg
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (lg *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	lg.Extend = mode
	return lg
}

// Param projects (x, y) onto the gradient axis and returns the unbounded
// parameter: 0 at Start, 1 at End. A zero-length axis yields 0.
func (lg *LinearGradient) Param(x, y float64) float64 {
	dx := lg.End.X - lg.Start.X
	dy := lg.End.Y - lg.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return 0
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	px := x - lg.Start.X
	py := y - lg.Start.Y
	return (px*dx + py*dy) / lengthSq
}

// Normalize builds the affine form of the gradient's stops.
func (lg *LinearGradient) Normalize(opts ...Option) (*Normalized, error) {
	return NormalizeStops(lg.Stops, opts...)
}

// ColorAt returns the color at the given point, evaluated the same way as
// the generated fragment shader.
func (lg *LinearGradient) ColorAt(g *Normalized, x, y float64) RGBA {
	return g.ColorAt(lg.Extend.Apply(lg.Param(x, y)))
}

// Upload binds the geometry uniform and g's uniforms. g is the result of
// lg.Normalize, computed once when the stops change and reused every draw.
func (lg *LinearGradient) Upload(p *Program, g *Normalized, b UniformBinder) error {
	if g.SegmentCount() != p.SegmentCount() {
		return fmt.Errorf("%w: gradient has %d segments, program %d",
			ErrProgramMismatch, g.SegmentCount(), p.SegmentCount())
	}
	b.SetUniform4f(b.UniformLocation(p, GeometryUniform),
		float32(lg.Start.X), float32(lg.Start.Y), float32(lg.End.X), float32(lg.End.Y))
	g.Upload(p, b)
	return nil
}

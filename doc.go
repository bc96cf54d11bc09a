// Package gradient turns piecewise-linear color gradients into a compact
// affine form that a fragment shader can evaluate with one multiply-add.
//
// # Overview
//
// A gradient is a list of colors with stop positions in [0, 1]. Normalize
// inserts the implicit 0 and 1 endpoints, then derives per-segment bias and
// scale vectors so that
//
//	color(t) = t*scale_i + bias_i    for t in [threshold_i, threshold_i+1)
//
// The last segment has zero scale and clamps to the last color.
//
// # Quick Start
//
//	g, err := gradient.Normalize(
//	    []gradient.RGBA{gradient.Red, gradient.Green, gradient.Blue},
//	    []float64{0.2, 0.5, 0.8},
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Shader generation time.
//	p := gradient.ProgramFor(g, gradient.ExtendPad)
//	wgsl := p.FragmentSource()
//
//	// Draw time, with the program bound.
//	g.Upload(p, binder)
//
// # Shader Layout
//
// Thresholds are packed four per vec4 uniform (threshold_0, threshold_1, ...).
// The threshold separating segment i-1 from segment i is component i%4 of
// threshold_{i/4}. Bias and scale are one vec4 per segment (bias_i, scale_i).
//
// EmitBinarySearch generates the segment lookup as nested if/else blocks
// splitting the range at its midpoint, so the search depth is
// O(log SegmentCount) with no loops over uniform data.
//
// # Architecture
//
// The library is organized into:
//   - Core: Normalize, Normalized, EmitBinarySearch, ShaderBuilder, Program
//   - gpu: a wgpu/hal uniform buffer implementing UniformBinder, and naga
//     compilation of generated WGSL
//   - cmd/gradgen: command-line generator and terminal preview
package gradient

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)

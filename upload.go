package gradient

import "strconv"

// Uniform name prefixes. Segment uniforms are named "<prefix>_<i>", packed
// threshold vectors "threshold_<k>".
const (
	BiasUniform      = "bias"
	ScaleUniform     = "scale"
	ThresholdUniform = "threshold"

	// GeometryUniform holds a linear gradient's start (xy) and end (zw).
	GeometryUniform = "geometry"
)

// UniformLocation identifies a named uniform inside a program.
type UniformLocation int32

// InvalidLocation is returned for names the program does not declare.
// Setting it is a no-op.
const InvalidLocation UniformLocation = -1

// UniformBinder binds named vec4 uniforms of a program.
//
// Implementations mutate GPU state and are not expected to be safe for
// concurrent use; callers serialize uploads per program.
type UniformBinder interface {
	// UniformLocation resolves a uniform name within p.
	UniformLocation(p *Program, name string) UniformLocation
	// SetUniform4f assigns a vec4 value.
	SetUniform4f(loc UniformLocation, x, y, z, w float32)
}

// UniformName returns "<prefix>_<i>".
func UniformName(prefix string, i int) string {
	return prefix + "_" + strconv.Itoa(i)
}

// Upload binds bias_i and scale_i for every segment and threshold_k for
// every packed threshold group, padding included. The program must be
// bound by the caller.
func (g *Normalized) Upload(p *Program, b UniformBinder) {
	for i := 0; i < g.count; i++ {
		set4(b, b.UniformLocation(p, UniformName(BiasUniform, i)), g.BiasAt(i))
		set4(b, b.UniformLocation(p, UniformName(ScaleUniform, i)), g.ScaleAt(i))
	}
	for j := 0; j < len(g.thresholds); j += 4 {
		set4(b, b.UniformLocation(p, UniformName(ThresholdUniform, j/4)), g.ThresholdGroup(j/4))
	}
}

func set4(b UniformBinder, loc UniformLocation, v [4]float32) {
	b.SetUniform4f(loc, v[0], v[1], v[2], v[3])
}

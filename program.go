package gradient

import "fmt"

// WGSL identifiers used by generated programs.
const (
	// UniformStructName is the WGSL struct holding every gradient uniform.
	UniformStructName = "GradientUniforms"
	// UniformScope is the module-scope uniform variable of that struct.
	UniformScope = "grad"
	// LookupFunction maps t in [0, 1] to a color.
	LookupFunction = "gradient_lookup"
	// FragmentEntryPoint is the entry point of FragmentSource.
	FragmentEntryPoint = "fs_main"
)

// vec4Size is the byte size and alignment of a vec4<f32> uniform member.
const vec4Size = 16

// Program describes the shader side of a gradient with a fixed segment
// count: the uniform struct layout and the generated WGSL.
//
// Every uniform is a vec4<f32>, laid out in UniformNames order at 16-byte
// offsets: geometry, threshold_0..threshold_{k-1}, bias_0..bias_{n-1},
// scale_0..scale_{n-1}.
type Program struct {
	segments int
	extend   ExtendMode
	names    []string
	slots    map[string]int
}

// NewProgram creates the program for gradients with the given segment count.
func NewProgram(segments int, extend ExtendMode) (*Program, error) {
	if segments < 1 {
		return nil, fmt.Errorf("gradient: invalid segment count %d", segments)
	}
	groups := thresholdSlots(segments) / 4

	names := make([]string, 0, 1+groups+2*segments)
	names = append(names, GeometryUniform)
	for k := 0; k < groups; k++ {
		names = append(names, UniformName(ThresholdUniform, k))
	}
	for i := 0; i < segments; i++ {
		names = append(names, UniformName(BiasUniform, i))
	}
	for i := 0; i < segments; i++ {
		names = append(names, UniformName(ScaleUniform, i))
	}

	slots := make(map[string]int, len(names))
	for i, name := range names {
		slots[name] = i
	}

	return &Program{
		segments: segments,
		extend:   extend,
		names:    names,
		slots:    slots,
	}, nil
}

// ProgramFor creates the program matching g.
func ProgramFor(g *Normalized, extend ExtendMode) *Program {
	p, err := NewProgram(g.SegmentCount(), extend)
	if err != nil {
		panic(err) // SegmentCount is always >= 2
	}
	return p
}

// SegmentCount returns the number of segments the program searches.
func (p *Program) SegmentCount() int {
	return p.segments
}

// Extend returns the extend mode applied to the gradient parameter.
func (p *Program) Extend() ExtendMode {
	return p.extend
}

// UniformNames returns the uniform members in struct order.
func (p *Program) UniformNames() []string {
	return append([]string(nil), p.names...)
}

// UniformOffset returns the byte offset of a uniform member.
func (p *Program) UniformOffset(name string) (int, bool) {
	i, ok := p.slots[name]
	if !ok {
		return 0, false
	}
	return i * vec4Size, true
}

// UniformSize returns the byte size of the uniform struct.
func (p *Program) UniformSize() int {
	return len(p.names) * vec4Size
}

// StructSource returns the WGSL declaration of the uniform struct.
func (p *Program) StructSource() string {
	b := NewShaderBuilder()
	p.writeStruct(b)
	return b.String()
}

// LookupSource returns the WGSL lookup function: an unrolled binary search
// over the packed thresholds followed by t*scale+bias.
func (p *Program) LookupSource() string {
	b := NewShaderBuilder()
	p.writeLookup(b)
	return b.String()
}

// FragmentSource returns a complete WGSL module that shades a linear
// gradient: it projects the fragment position onto the geometry axis,
// applies the extend mode and evaluates the lookup.
func (p *Program) FragmentSource() string {
	b := NewShaderBuilder()
	p.writeStruct(b)
	b.AddStatement("")
	b.AddStatement("@group(0) @binding(0) var<uniform> " + UniformScope + ": " + UniformStructName + ";")
	b.AddStatement("")
	writeParam(b)
	b.AddStatement("")
	writeExtend(b, p.extend)
	b.AddStatement("")
	p.writeLookup(b)
	b.AddStatement("")
	b.AddStatement("@fragment")
	b.AddStatement("fn " + FragmentEntryPoint + "(@builtin(position) frag_coord: vec4<f32>) -> @location(0) vec4<f32> {")
	b.Scoped(func() {
		b.AddStatement("let t = gradient_extend(gradient_param(frag_coord.xy));")
		b.AddStatement("return " + LookupFunction + "(t);")
	})
	b.AddStatement("}")
	return b.String()
}

func (p *Program) writeStruct(b *ShaderBuilder) {
	b.AddStatement("struct " + UniformStructName + " {")
	b.Scoped(func() {
		for _, name := range p.names {
			b.AddStatement(name + ": vec4<f32>,")
		}
	})
	b.AddStatement("}")
}

func (p *Program) writeLookup(b *ShaderBuilder) {
	names := DefaultSearchNames()
	names.Scope = UniformScope

	b.AddStatement("fn " + LookupFunction + "(" + names.Probe + ": f32) -> vec4<f32> {")
	b.Scoped(func() {
		b.AddStatement("var " + names.Bias + ": vec4<f32>;")
		b.AddStatement("var " + names.Scale + ": vec4<f32>;")
		EmitBinarySearch(b, 0, p.segments-1, names)
		b.AddStatement("return " + names.Probe + " * " + names.Scale + " + " + names.Bias + ";")
	})
	b.AddStatement("}")
}

func writeParam(b *ShaderBuilder) {
	b.AddStatement("fn gradient_param(p: vec2<f32>) -> f32 {")
	b.Scoped(func() {
		b.AddStatement("let origin = " + UniformScope + "." + GeometryUniform + ".xy;")
		b.AddStatement("let axis = " + UniformScope + "." + GeometryUniform + ".zw - origin;")
		b.AddStatement("let len_sq = dot(axis, axis);")
		b.AddStatement("if (len_sq == 0.0) {")
		b.Scoped(func() { b.AddStatement("return 0.0;") })
		b.AddStatement("}")
		b.AddStatement("return dot(p - origin, axis) / len_sq;")
	})
	b.AddStatement("}")
}

func writeExtend(b *ShaderBuilder, mode ExtendMode) {
	b.AddStatement("fn gradient_extend(t: f32) -> f32 {")
	b.Scoped(func() {
		switch mode {
		case ExtendRepeat:
			b.AddStatement("return t - floor(t);")
		case ExtendReflect:
			b.AddStatement("let a = abs(t);")
			b.AddStatement("let period = floor(a);")
			b.AddStatement("let f = a - period;")
			b.AddStatement("if (period - 2.0 * floor(period * 0.5) == 1.0) {")
			b.Scoped(func() { b.AddStatement("return 1.0 - f;") })
			b.AddStatement("}")
			b.AddStatement("return f;")
		default:
			b.AddStatement("return clamp(t, 0.0, 1.0);")
		}
	})
	b.AddStatement("}")
}

// String describes the program for logs.
func (p *Program) String() string {
	return fmt.Sprintf("gradient program: %d segments, %d threshold groups, extend=%s",
		p.segments, thresholdSlots(p.segments)/4, p.extend)
}

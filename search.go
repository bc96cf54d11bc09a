package gradient

import "fmt"

// StatementSink accumulates generated shader statements.
//
// Indentation is a stack: every Indent must be matched by exactly one
// Unindent before the enclosing scope closes.
type StatementSink interface {
	AddStatement(s string)
	Indent()
	Unindent()
}

// SearchNames names the identifiers used by EmitBinarySearch.
type SearchNames struct {
	// Probe is the expression compared against thresholds, e.g. "t".
	Probe string
	// ThresholdPrefix names the packed threshold uniforms, e.g. "threshold".
	ThresholdPrefix string
	// Bias and Scale name the assigned variables and, suffixed with
	// "_<segment>", the uniforms they are read from.
	Bias  string
	Scale string
	// Scope qualifies uniform references as "<Scope>.<name>" when the
	// uniforms live in a struct instance. Empty means bare names.
	Scope string
}

// DefaultSearchNames returns the names used by Program.
func DefaultSearchNames() SearchNames {
	return SearchNames{
		Probe:           "t",
		ThresholdPrefix: ThresholdUniform,
		Bias:            BiasUniform,
		Scale:           ScaleUniform,
	}
}

func (n SearchNames) uniform(name string) string {
	if n.Scope == "" {
		return name
	}
	return n.Scope + "." + name
}

// vectorAxes are the component names of a 4-wide vector, in order.
const vectorAxes = "xyzw"

// componentName maps a component index in [0, 4) to its axis letter.
func componentName(i int) string {
	if i < 0 || i >= len(vectorAxes) {
		panic(fmt.Sprintf("gradient: vector component %d out of range [0, 4)", i))
	}
	return vectorAxes[i : i+1]
}

// thresholdRef returns the packed uniform reference holding threshold k:
// group k/4, component k%4.
func (n SearchNames) thresholdRef(k int) string {
	return n.uniform(UniformName(n.ThresholdPrefix, k/4)) + "." + componentName(k%4)
}

// EmitBinarySearch emits an unrolled binary search over segments
// [start, end] that assigns n.Bias and n.Scale from the uniforms of the
// segment containing n.Probe.
//
// The range is split at mid = (start+end)/2 and the probe is compared
// against the threshold separating segment mid from mid+1. Each branch
// body is indented one level; indentation is always balanced.
//
// For start == end only the two assignments are emitted. start > end
// panics.
func EmitBinarySearch(sink StatementSink, start, end int, n SearchNames) {
	if start > end {
		panic(fmt.Sprintf("gradient: empty search range [%d, %d]", start, end))
	}
	if start == end {
		sink.AddStatement(n.Bias + " = " + n.uniform(UniformName(n.Bias, start)) + ";")
		sink.AddStatement(n.Scale + " = " + n.uniform(UniformName(n.Scale, start)) + ";")
		return
	}

	mid := (start + end) / 2
	sink.AddStatement("if (" + n.Probe + " < " + n.thresholdRef(mid+1) + ") {")
	scoped(sink, func() { EmitBinarySearch(sink, start, mid, n) })
	sink.AddStatement("} else {")
	scoped(sink, func() { EmitBinarySearch(sink, mid+1, end, n) })
	sink.AddStatement("}")
}

// scoped runs fn one indentation level deeper.
func scoped(sink StatementSink, fn func()) {
	sink.Indent()
	defer sink.Unindent()
	fn()
}

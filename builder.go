package gradient

import "strings"

// ShaderBuilder is a StatementSink that renders statements as indented
// source lines.
type ShaderBuilder struct {
	lines []string
	unit  string
	depth int
}

// NewShaderBuilder creates a builder that indents with four spaces per level.
func NewShaderBuilder() *ShaderBuilder {
	return &ShaderBuilder{unit: "    "}
}

// AddStatement appends s at the current indentation.
func (b *ShaderBuilder) AddStatement(s string) {
	b.lines = append(b.lines, strings.Repeat(b.unit, b.depth)+s)
}

// Indent opens one indentation level.
func (b *ShaderBuilder) Indent() {
	b.depth++
}

// Unindent closes one indentation level. It panics if no level is open.
func (b *ShaderBuilder) Unindent() {
	if b.depth == 0 {
		panic("gradient: unindent without matching indent")
	}
	b.depth--
}

// Scoped runs fn one level deeper and restores the level afterwards,
// even if fn panics.
func (b *ShaderBuilder) Scoped(fn func()) {
	scoped(b, fn)
}

// Depth returns the number of open indentation levels.
func (b *ShaderBuilder) Depth() int {
	return b.depth
}

// Lines returns the emitted lines.
func (b *ShaderBuilder) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String returns the emitted source, one statement per line.
func (b *ShaderBuilder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

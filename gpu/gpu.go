//go:build !nogpu

// Package gpu connects normalized gradients to the gogpu/wgpu HAL.
//
// UniformBlock packs the named vec4 uniforms of a gradient.Program into the
// byte layout of its WGSL uniform struct. UniformBuffer adds a GPU buffer
// that the block is flushed to with Queue.WriteBuffer, and Resources bundles
// the shader module, bind group layout and bind group needed to draw.
//
// Usage:
//
//	g := gradient.MustNormalize(colors, stops)
//	p := gradient.ProgramFor(g, gradient.ExtendPad)
//
//	res, err := gpu.NewResources(device, queue, p)
//	if err != nil {
//	    return err
//	}
//	defer res.Destroy()
//
//	g.Upload(p, res.Uniforms)
//	if err := res.Uniforms.Flush(); err != nil {
//	    return err
//	}
package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gradient"
	"github.com/gogpu/naga"
)

// ErrSPIRVSize is returned when naga output is not a whole number of
// 32-bit words.
var ErrSPIRVSize = errors.New("gpu: SPIR-V output is not word aligned")

// CompileWGSL compiles WGSL source to SPIR-V words.
func CompileWGSL(src string) ([]uint32, error) {
	module, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile wgsl: %w", err)
	}
	if len(module)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrSPIRVSize, len(module))
	}
	words := make([]uint32, 0, len(module)/4)
	for b := module; len(b) > 0; b = b[4:] {
		words = append(words, binary.LittleEndian.Uint32(b))
	}
	return words, nil
}

// CompileProgram compiles the fragment module generated for p.
func CompileProgram(p *gradient.Program) ([]uint32, error) {
	code, err := CompileWGSL(p.FragmentSource())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	gradient.Logger().Debug("gpu: compiled gradient program",
		"segments", p.SegmentCount(), "spirv_words", len(code))
	return code, nil
}

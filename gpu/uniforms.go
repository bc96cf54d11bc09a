//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gradient"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNilDevice is returned when creating GPU resources without a device or queue.
	ErrNilDevice = errors.New("gpu: device or queue is nil")

	// ErrBufferDestroyed is returned when flushing a destroyed uniform buffer.
	ErrBufferDestroyed = errors.New("gpu: uniform buffer has been destroyed")
)

// vec4Bytes is the size of one vec4<f32> uniform slot.
const vec4Bytes = 16

// UniformBlock is a CPU staging copy of a program's uniform struct.
// It implements gradient.UniformBinder.
//
// Locations are slot indices into the struct. Names the program does not
// declare resolve to gradient.InvalidLocation, and setting that location
// does nothing.
type UniformBlock struct {
	program *gradient.Program
	data    []byte
	dirty   bool
}

// NewUniformBlock allocates a zeroed block laid out for p.
func NewUniformBlock(p *gradient.Program) *UniformBlock {
	return &UniformBlock{
		program: p,
		data:    make([]byte, p.UniformSize()),
	}
}

// UniformLocation resolves name within p. A program other than the one the
// block was created for yields InvalidLocation.
func (u *UniformBlock) UniformLocation(p *gradient.Program, name string) gradient.UniformLocation {
	if p != u.program {
		gradient.Logger().Debug("gpu: uniform lookup for foreign program", "name", name)
		return gradient.InvalidLocation
	}
	off, ok := p.UniformOffset(name)
	if !ok {
		gradient.Logger().Debug("gpu: unknown uniform", "name", name)
		return gradient.InvalidLocation
	}
	return gradient.UniformLocation(off / vec4Bytes) //nolint:gosec // slot count fits int32
}

// SetUniform4f stores a vec4 at loc.
func (u *UniformBlock) SetUniform4f(loc gradient.UniformLocation, x, y, z, w float32) {
	off := int(loc) * vec4Bytes
	if loc < 0 || off+vec4Bytes > len(u.data) {
		return
	}
	binary.LittleEndian.PutUint32(u.data[off:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(u.data[off+4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(u.data[off+8:], math.Float32bits(z))
	binary.LittleEndian.PutUint32(u.data[off+12:], math.Float32bits(w))
	u.dirty = true
}

// Uniform4f reads back the vec4 stored at loc.
func (u *UniformBlock) Uniform4f(loc gradient.UniformLocation) ([4]float32, bool) {
	off := int(loc) * vec4Bytes
	if loc < 0 || off+vec4Bytes > len(u.data) {
		return [4]float32{}, false
	}
	var v [4]float32
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(u.data[off+i*4:]))
	}
	return v, true
}

// Bytes returns the block contents. The slice aliases the block.
func (u *UniformBlock) Bytes() []byte {
	return u.data
}

// Dirty reports whether the block changed since the last flush.
func (u *UniformBlock) Dirty() bool {
	return u.dirty
}

// Program returns the program the block is laid out for.
func (u *UniformBlock) Program() *gradient.Program {
	return u.program
}

// BindGroupLayoutEntry describes the uniform binding of a gradient program:
// binding 0, fragment stage, uniform buffer.
func BindGroupLayoutEntry() gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
}

// UniformBuffer is a UniformBlock backed by a GPU uniform buffer.
//
// UniformBuffer is not safe for concurrent use.
type UniformBuffer struct {
	*UniformBlock

	queue  hal.Queue
	device hal.Device
	buf    hal.Buffer
}

// NewUniformBuffer creates the GPU buffer for p's uniform struct.
func NewUniformBuffer(device hal.Device, queue hal.Queue, p *gradient.Program) (*UniformBuffer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	block := NewUniformBlock(p)
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gradient_uniforms",
		Size:  uint64(len(block.data)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create gradient uniform buffer: %w", err)
	}
	return &UniformBuffer{
		UniformBlock: block,
		queue:        queue,
		device:       device,
		buf:          buf,
	}, nil
}

// Flush uploads the block if it changed since the last flush.
func (u *UniformBuffer) Flush() error {
	if u.buf == nil {
		return ErrBufferDestroyed
	}
	if !u.dirty {
		return nil
	}
	u.queue.WriteBuffer(u.buf, 0, u.data)
	u.dirty = false
	gradient.Logger().Debug("gpu: flushed gradient uniforms", "bytes", len(u.data))
	return nil
}

// Buffer returns the underlying GPU buffer, or nil after Destroy.
func (u *UniformBuffer) Buffer() hal.Buffer {
	return u.buf
}

// BindGroupEntry returns the bind group entry for binding 0.
func (u *UniformBuffer) BindGroupEntry() gputypes.BindGroupEntry {
	return gputypes.BindGroupEntry{
		Binding: 0,
		Resource: gputypes.BufferBinding{
			Buffer: u.buf.NativeHandle(), Offset: 0, Size: uint64(len(u.data)),
		},
	}
}

// Destroy releases the GPU buffer. It is safe to call more than once.
func (u *UniformBuffer) Destroy() {
	if u.buf != nil {
		u.device.DestroyBuffer(u.buf)
		u.buf = nil
	}
}

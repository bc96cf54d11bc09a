//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/gradient"
	"github.com/gogpu/wgpu/hal"
)

// Resources holds the GPU objects needed to draw one gradient program.
type Resources struct {
	device hal.Device

	Shader    hal.ShaderModule
	Layout    hal.BindGroupLayout
	BindGroup hal.BindGroup
	Uniforms  *UniformBuffer
}

// NewResources compiles p's fragment module and creates its uniform
// buffer, bind group layout and bind group. On error, everything created
// so far is released.
func NewResources(device hal.Device, queue hal.Queue, p *gradient.Program) (*Resources, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	r := &Resources{device: device}
	if err := r.create(queue, p); err != nil {
		r.Destroy()
		return nil, err
	}
	gradient.Logger().Debug("gpu: gradient resources ready", "program", p.String())
	return r, nil
}

// ErrNoHalProvider is returned when a device provider does not expose HAL
// device and queue objects.
var ErrNoHalProvider = errors.New("gpu: provider does not expose HAL types")

// NewResourcesFromProvider is NewResources for a device shared by a host
// application (e.g., gogpu). The provider must implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func NewResourcesFromProvider(provider any, p *gradient.Program) (*Resources, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHalProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHalProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHalProvider)
	}
	return NewResources(device, queue, p)
}

func (r *Resources) create(queue hal.Queue, p *gradient.Program) error {
	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "gradient_shader",
		Source: hal.ShaderSource{WGSL: p.FragmentSource()},
	})
	if err != nil {
		return fmt.Errorf("compile gradient shader: %w", err)
	}
	r.Shader = shader

	layout, err := r.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "gradient_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{BindGroupLayoutEntry()},
	})
	if err != nil {
		return fmt.Errorf("create gradient uniform layout: %w", err)
	}
	r.Layout = layout

	uniforms, err := NewUniformBuffer(r.device, queue, p)
	if err != nil {
		return err
	}
	r.Uniforms = uniforms

	bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "gradient_bind",
		Layout:  r.Layout,
		Entries: []gputypes.BindGroupEntry{uniforms.BindGroupEntry()},
	})
	if err != nil {
		return fmt.Errorf("create gradient bind group: %w", err)
	}
	r.BindGroup = bindGroup
	return nil
}

// Destroy releases all GPU objects in reverse creation order.
func (r *Resources) Destroy() {
	if r.BindGroup != nil {
		r.device.DestroyBindGroup(r.BindGroup)
		r.BindGroup = nil
	}
	if r.Uniforms != nil {
		r.Uniforms.Destroy()
		r.Uniforms = nil
	}
	if r.Layout != nil {
		r.device.DestroyBindGroupLayout(r.Layout)
		r.Layout = nil
	}
	if r.Shader != nil {
		r.device.DestroyShaderModule(r.Shader)
		r.Shader = nil
	}
}

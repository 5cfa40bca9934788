// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package webgpu

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/transform"
)

//go:embed shaders/chart.wgsl
var chartWGSL string

// validateShader runs the WGSL source through naga before handing it to
// the driver. Driver-side shader errors surface asynchronously and are
// hard to attribute; pre-validation turns them into a synchronous
// ErrShaderCompile at Init time.
func validateShader(source string) error {
	if _, err := naga.Compile(source); err != nil {
		return fmt.Errorf("%w: %v", chart.ErrShaderCompile, err)
	}
	return nil
}

// pipelines holds the render pipelines and layouts shared by all draws of
// one renderer handle. Triangle and line variants differ only in
// primitive topology.
type pipelines struct {
	bindLayout *wgpu.BindGroupLayout
	layout     *wgpu.PipelineLayout
	shader     *wgpu.ShaderModule
	triangles  *wgpu.RenderPipeline
	lines      *wgpu.RenderPipeline
}

func newPipelines(device *wgpu.Device, format wgpu.TextureFormat) (*pipelines, error) {
	if err := validateShader(chartWGSL); err != nil {
		return nil, err
	}

	p := &pipelines{}
	ok := false
	defer func() {
		if !ok {
			p.release()
		}
	}()

	var err error
	p.shader, err = device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "chart shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: chartWGSL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chart.ErrShaderCompile, err)
	}

	p.bindLayout, err = device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "chart uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: transform.ByteSize,
			},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: bind group layout: %w", err)
	}

	p.layout, err = device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "chart pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: pipeline layout: %w", err)
	}

	p.triangles, err = p.createPipeline(device, format, wgpu.PrimitiveTopologyTriangleList, "chart triangles")
	if err != nil {
		return nil, err
	}
	p.lines, err = p.createPipeline(device, format, wgpu.PrimitiveTopologyLineList, "chart lines")
	if err != nil {
		return nil, err
	}

	ok = true
	return p, nil
}

// vertexLayouts describes the two vertex buffers every draw binds:
// slot 0 positions (vec2), slot 1 colors (vec4).
func vertexLayouts() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: 8,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         0,
				ShaderLocation: 0,
			}},
		},
		{
			ArrayStride: 16,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{{
				Format:         wgpu.VertexFormatFloat32x4,
				Offset:         0,
				ShaderLocation: 1,
			}},
		},
	}
}

func (p *pipelines) createPipeline(device *wgpu.Device, format wgpu.TextureFormat, topology wgpu.PrimitiveTopology, label string) (*wgpu.RenderPipeline, error) {
	pipe, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.layout,
		Vertex: wgpu.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: %s pipeline: %w", label, err)
	}
	return pipe, nil
}

// pipelineFor picks the pipeline matching the geometry topology.
func (p *pipelines) pipelineFor(lineList bool) *wgpu.RenderPipeline {
	if lineList {
		return p.lines
	}
	return p.triangles
}

func (p *pipelines) release() {
	if p.lines != nil {
		p.lines.Release()
		p.lines = nil
	}
	if p.triangles != nil {
		p.triangles.Release()
		p.triangles = nil
	}
	if p.layout != nil {
		p.layout.Release()
		p.layout = nil
	}
	if p.bindLayout != nil {
		p.bindLayout.Release()
		p.bindLayout = nil
	}
	if p.shader != nil {
		p.shader.Release()
		p.shader = nil
	}
}

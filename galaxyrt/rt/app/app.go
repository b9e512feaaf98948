package app

import (
	"fmt"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gpu"
	"github.com/gekko3d/galaxy/galaxyrt/rt/shaders"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	Pipeline   *wgpu.RenderPipeline
	UniformBuf *wgpu.Buffer
	BindGroup  *wgpu.BindGroup
	Uploader   *WgpuUploader

	PixelRatio float32
	ClearColor wgpu.Color

	LastRenderTime float64
	FrameCount     int
	FPS            float64
	FPSTime        float64
}

func NewApp(window *glfw.Window) *App {
	return &App{
		Window:     window,
		PixelRatio: 1,
		ClearColor: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}
}

func (a *App) Init() error {
	a.Instance = wgpu.CreateInstance(nil)
	a.Surface = a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: a.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return err
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		return err
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := a.Surface.GetCapabilities(adapter)
	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	a.Surface.Configure(a.Adapter, a.Device, a.Config)
	a.updatePixelRatio()

	if err := a.createPipeline(); err != nil {
		return err
	}

	a.UniformBuf, err = a.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Galaxy Uniforms",
		Size:  gpu.UniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	a.BindGroup, err = a.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Galaxy BG",
		Layout: a.Pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: a.UniformBuf, Size: gpu.UniformSize},
		},
	})
	if err != nil {
		return err
	}

	a.Uploader = &WgpuUploader{Device: a.Device}
	a.LastRenderTime = glfw.GetTime()
	return nil
}

func (a *App) createPipeline() error {
	module, err := a.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Galaxy Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.GalaxyWGSL},
	})
	if err != nil {
		return err
	}
	defer module.Release()

	vec3Layout := func(location uint32) wgpu.VertexBufferLayout {
		return wgpu.VertexBufferLayout{
			ArrayStride: 12,
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: location},
			},
		}
	}

	a.Pipeline, err = a.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Galaxy Pipeline",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				vec3Layout(0), // position
				vec3Layout(1), // randomness
				vec3Layout(2), // color
				{
					ArrayStride: 4,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{Format: wgpu.VertexFormatFloat32, Offset: 0, ShaderLocation: 3},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    a.Config.Format,
				WriteMask: wgpu.ColorWriteMaskAll,
				// Additive, no depth writes.
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						Operation: wgpu.BlendOperationAdd,
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOne,
					},
					Alpha: wgpu.BlendComponent{
						Operation: wgpu.BlendOperationAdd,
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOne,
					},
				},
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	return err
}

func (a *App) updatePixelRatio() {
	xs, _ := a.Window.GetContentScale()
	if xs <= 0 {
		xs = 1
	}
	a.PixelRatio = xs
}

// Resize reconfigures the surface. Zero sizes happen while minimized and are skipped.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.Config.Width = uint32(w)
	a.Config.Height = uint32(h)
	a.Surface.Configure(a.Adapter, a.Device, a.Config)
	a.updatePixelRatio()
}

func (a *App) Viewport() (int, int) {
	return int(a.Config.Width), int(a.Config.Height)
}

func (a *App) UpdateUniforms(u *core.FrameUniforms) {
	a.Queue.WriteBuffer(a.UniformBuf, 0, gpu.PackUniforms(u))
}

// Render draws the point cloud buffers; a nil or foreign set clears the frame only.
func (a *App) Render(buffers gpu.BufferSet) {
	nextTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		fmt.Printf("ERROR: GetCurrentTexture failed: %v\n", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		fmt.Printf("ERROR: CreateView failed: %v\n", err)
		return
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		fmt.Printf("ERROR: CreateCommandEncoder failed: %v\n", err)
		return
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: a.ClearColor,
		}},
	})

	if set, ok := buffers.(*WgpuBufferSet); ok && set != nil && set.Count() > 0 {
		pass.SetPipeline(a.Pipeline)
		pass.SetBindGroup(0, a.BindGroup, nil)
		pass.SetVertexBuffer(0, set.Positions, 0, set.Positions.GetSize())
		pass.SetVertexBuffer(1, set.Randomness, 0, set.Randomness.GetSize())
		pass.SetVertexBuffer(2, set.Colors, 0, set.Colors.GetSize())
		pass.SetVertexBuffer(3, set.Scales, 0, set.Scales.GetSize())
		pass.Draw(6, set.Count(), 0, 0)
	}

	if err := pass.End(); err != nil {
		fmt.Printf("ERROR: Render pass End failed: %v\n", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		fmt.Printf("ERROR: Encoder Finish failed: %v\n", err)
		return
	}
	a.Queue.Submit(cmd)
	a.Surface.Present()

	now := glfw.GetTime()
	if a.LastRenderTime > 0 {
		a.FrameCount++
		a.FPSTime += now - a.LastRenderTime
		if a.FPSTime >= 1.0 {
			a.FPS = float64(a.FrameCount) / a.FPSTime
			a.FrameCount = 0
			a.FPSTime = 0
		}
	}
	a.LastRenderTime = now
}

func (a *App) Release() {
	if a.BindGroup != nil {
		a.BindGroup.Release()
	}
	if a.UniformBuf != nil {
		a.UniformBuf.Release()
	}
	if a.Pipeline != nil {
		a.Pipeline.Release()
	}
	if a.Device != nil {
		a.Device.Release()
	}
	if a.Surface != nil {
		a.Surface.Release()
	}
	if a.Instance != nil {
		a.Instance.Release()
	}
}

package galaxy

import (
	"fmt"

	rtapp "github.com/gekko3d/galaxy/galaxyrt/rt/app"
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is the WebGPU point renderer bound to the shared window.
type Renderer struct {
	gpu *rtapp.App
}

func (r *Renderer) Uploader() gpu.Uploader { return r.gpu.Uploader }
func (r *Renderer) PixelRatio() float32    { return r.gpu.PixelRatio }
func (r *Renderer) FPS() float64           { return r.gpu.FPS }

// RendererModule opens the window and the WebGPU device. Install it before
// GalaxyModule so the point cloud is uploaded to the device.
type RendererModule struct {
	Width  int
	Height int
	Title  string
}

func (mod RendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererWGPU)
	app.UseModules(PlatformWindowModule{
		Width:  mod.Width,
		Height: mod.Height,
		Title:  mod.Title,
	})
	ws, _ := Resource[WindowState](app)

	g := rtapp.NewApp(ws.Window())
	if err := g.Init(); err != nil {
		cmd.Logger().Named("wgpu").Errorf("WebGPU init failed: %v", err)
		panic(fmt.Sprintf("webgpu init: %v", err))
	}
	cmd.Logger().Named("wgpu").Infof("WebGPU renderer ready (%dx%d, pixel ratio %.2f)", ws.WindowWidth, ws.WindowHeight, g.PixelRatio)

	ensureCamera(app, cmd)
	cam, _ := Resource[core.CameraState](app)
	cam.Resize(ws.WindowWidth, ws.WindowHeight)

	cmd.AddResources(&Renderer{gpu: g})
	cmd.OnShutdown(g.Release)

	app.UseSystem(
		System(rendererUniformSystem).
			InStage(PreRender),
	)
	app.UseSystem(
		System(rendererDrawSystem).
			InStage(Render),
	)
}

func rendererUniformSystem(ws *WindowState, r *Renderer, cam *core.CameraState, uniforms *core.FrameUniforms, store *ParameterStore) {
	if ws.Resized {
		r.gpu.Resize(ws.WindowWidth, ws.WindowHeight)
		cam.Resize(ws.WindowWidth, ws.WindowHeight)
		ws.Resized = false
	}
	w, h := r.gpu.Viewport()
	syncFrameUniforms(uniforms, cam, store.Current().Size, r.gpu.PixelRatio, w, h)
	r.gpu.UpdateUniforms(uniforms)
}

func rendererDrawSystem(r *Renderer, state *GalaxyState) {
	r.gpu.Render(state.Buffers())
}

// syncFrameUniforms copies the camera and viewport into the uniform block.
// Time is written by the breath system.
func syncFrameUniforms(u *core.FrameUniforms, cam *core.CameraState, size, pixelRatio float32, width, height int) {
	u.View = cam.ViewMatrix()
	u.Projection = cam.ProjectionMatrix()
	u.Viewport = mgl32.Vec2{float32(width), float32(height)}
	u.Size = core.PointSizeUniform(size, pixelRatio)
}

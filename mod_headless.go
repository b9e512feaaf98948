package galaxy

import (
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gpu"
)

// HeadlessState stands in for the renderer when no window is open. It keeps
// the last packed uniform block so runs without a GPU still go through the
// same frame path.
type HeadlessState struct {
	Uniforms []byte
	Width    int
	Height   int
}

// HeadlessModule runs the loop without a window or device. With Frames > 0
// the app exits after that many frames.
type HeadlessModule struct {
	Frames int
	Width  int
	Height int
}

func (mod HeadlessModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, RendererHeadless)
	width, height := mod.Width, mod.Height
	if width <= 0 || height <= 0 {
		width, height = 1280, 720
	}
	ensureCamera(app, cmd)
	cam, _ := Resource[core.CameraState](app)
	cam.Resize(width, height)

	cmd.AddResources(&HeadlessState{
		Width:  width,
		Height: height,
	})
	app.UseSystem(
		System(headlessUniformSystem).
			InStage(PreRender),
	)
	if mod.Frames > 0 {
		app.UseModules(FrameLimitModule{Frames: mod.Frames})
	}
}

func headlessUniformSystem(h *HeadlessState, cam *core.CameraState, uniforms *core.FrameUniforms, store *ParameterStore) {
	syncFrameUniforms(uniforms, cam, store.Current().Size, 1, h.Width, h.Height)
	h.Uniforms = gpu.PackUniforms(uniforms)
}

type frameLimit struct {
	limit uint64
}

// FrameLimitModule exits the app after Frames ticks.
type FrameLimitModule struct {
	Frames int
}

func (mod FrameLimitModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&frameLimit{limit: uint64(mod.Frames)})
	app.UseSystem(
		System(frameLimitSystem).
			InStage(Finale),
	)
}

func frameLimitSystem(cmd *Commands, limit *frameLimit) {
	// Frame counts completed ticks; this one completes after Finale.
	if cmd.Frame()+1 >= limit.limit {
		if cam, ok := Resource[core.CameraState](cmd.app); ok {
			cmd.Logger().Infof("Stopping after %d frames (camera y=%.3f)", limit.limit, cam.Position.Y())
		}
		cmd.Exit()
	}
}

package galaxy

import (
	"github.com/gekko3d/galaxy/galaxyrt/rt/breath"
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
)

type BreathState struct {
	Animator *breath.Animator
	// PhaseChanges counts phase transitions since install.
	PhaseChanges int
}

type BreathModule struct {
	// Config zero value means breath.DefaultConfig.
	Config breath.Config
}

func (mod BreathModule) Install(app *App, cmd *Commands) {
	cfg := mod.Config
	if cfg == (breath.Config{}) {
		cfg = breath.DefaultConfig()
	}
	ensureCamera(app, cmd)

	cam, _ := Resource[core.CameraState](app)
	cam.Position[1] = cfg.StartY

	cmd.AddResources(&BreathState{Animator: breath.NewAnimator(cfg)})
	app.UseSystem(
		System(breathSystem).
			InStage(Update),
	)
}

// ensureCamera adds the camera and frame uniforms once; both the breath and
// renderer modules need them.
func ensureCamera(app *App, cmd *Commands) {
	if _, ok := Resource[core.CameraState](app); !ok {
		cmd.AddResources(core.NewCameraState())
	}
	if _, ok := Resource[core.FrameUniforms](app); !ok {
		cmd.AddResources(core.NewFrameUniforms())
	}
}

func breathSystem(cmd *Commands, t *Time, state *BreathState, cam *core.CameraState, uniforms *core.FrameUniforms) {
	y, changed := state.Animator.Tick(t.Elapsed)
	cam.Position[1] = y
	uniforms.Time = float32(t.Elapsed)

	if changed {
		state.PhaseChanges++
		cmd.Logger().Named("breath").Debugf("Breath phase %s at %.2fs (camera y=%.3f)", state.Animator.Phase(), t.Elapsed, y)
	}
}

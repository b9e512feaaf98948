package galaxy

import (
	"math"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	Key1 int = iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	KeyR
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyMinus
	KeyEqual
	KeyKPPlus
	KeyKPMinus
	KeyShift
	MouseButtonLeft
	keyCount
)

type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	cursorSeen               bool
}

// Control selects which parameter the keyboard edits.
type Control int

const (
	ControlCount Control = iota
	ControlRadius
	ControlBranches
	ControlRandomness
	ControlRandomnessPower
	ControlInsideColor
	ControlOutsideColor
	controlLen
)

func (c Control) String() string {
	switch c {
	case ControlCount:
		return "count"
	case ControlRadius:
		return "radius"
	case ControlBranches:
		return "branches"
	case ControlRandomness:
		return "randomness"
	case ControlRandomnessPower:
		return "randomnessPower"
	case ControlInsideColor:
		return "insideColor"
	case ControlOutsideColor:
		return "outsideColor"
	default:
		return "unknown"
	}
}

type Controls struct {
	Selected Control
	// stepping is true while an increment key is held; the edit commits on release.
	stepping bool
}

// OrbitSensitivity is the view rotation in radians per pixel of horizontal drag.
const OrbitSensitivity = 0.005

// InputModule polls the keyboard and mouse when a window exists and maps
// them to parameter edits and view rotation:
//
//	1-7 / Tab      select count, radius, branches, randomness, randomnessPower,
//	               insideColor, outsideColor
//	Up/Right/+     step up while held (Shift for 10x); colors rotate hue
//	Down/Left/-    step down while held
//	R              restore defaults
//	Esc            quit
//	left drag      rotate the view around the galaxy axis
//
// Edits are staged while a key is held and committed on release, so the
// galaxy is rebuilt once per gesture.
type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	ensureCamera(app, cmd)
	cmd.AddResources(&Input{}, &Controls{})
	if _, ok := Resource[WindowState](app); ok {
		app.UseSystem(
			System(inputSystem).
				InStage(PreUpdate),
		)
	}
	app.UseSystem(
		System(controlsSystem).
			InStage(PreUpdate),
	)
	app.UseSystem(
		System(orbitSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	for key, glfwKey := range keyToGlfw {
		input.SetKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	// Either shift key counts.
	input.SetKey(KeyShift, s.windowGlfw.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		s.windowGlfw.GetKey(glfw.KeyRightShift) == glfw.Press)

	input.SetKey(MouseButtonLeft, s.windowGlfw.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press)
	input.SetCursor(s.windowGlfw.GetCursorPos())
}

// SetCursor records the cursor position; the delta is zero on the first sample.
func (input *Input) SetCursor(x, y float64) {
	if input.cursorSeen {
		input.MouseDeltaX = x - input.MouseX
		input.MouseDeltaY = y - input.MouseY
	} else {
		input.MouseDeltaX, input.MouseDeltaY = 0, 0
	}
	input.MouseX, input.MouseY = x, y
	input.cursorSeen = true
}

// orbitSystem turns horizontal drags into camera azimuth. The frame the
// button goes down only anchors the drag.
func orbitSystem(input *Input, cam *core.CameraState) {
	if !input.Pressed[MouseButtonLeft] || input.JustPressed[MouseButtonLeft] {
		return
	}
	if input.MouseDeltaX == 0 {
		return
	}
	az := math.Mod(float64(cam.Azimuth)+input.MouseDeltaX*OrbitSensitivity, 2*math.Pi)
	if az < 0 {
		az += 2 * math.Pi
	}
	cam.Azimuth = float32(az)
}

// SetKey records the key state for this frame and derives the edge flags.
func (input *Input) SetKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

var selectKeys = map[int]Control{
	Key1: ControlCount,
	Key2: ControlRadius,
	Key3: ControlBranches,
	Key4: ControlRandomness,
	Key5: ControlRandomnessPower,
	Key6: ControlInsideColor,
	Key7: ControlOutsideColor,
}

func controlsSystem(cmd *Commands, input *Input, controls *Controls, store *ParameterStore) {
	if input.JustPressed[KeyEscape] {
		cmd.Exit()
		return
	}

	for key, control := range selectKeys {
		if input.JustPressed[key] {
			controls.Selected = control
			cmd.Logger().Named("input").Infof("Editing %s", control)
		}
	}
	if input.JustPressed[KeyTab] {
		controls.Selected = (controls.Selected + 1) % controlLen
		cmd.Logger().Named("input").Infof("Editing %s", controls.Selected)
	}

	if input.JustPressed[KeyR] {
		store.Set(func(p *core.Parameters) { *p = core.DefaultParameters() })
		store.Commit()
		return
	}

	dir := 0
	if input.Pressed[KeyUp] || input.Pressed[KeyRight] || input.Pressed[KeyEqual] || input.Pressed[KeyKPPlus] {
		dir++
	}
	if input.Pressed[KeyDown] || input.Pressed[KeyLeft] || input.Pressed[KeyMinus] || input.Pressed[KeyKPMinus] {
		dir--
	}
	if dir != 0 {
		mult := 1.0
		if input.Pressed[KeyShift] {
			mult = 10
		}
		store.Set(func(p *core.Parameters) { StepParameter(p, controls.Selected, float64(dir)*mult) })
		controls.stepping = true
		return
	}

	if controls.stepping {
		controls.stepping = false
		store.Commit()
	}
}

// StepParameter moves one control by steps increments, clamped to its range.
func StepParameter(p *core.Parameters, c Control, steps float64) {
	r := core.ControlRanges
	switch c {
	case ControlCount:
		p.Count = int(r.Count.Clamp(float64(p.Count) + steps*r.Count.Step))
	case ControlRadius:
		p.Radius = float32(r.Radius.Clamp(float64(p.Radius) + steps*r.Radius.Step))
	case ControlBranches:
		p.Branches = int(r.Branches.Clamp(float64(p.Branches) + steps*r.Branches.Step))
	case ControlRandomness:
		p.Randomness = float32(r.Randomness.Clamp(float64(p.Randomness) + steps*r.Randomness.Step))
	case ControlRandomnessPower:
		p.RandomnessPower = float32(r.RandomnessPower.Clamp(float64(p.RandomnessPower) + steps*r.RandomnessPower.Step))
	case ControlInsideColor:
		p.InsideColor = core.StepHue(p.InsideColor, steps*r.Hue.Step)
	case ControlOutsideColor:
		p.OutsideColor = core.StepHue(p.OutsideColor, steps*r.Hue.Step)
	}
}

var keyToGlfw = map[int]glfw.Key{
	Key1:       glfw.Key1,
	Key2:       glfw.Key2,
	Key3:       glfw.Key3,
	Key4:       glfw.Key4,
	Key5:       glfw.Key5,
	Key6:       glfw.Key6,
	Key7:       glfw.Key7,
	KeyR:       glfw.KeyR,
	KeyTab:     glfw.KeyTab,
	KeyEscape:  glfw.KeyEscape,
	KeyUp:      glfw.KeyUp,
	KeyDown:    glfw.KeyDown,
	KeyLeft:    glfw.KeyLeft,
	KeyRight:   glfw.KeyRight,
	KeyMinus:   glfw.KeyMinus,
	KeyEqual:   glfw.KeyEqual,
	KeyKPPlus:  glfw.KeyKPAdd,
	KeyKPMinus: glfw.KeyKPSubtract,
}

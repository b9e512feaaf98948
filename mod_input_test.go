package galaxy

import (
	"math"
	"testing"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"

	"github.com/stretchr/testify/assert"
)

func TestInputSetCursorDelta(t *testing.T) {
	input := &Input{}

	input.SetCursor(100, 50)
	assert.Equal(t, 0.0, input.MouseDeltaX)

	input.SetCursor(130, 40)
	assert.Equal(t, 30.0, input.MouseDeltaX)
	assert.Equal(t, -10.0, input.MouseDeltaY)
}

func TestDragRotatesView(t *testing.T) {
	a := newHeadlessApp(smallParameters(), GalaxyModule{})
	input := mustResource[Input](a.App)
	cam := mustResource[core.CameraState](a.App)
	uniforms := mustResource[core.FrameUniforms](a.App)

	input.SetCursor(200, 200)
	a.Tick()
	viewBefore := uniforms.View

	// Moving without the button does nothing.
	input.SetCursor(260, 200)
	a.Tick()
	assert.Equal(t, float32(0), cam.Azimuth)

	// The press frame only anchors the drag.
	input.SetKey(MouseButtonLeft, true)
	input.SetCursor(300, 200)
	a.Tick()
	assert.Equal(t, float32(0), cam.Azimuth)

	input.SetKey(MouseButtonLeft, true)
	input.SetCursor(400, 200)
	a.Tick()
	assert.InDelta(t, 100*OrbitSensitivity, cam.Azimuth, 1e-6)
	assert.NotEqual(t, viewBefore, uniforms.View)
	assert.Equal(t, cam.ViewMatrix(), uniforms.View)

	input.SetKey(MouseButtonLeft, false)
	input.SetCursor(500, 200)
	a.Tick()
	assert.InDelta(t, 100*OrbitSensitivity, cam.Azimuth, 1e-6)
}

func TestDragAzimuthWraps(t *testing.T) {
	input := &Input{}
	cam := core.NewCameraState()

	input.SetKey(MouseButtonLeft, true)
	input.SetKey(MouseButtonLeft, true)
	input.SetCursor(0, 0)
	input.SetCursor(-100, 0)
	orbitSystem(input, cam)

	assert.InDelta(t, 2*math.Pi-0.5, cam.Azimuth, 1e-5)
}

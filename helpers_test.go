package galaxy

import (
	"time"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gpu"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func smallParameters() core.Parameters {
	p := core.DefaultParameters()
	p.Count = 1000
	return p
}

type testApp struct {
	*App
	clock    *fakeClock
	uploader *gpu.HostUploader
}

// newHeadlessApp wires the full frame path without a window.
func newHeadlessApp(params core.Parameters, galaxy GalaxyModule) *testApp {
	clock := newFakeClock()
	uploader := gpu.NewHostUploader()
	if galaxy.Uploader == nil {
		galaxy.Uploader = uploader
	}
	if galaxy.Seed == 0 {
		galaxy.Seed = 7
	}
	app := NewAppBuilder().
		UseModule(
			TimeModule{Clock: clock.Now},
			ParametersModule{Params: &params},
			HeadlessModule{Width: 800, Height: 600},
			galaxy,
			BreathModule{},
			InputModule{},
		).
		Build()
	return &testApp{App: app, clock: clock, uploader: uploader}
}

func mustResource[T any](a *App) *T {
	r, ok := Resource[T](a)
	if !ok {
		panic("missing resource")
	}
	return r
}

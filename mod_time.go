package galaxy

import (
	"time"
)

// Time is the frame clock. Elapsed is seconds since the module was installed
// and never decreases, even if the Clock does.
type Time struct {
	Start   time.Time
	Now     time.Time
	Dt      time.Duration
	Elapsed float64
}

type TimeModule struct {
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type frameClock struct {
	now func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	clock := mod.Clock
	if clock == nil {
		clock = time.Now
	}
	start := clock()
	cmd.AddResources(
		&Time{
			Start: start,
			Now:   start,
		},
		&frameClock{now: clock},
	)
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(timeResource *Time, clock *frameClock) {
	now := clock.now()
	if now.Before(timeResource.Now) {
		timeResource.Dt = 0
		return
	}

	timeResource.Dt = now.Sub(timeResource.Now)
	timeResource.Now = now
	timeResource.Elapsed = now.Sub(timeResource.Start).Seconds()
}

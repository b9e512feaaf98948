package galaxy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeModuleElapsed(t *testing.T) {
	clock := newFakeClock()
	app := NewApp().UseModules(TimeModule{Clock: clock.Now})
	tm := mustResource[Time](app)

	app.Tick()
	assert.Equal(t, 0.0, tm.Elapsed)

	clock.Advance(1500 * time.Millisecond)
	app.Tick()
	assert.InDelta(t, 1.5, tm.Elapsed, 1e-9)
	assert.Equal(t, 1500*time.Millisecond, tm.Dt)
}

func TestTimeModuleIgnoresClockRegression(t *testing.T) {
	clock := newFakeClock()
	app := NewApp().UseModules(TimeModule{Clock: clock.Now})
	tm := mustResource[Time](app)

	clock.Advance(2 * time.Second)
	app.Tick()

	clock.Advance(-time.Second)
	app.Tick()
	assert.InDelta(t, 2.0, tm.Elapsed, 1e-9)
	assert.Equal(t, time.Duration(0), tm.Dt)

	clock.Advance(2 * time.Second)
	app.Tick()
	assert.InDelta(t, 3.0, tm.Elapsed, 1e-9)
}

package breath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fps = 60

// run ticks a fresh state at fps from 0 up to and including until, and
// returns the final state, the last camera Y and the times phases advanced.
func run(cfg Config, until float64) (State, float32, []float64) {
	s, y, advances, _ := runPhases(cfg, until)
	return s, y, advances
}

func runPhases(cfg Config, until float64) (State, float32, []float64, []Phase) {
	s := NewState()
	var y float32
	var advances []float64
	var phases []Phase
	for k := 0; ; k++ {
		t := float64(k) / fps
		if t > until {
			break
		}
		prev := s.Phase
		s, y = Step(s, cfg, t)
		if s.Phase != prev {
			advances = append(advances, t)
			phases = append(phases, s.Phase)
		}
	}
	return s, y, advances, phases
}

func TestStepInitialState(t *testing.T) {
	s, y := Step(NewState(), DefaultConfig(), 0)
	assert.Equal(t, PhaseIn, s.Phase)
	assert.Equal(t, float32(2), y)
	assert.Equal(t, 4.0, s.NextPhaseAt)
}

func TestPhaseSequenceIsCyclic(t *testing.T) {
	_, _, advances, phases := runPhases(DefaultConfig(), 40)
	require.Len(t, advances, 10)

	expected := []Phase{PhaseHold1, PhaseOut, PhaseHold2, PhaseIn}
	for i, at := range advances {
		assert.Equal(t, float64((i+1)*PhaseSeconds), math.Floor(at), "advance %d at %v", i, at)
		assert.Equal(t, expected[i%4], phases[i], "advance %d", i)
	}
}

func TestSingleAdvanceAcrossBoundary(t *testing.T) {
	cfg := DefaultConfig()
	s, _, _ := run(cfg, 3.98)
	require.Equal(t, PhaseIn, s.Phase)

	advances := 0
	const ticks = 1000
	for i := 0; i <= ticks; i++ {
		at := 3.99 + 0.02*float64(i)/ticks
		prev := s.Phase
		s, _ = Step(s, cfg, at)
		if s.Phase != prev {
			advances++
		}
	}
	assert.Equal(t, 1, advances)
	assert.Equal(t, PhaseHold1, s.Phase)
	assert.Equal(t, 8.0, s.NextPhaseAt)
}

func TestCameraRampsInAndOut(t *testing.T) {
	cfg := DefaultConfig()

	_, y, _ := run(cfg, 3.99)
	assert.InDelta(t, cfg.StartY+cfg.ZoomAmount*0.99, y, 1e-4, "t=4-")

	_, y, _ = run(cfg, 6)
	assert.InDelta(t, cfg.StartY+cfg.ZoomAmount*0.99, y, 1e-4, "holds after breathing in")

	_, y, _ = run(cfg, 11.99)
	assert.InDelta(t, cfg.StartY+cfg.ZoomAmount*0.01, y, 1e-4, "t=12-")

	_, y, _ = run(cfg, 14)
	assert.InDelta(t, cfg.StartY+cfg.ZoomAmount*0.01, y, 1e-4, "holds after breathing out")

	s, y, _ := run(cfg, 16.02)
	assert.Equal(t, PhaseIn, s.Phase)
	assert.InDelta(t, cfg.StartY, y, 1e-4, "cycle returns to baseline")
}

func TestCameraRampIsMonotonic(t *testing.T) {
	cfg := Config{StartY: 1, ZoomAmount: 3}
	s := NewState()
	var prev float32
	for k := 0; k < 4*fps; k++ {
		var y float32
		s, y = Step(s, cfg, float64(k)/fps)
		require.GreaterOrEqual(t, y, prev)
		require.LessOrEqual(t, y, cfg.StartY+cfg.ZoomAmount)
		prev = y
	}
}

func TestStepIgnoresTimeGoingBackwards(t *testing.T) {
	cfg := DefaultConfig()
	s, y := Step(NewState(), cfg, 2)

	back, backY := Step(s, cfg, 1)
	assert.Equal(t, s, back)
	assert.Equal(t, y, backY)

	nan, _ := Step(s, cfg, math.NaN())
	assert.Equal(t, s, nan)
}

func TestStepRecoversFromStall(t *testing.T) {
	cfg := DefaultConfig()
	s, _ := Step(NewState(), cfg, 1)

	s, _ = Step(s, cfg, 9)
	assert.Equal(t, PhaseIn, s.Phase, "no advance off a boundary")

	s, _ = Step(s, cfg, 12)
	assert.Equal(t, PhaseHold1, s.Phase)
	assert.Equal(t, 16.0, s.NextPhaseAt)

	s, _ = Step(s, cfg, 12.5)
	assert.False(t, s.PhaseAdvanced)
	s, _ = Step(s, cfg, 16.2)
	assert.Equal(t, PhaseOut, s.Phase)
}

func TestAnimatorTick(t *testing.T) {
	a := NewAnimator(DefaultConfig())
	y, changed := a.Tick(0)
	assert.False(t, changed)
	assert.Equal(t, float32(2), y)

	_, changed = a.Tick(4.01)
	assert.True(t, changed)
	assert.Equal(t, PhaseHold1, a.Phase())
	assert.Equal(t, y, a.CameraY())

	a.Reset()
	assert.Equal(t, NewState(), a.State())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "in", PhaseIn.String())
	assert.Equal(t, "out", PhaseOut.String())
	assert.Equal(t, PhaseIn, PhaseHold2.Next())
}

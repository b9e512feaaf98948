// Package breath drives the four-phase camera zoom cycle: breathe in, hold,
// breathe out, hold. Each phase lasts PhaseSeconds.
package breath

import (
	"fmt"
	"math"
)

type Phase int

const (
	PhaseIn Phase = iota
	PhaseHold1
	PhaseOut
	PhaseHold2
)

const (
	PhaseSeconds = 4
	CycleSeconds = PhaseSeconds * 4

	// rampSteps quantizes the zoom ramp to 1% increments.
	rampSteps = 100
)

func (p Phase) String() string {
	switch p {
	case PhaseIn:
		return "in"
	case PhaseHold1:
		return "hold"
	case PhaseOut:
		return "out"
	case PhaseHold2:
		return "hold-2"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) Next() Phase { return (p + 1) % 4 }

type Config struct {
	StartY     float32
	ZoomAmount float32
}

func DefaultConfig() Config {
	return Config{StartY: 2, ZoomAmount: 2}
}

// State is the full animator state. It is a value; Step returns a new one.
type State struct {
	Phase         Phase
	NextPhaseAt   float64
	PhaseAdvanced bool // set by an advance, cleared by the next in-phase tick

	Elapsed float64 // last accepted elapsed time
	Offset  float32 // camera offset above StartY, held during the hold phases
}

func NewState() State {
	return State{Phase: PhaseIn, NextPhaseAt: PhaseSeconds}
}

func onBoundary(elapsed float64) bool {
	floored := math.Floor(elapsed)
	return math.Mod(floored, PhaseSeconds) == 0 && floored != 0
}

// ramp returns the quantized progress [0,1) through the current phase.
func ramp(s State, elapsed float64) float32 {
	inPhase := elapsed - s.NextPhaseAt + PhaseSeconds
	step := float64(PhaseSeconds) / rampSteps
	return float32(math.Floor(inPhase/step) / rampSteps)
}

// Step advances s to elapsed and returns the new state with the camera Y.
// Elapsed values older than the last accepted one are ignored.
func Step(s State, cfg Config, elapsed float64) (State, float32) {
	if elapsed < s.Elapsed || math.IsNaN(elapsed) {
		return s, cfg.StartY + s.Offset
	}
	s.Elapsed = elapsed

	switch {
	case elapsed < s.NextPhaseAt:
		switch s.Phase {
		case PhaseIn:
			s.Offset = cfg.ZoomAmount * ramp(s, elapsed)
		case PhaseOut:
			s.Offset = cfg.ZoomAmount - cfg.ZoomAmount*ramp(s, elapsed)
		}
		s.PhaseAdvanced = false

	case onBoundary(elapsed) && !s.PhaseAdvanced:
		s.Phase = s.Phase.Next()
		s.NextPhaseAt += PhaseSeconds
		// After a stall the schedule would trail wall time forever; re-anchor
		// on the boundary we are standing on.
		if floored := math.Floor(elapsed); s.NextPhaseAt <= floored {
			s.NextPhaseAt = floored + PhaseSeconds
		}
		s.PhaseAdvanced = true
	}

	return s, cfg.StartY + s.Offset
}

// Animator owns a State for callers that tick it once per frame.
type Animator struct {
	Config Config
	state  State
}

func NewAnimator(cfg Config) *Animator {
	return &Animator{Config: cfg, state: NewState()}
}

// Tick steps the animation and returns the camera Y. It reports whether the
// phase changed on this tick.
func (a *Animator) Tick(elapsed float64) (float32, bool) {
	prev := a.state.Phase
	next, y := Step(a.state, a.Config, elapsed)
	a.state = next
	return y, next.Phase != prev
}

func (a *Animator) State() State { return a.state }
func (a *Animator) Phase() Phase { return a.state.Phase }

func (a *Animator) CameraY() float32 {
	return a.Config.StartY + a.state.Offset
}

func (a *Animator) Reset() {
	a.state = NewState()
}

package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrInvalidParameter = errors.New("invalid galaxy parameter")

// ParameterError names the offending field of a rejected Parameters value.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// Parameters drives galaxy generation. Size and Spin do not take part in the
// generator math; Size only feeds the point size uniform.
type Parameters struct {
	Count           int
	Size            float32
	Radius          float32
	Branches        int
	Spin            float32
	Randomness      float32
	RandomnessPower float32
	InsideColor     colorful.Color
	OutsideColor    colorful.Color
}

func DefaultParameters() Parameters {
	inside, _ := colorful.Hex("#b3fff6")
	outside, _ := colorful.Hex("#2462ff")
	return Parameters{
		Count:           336300,
		Size:            0.005,
		Radius:          1.57,
		Branches:        4,
		Spin:            0.1,
		Randomness:      0.353,
		RandomnessPower: 4.468,
		InsideColor:     inside,
		OutsideColor:    outside,
	}
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validColor(c colorful.Color) bool {
	for _, ch := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			return false
		}
	}
	return true
}

// Validate checks every field against its hard constraint and reports the
// first violation as a *ParameterError.
func (p Parameters) Validate() error {
	switch {
	case p.Count < 1:
		return &ParameterError{Field: "count", Value: p.Count, Reason: "must be >= 1"}
	case !finite(p.Size) || p.Size <= 0:
		return &ParameterError{Field: "size", Value: p.Size, Reason: "must be > 0"}
	case !finite(p.Radius) || p.Radius <= 0:
		return &ParameterError{Field: "radius", Value: p.Radius, Reason: "must be > 0"}
	case p.Branches < 1:
		return &ParameterError{Field: "branches", Value: p.Branches, Reason: "must be >= 1"}
	case !finite(p.Spin):
		return &ParameterError{Field: "spin", Value: p.Spin, Reason: "must be finite"}
	case !finite(p.Randomness) || p.Randomness < 0:
		return &ParameterError{Field: "randomness", Value: p.Randomness, Reason: "must be >= 0"}
	case !finite(p.RandomnessPower) || p.RandomnessPower < 1:
		return &ParameterError{Field: "randomnessPower", Value: p.RandomnessPower, Reason: "must be >= 1"}
	case !validColor(p.InsideColor):
		return &ParameterError{Field: "insideColor", Value: p.InsideColor, Reason: "channels must be in [0,1]"}
	case !validColor(p.OutsideColor):
		return &ParameterError{Field: "outsideColor", Value: p.OutsideColor, Reason: "channels must be in [0,1]"}
	}
	return nil
}

// NeedsRegeneration reports whether moving from old to next changes any field
// the generator reads.
func NeedsRegeneration(old, next Parameters) bool {
	return old.Count != next.Count ||
		old.Radius != next.Radius ||
		old.Branches != next.Branches ||
		old.Randomness != next.Randomness ||
		old.RandomnessPower != next.RandomnessPower ||
		old.InsideColor != next.InsideColor ||
		old.OutsideColor != next.OutsideColor
}

// ParseColor accepts "#rrggbb"/"#rgb" hex or a CSS color name.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidParameter, s, err)
		}
		return c, nil
	}
	rgba, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("%w: unknown color %q", ErrInvalidParameter, s)
	}
	c, _ := colorful.MakeColor(rgba)
	return c, nil
}

// Range bounds one control of the parameter surface.
type Range struct {
	Min, Max, Step float64
}

func (r Range) Clamp(v float64) float64 {
	return math.Min(r.Max, math.Max(r.Min, v))
}

// ControlRanges are the limits applied when stepping parameters interactively.
// They are narrower than Validate, which only enforces the hard constraints.
var ControlRanges = struct {
	Count, Radius, Branches, Randomness, RandomnessPower, Hue Range
}{
	Count:           Range{Min: 100, Max: 1000000, Step: 100},
	Radius:          Range{Min: 0.01, Max: 20, Step: 0.01},
	Branches:        Range{Min: 2, Max: 20, Step: 1},
	Randomness:      Range{Min: 0, Max: 2, Step: 0.001},
	RandomnessPower: Range{Min: 1, Max: 10, Step: 0.001},
	Hue:             Range{Min: 0, Max: 360, Step: 1},
}

// StepHue rotates c around the HCL hue circle, keeping chroma and luminance,
// and clamps the result back into RGB gamut.
func StepHue(c colorful.Color, degrees float64) colorful.Color {
	h, chroma, l := c.Hcl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hcl(h, chroma, l).Clamped()
}

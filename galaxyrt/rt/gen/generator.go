package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
)

// DefaultMaxBytes caps the attribute memory of a single cloud.
const DefaultMaxBytes = 512 << 20

var ErrResourceExhausted = errors.New("galaxy exceeds memory budget")

// Generator samples spiral galaxy point clouds from a random source.
// It is not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	maxBytes uint64
}

func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		rng:      rand.New(src),
		maxBytes: DefaultMaxBytes,
	}
}

// NewSeeded returns a generator whose output is reproducible for a given seed.
// A zero seed picks one from the wall clock.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.NewSource(seed))
}

func (g *Generator) WithMaxBytes(n uint64) *Generator {
	g.maxBytes = n
	return g
}

func (g *Generator) MaxBytes() uint64 { return g.maxBytes }

// offset draws a signed, power-biased displacement. Powers above one pull the
// result toward zero, which tightens the arms.
func (g *Generator) offset(p core.Parameters, radius float64) float64 {
	v := math.Pow(g.rng.Float64(), float64(p.RandomnessPower))
	sign := 1.0
	if g.rng.Float64() >= 0.5 {
		sign = -1
	}
	return v * sign * float64(p.Randomness) * radius
}

// Generate builds a new cloud from p. Parameters are validated and the memory
// budget checked before anything is allocated.
func (g *Generator) Generate(p core.Parameters) (*core.PointCloud, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	// Compare in points so huge counts cannot wrap the byte total.
	if uint64(p.Count) > g.maxBytes/core.BytesPerPoint {
		return nil, fmt.Errorf("%w: %d points exceed budget of %d bytes", ErrResourceExhausted, p.Count, g.maxBytes)
	}

	cloud := core.NewPointCloud(p.Count)
	maxRadius := float64(p.Radius)
	branches := p.Branches

	for i := 0; i < p.Count; i++ {
		i3 := i * 3

		radius := g.rng.Float64() * maxRadius
		branchAngle := float64(i%branches) / float64(branches) * math.Pi * 2

		randomX := g.offset(p, radius)
		randomY := g.offset(p, radius)
		randomZ := g.offset(p, radius)

		// Spin is intentionally not applied to the angle.
		sin, cos := math.Sincos(branchAngle)
		cloud.Positions[i3] = float32(cos * radius)
		cloud.Positions[i3+1] = 0
		cloud.Positions[i3+2] = float32(sin * radius)

		cloud.Randomness[i3] = float32(randomX)
		cloud.Randomness[i3+1] = float32(randomY)
		cloud.Randomness[i3+2] = float32(randomZ)

		mixed := p.InsideColor.BlendRgb(p.OutsideColor, radius/maxRadius)
		cloud.Colors[i3] = float32(mixed.R)
		cloud.Colors[i3+1] = float32(mixed.G)
		cloud.Colors[i3+2] = float32(mixed.B)

		cloud.Scales[i] = g.rng.Float32()
	}

	return cloud, nil
}

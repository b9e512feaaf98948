package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// BytesPerPoint is the GPU footprint of one point:
// position(12) + randomness(12) + color(12) + scale(4).
const BytesPerPoint = 40

// PointCloud holds the generated galaxy as flat attribute buffers ready for
// vertex upload. A cloud is immutable once generated.
type PointCloud struct {
	ID    uuid.UUID
	Count int

	Positions  []float32 // xyz per point, y == 0
	Randomness []float32 // xyz offset applied in the vertex shader
	Colors     []float32 // rgb
	Scales     []float32 // one per point, [0,1)
}

// Point is a read-only view of one entry of the cloud.
type Point struct {
	Position   mgl32.Vec3
	Randomness mgl32.Vec3
	Color      mgl32.Vec3
	Scale      float32
}

func NewPointCloud(count int) *PointCloud {
	return &PointCloud{
		ID:         uuid.New(),
		Count:      count,
		Positions:  make([]float32, count*3),
		Randomness: make([]float32, count*3),
		Colors:     make([]float32, count*3),
		Scales:     make([]float32, count),
	}
}

func (c *PointCloud) Point(i int) Point {
	i3 := i * 3
	return Point{
		Position:   mgl32.Vec3{c.Positions[i3], c.Positions[i3+1], c.Positions[i3+2]},
		Randomness: mgl32.Vec3{c.Randomness[i3], c.Randomness[i3+1], c.Randomness[i3+2]},
		Color:      mgl32.Vec3{c.Colors[i3], c.Colors[i3+1], c.Colors[i3+2]},
		Scale:      c.Scales[i],
	}
}

func (c *PointCloud) ByteSize() uint64 {
	return uint64(c.Count) * BytesPerPoint
}

// Validate checks buffer lengths against Count and rejects NaN/Inf entries.
func (c *PointCloud) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("point cloud %s: empty", c.ID)
	}
	buffers := []struct {
		name  string
		data  []float32
		width int
	}{
		{"positions", c.Positions, 3},
		{"randomness", c.Randomness, 3},
		{"colors", c.Colors, 3},
		{"scales", c.Scales, 1},
	}
	for _, b := range buffers {
		if len(b.data) != c.Count*b.width {
			return fmt.Errorf("point cloud %s: %s has %d values, want %d", c.ID, b.name, len(b.data), c.Count*b.width)
		}
		for i, v := range b.data {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				return fmt.Errorf("point cloud %s: %s[%d] is not finite", c.ID, b.name, i)
			}
		}
	}
	return nil
}

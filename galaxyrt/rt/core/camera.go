package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// BasePointSize is the point size in pixels at pixel ratio 1 and DefaultPointSize.
	BasePointSize    = 30.0
	DefaultPointSize = 0.005
	MaxPixelRatio    = 2.0
)

// CameraState is a perspective camera looking down at the galaxy plane.
// The breath animation only moves Position.Y.
type CameraState struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Azimuth  float32 // radians, rotation of the view around the Y axis
	Fov      float32 // degrees
	Near     float32
	Far      float32
	Aspect   float32
}

func NewCameraState() *CameraState {
	return &CameraState{
		Position: mgl32.Vec3{0, 2, 0},
		Fov:      75,
		Near:     0.1,
		Far:      100,
		Aspect:   16.0 / 9.0,
	}
}

// up is perpendicular to the view direction; the camera looks straight down
// so the world Y axis cannot be used.
func (c *CameraState) up() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.Azimuth))
	return mgl32.Vec3{float32(s), 0, float32(-co)}
}

func (c *CameraState) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.up())
}

func (c *CameraState) ProjectionMatrix() mgl32.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// Resize updates the aspect ratio; zero sizes (minimized window) are ignored.
func (c *CameraState) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// FrameUniforms is the per-frame state consumed by the galaxy shader.
type FrameUniforms struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Time       float32
	Size       float32
	Viewport   mgl32.Vec2
}

func NewFrameUniforms() *FrameUniforms {
	return &FrameUniforms{
		View:       mgl32.Ident4(),
		Projection: mgl32.Ident4(),
		Size:       PointSizeUniform(DefaultPointSize, 1),
		Viewport:   mgl32.Vec2{1, 1},
	}
}

// PointSizeUniform scales the base pixel size by the parameter size and the
// display pixel ratio (capped at MaxPixelRatio).
func PointSizeUniform(size float32, pixelRatio float32) float32 {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	pixelRatio = float32(math.Min(float64(pixelRatio), MaxPixelRatio))
	return BasePointSize * pixelRatio * size / DefaultPointSize
}

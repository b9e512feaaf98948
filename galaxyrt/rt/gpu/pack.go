package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
)

// UniformSize is the byte size of the galaxy shader uniform block:
//
//	struct Uniforms {
//	  view: mat4x4<f32>,       // 0
//	  proj: mat4x4<f32>,       // 64
//	  time: f32,               // 128
//	  size: f32,               // 132
//	  viewport: vec2<f32>,     // 136
//	}                          // 144
const UniformSize = 144

func Float32Bytes(values []float32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func PackUniforms(u *core.FrameUniforms) []byte {
	buf := make([]byte, UniformSize)

	writeMat := func(offset int, mat [16]float32) {
		for i, v := range mat {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(v))
		}
	}
	writeMat(0, u.View)
	writeMat(64, u.Projection)

	binary.LittleEndian.PutUint32(buf[128:], math.Float32bits(u.Time))
	binary.LittleEndian.PutUint32(buf[132:], math.Float32bits(u.Size))
	binary.LittleEndian.PutUint32(buf[136:], math.Float32bits(u.Viewport[0]))
	binary.LittleEndian.PutUint32(buf[140:], math.Float32bits(u.Viewport[1]))

	return buf
}

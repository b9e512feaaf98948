package app

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
	"github.com/gekko3d/galaxy/galaxyrt/rt/gpu"
)

// WgpuUploader creates one vertex buffer per point attribute.
type WgpuUploader struct {
	Device *wgpu.Device
}

type WgpuBufferSet struct {
	Positions  *wgpu.Buffer
	Randomness *wgpu.Buffer
	Colors     *wgpu.Buffer
	Scales     *wgpu.Buffer
	count      uint32
}

func (s *WgpuBufferSet) Count() uint32 { return s.count }

func (s *WgpuBufferSet) Release() {
	for _, buf := range []**wgpu.Buffer{&s.Positions, &s.Randomness, &s.Colors, &s.Scales} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	s.count = 0
}

func (u *WgpuUploader) Upload(cloud *core.PointCloud) (gpu.BufferSet, error) {
	set := &WgpuBufferSet{count: uint32(cloud.Count)}
	attrs := []struct {
		name string
		dst  **wgpu.Buffer
		data []float32
	}{
		{"position", &set.Positions, cloud.Positions},
		{"aRandomness", &set.Randomness, cloud.Randomness},
		{"color", &set.Colors, cloud.Colors},
		{"aScale", &set.Scales, cloud.Scales},
	}
	for _, attr := range attrs {
		buf, err := u.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    fmt.Sprintf("Galaxy %s %s", attr.name, cloud.ID),
			Contents: wgpu.ToBytes(attr.data),
			Usage:    wgpu.BufferUsageVertex,
		})
		if err != nil {
			set.Release()
			return nil, fmt.Errorf("%w: %s buffer for %d points: %v", gpu.ErrResourceExhausted, attr.name, cloud.Count, err)
		}
		*attr.dst = buf
	}
	return set, nil
}

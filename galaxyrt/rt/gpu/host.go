package gpu

import (
	"fmt"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
)

// HostUploader keeps attribute bytes in process memory. It backs headless
// runs and tests where no device exists.
type HostUploader struct {
	// MaxBytes limits a single upload; zero means unlimited.
	MaxBytes uint64

	live int
}

type HostBufferSet struct {
	owner      *HostUploader
	count      uint32
	released   bool
	Positions  []byte
	Randomness []byte
	Colors     []byte
	Scales     []byte
}

func NewHostUploader() *HostUploader {
	return &HostUploader{}
}

func (u *HostUploader) Upload(cloud *core.PointCloud) (BufferSet, error) {
	if u.MaxBytes > 0 && cloud.ByteSize() > u.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes requested, %d available", ErrResourceExhausted, cloud.ByteSize(), u.MaxBytes)
	}
	set := &HostBufferSet{
		owner:      u,
		count:      uint32(cloud.Count),
		Positions:  Float32Bytes(cloud.Positions),
		Randomness: Float32Bytes(cloud.Randomness),
		Colors:     Float32Bytes(cloud.Colors),
		Scales:     Float32Bytes(cloud.Scales),
	}
	u.live++
	return set, nil
}

// Live reports how many buffer sets have been uploaded and not released.
func (u *HostUploader) Live() int { return u.live }

func (s *HostBufferSet) Count() uint32 { return s.count }

func (s *HostBufferSet) Release() {
	if s.released {
		return
	}
	s.released = true
	s.Positions, s.Randomness, s.Colors, s.Scales = nil, nil, nil, nil
	s.owner.live--
}

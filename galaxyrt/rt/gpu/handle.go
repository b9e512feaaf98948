package gpu

import (
	"errors"

	"github.com/gekko3d/galaxy/galaxyrt/rt/core"
)

var ErrResourceExhausted = errors.New("gpu buffer allocation failed")

// BufferSet is the GPU-side copy of one point cloud.
type BufferSet interface {
	Count() uint32
	Release()
}

// Uploader turns a cloud into a BufferSet. Implementations must not leave
// partially created buffers behind when they return an error.
type Uploader interface {
	Upload(cloud *core.PointCloud) (BufferSet, error)
}

// PointCloudHandle owns the single live point cloud and its buffers.
// Replace swaps in a new cloud only once its buffers exist, then releases the
// old set, so the renderer never sees a half-released state.
type PointCloudHandle struct {
	uploader   Uploader
	cloud      *core.PointCloud
	buffers    BufferSet
	generation uint64
}

func NewPointCloudHandle(uploader Uploader) *PointCloudHandle {
	return &PointCloudHandle{uploader: uploader}
}

func (h *PointCloudHandle) Replace(cloud *core.PointCloud) error {
	buffers, err := h.uploader.Upload(cloud)
	if err != nil {
		return err
	}

	old := h.buffers
	h.cloud = cloud
	h.buffers = buffers
	h.generation++

	if old != nil {
		old.Release()
	}
	return nil
}

func (h *PointCloudHandle) Cloud() *core.PointCloud { return h.cloud }
func (h *PointCloudHandle) Buffers() BufferSet      { return h.buffers }
func (h *PointCloudHandle) Generation() uint64      { return h.generation }

// Release drops the current buffers. The handle can be reused with Replace.
func (h *PointCloudHandle) Release() {
	if h.buffers != nil {
		h.buffers.Release()
	}
	h.buffers = nil
	h.cloud = nil
}

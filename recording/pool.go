package recording

import (
	"image"

	"github.com/gogpu/deviceframe"
)

// ResourcePool stores the paths and images referenced by recorded commands.
// Paths are cloned on Add so a recording never observes later mutation of
// the caller's path.
//
// ResourcePool is not safe for concurrent mutation. A finished Recording
// only reads from it.
type ResourcePool struct {
	paths  []*deviceframe.Path
	images []image.Image
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:  make([]*deviceframe.Path, 0, 64),
		images: make([]image.Image, 0, 4),
	}
}

// AddPath clones path into the pool and returns its reference. A nil path
// is stored as an empty one.
func (p *ResourcePool) AddPath(path *deviceframe.Path) PathRef {
	if path == nil {
		path = deviceframe.NewPath()
	} else {
		path = path.Clone()
	}
	p.paths = append(p.paths, path)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// Path returns the path for ref, or nil if ref is out of range.
func (p *ResourcePool) Path(ref PathRef) *deviceframe.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddImage adds an image and returns its reference. Images are not copied;
// callers must not modify an image after drawing it.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// Image returns the image for ref, or nil if ref is out of range.
func (p *ResourcePool) Image(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.images = p.images[:0]
}

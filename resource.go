package gl2d

import (
	"fmt"
	"sync/atomic"
)

// ResourceKind tags the type of GPU object a Handle refers to.
type ResourceKind uint8

const (
	KindNone ResourceKind = iota
	KindVertexArray
	KindTexture
	KindProgram
)

func (k ResourceKind) String() string {
	switch k {
	case KindVertexArray:
		return "vertex-array"
	case KindTexture:
		return "texture"
	case KindProgram:
		return "program"
	default:
		return "none"
	}
}

// Handle identifies a GPU object created by a Device.
type Handle struct {
	Kind ResourceKind
	ID   uint32
}

// Valid reports whether h refers to an object.
func (h Handle) Valid() bool {
	return h.Kind != KindNone && h.ID != 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%s#%d", h.Kind, h.ID)
}

// Releaser frees the GPU object behind a handle. Device implements it.
type Releaser interface {
	Release(h Handle)
}

// Resource is a reference-counted Handle. The object is released through
// its Releaser when the last reference is dropped.
type Resource struct {
	handle Handle
	rel    Releaser
	refs   atomic.Int32
}

// NewResource wraps h with a reference count of one.
func NewResource(h Handle, rel Releaser) *Resource {
	r := &Resource{handle: h, rel: rel}
	r.refs.Store(1)
	return r
}

// Handle returns the wrapped handle.
func (r *Resource) Handle() Handle {
	if r == nil {
		return Handle{}
	}
	return r.handle
}

// Ref adds a reference and returns r.
func (r *Resource) Ref() *Resource {
	r.refs.Add(1)
	return r
}

// Unref drops a reference, releasing the object on the last one.
// It reports whether the object was released.
func (r *Resource) Unref() bool {
	if r == nil {
		return false
	}
	n := r.refs.Add(-1)
	if n > 0 {
		return false
	}
	if n < 0 {
		panic(fmt.Sprintf("gl2d: %v unreferenced too many times", r.handle))
	}
	if r.rel != nil && r.handle.Valid() {
		r.rel.Release(r.handle)
	}
	return true
}

// Refs returns the current reference count.
func (r *Resource) Refs() int {
	return int(r.refs.Load())
}

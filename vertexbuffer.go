package gl2d

// minVertexCapacity is the smallest backing allocation a VertexBuffer makes.
const minVertexCapacity = 1024

// VertexBuffer is an append-only sequence of vertices for the current frame.
// Clear retains the allocated capacity so a steady-state frame does not
// reallocate.
type VertexBuffer struct {
	verts []Vertex
}

// NewVertexBuffer returns a buffer with room for at least capacity vertices.
func NewVertexBuffer(capacity int) *VertexBuffer {
	vb := &VertexBuffer{}
	vb.growFor(max(capacity, minVertexCapacity))
	return vb
}

// growFor ensures that at least n more vertices can be appended without
// going past the current capacity.
func (vb *VertexBuffer) growFor(n int) {
	if len(vb.verts)+n <= cap(vb.verts) {
		return
	}
	sz := 2 * cap(vb.verts)
	if sz < minVertexCapacity {
		sz = minVertexCapacity
	}
	if sz < len(vb.verts)+n {
		sz = 2 * (len(vb.verts) + n)
	}
	v := make([]Vertex, len(vb.verts), sz)
	copy(v, vb.verts)
	vb.verts = v
}

// Alloc appends n zero-valued vertices and returns them for the caller to
// fill in. The returned slice must be written before the next call to Alloc.
func (vb *VertexBuffer) Alloc(n int) []Vertex {
	if n <= 0 {
		return nil
	}
	vb.growFor(n)
	start := len(vb.verts)
	vb.verts = vb.verts[:start+n]
	v := vb.verts[start : start+n : start+n]
	clear(v)
	return v
}

// Shrink removes the last n vertices.
func (vb *VertexBuffer) Shrink(n int) {
	if n <= 0 {
		return
	}
	if n > len(vb.verts) {
		n = len(vb.verts)
	}
	vb.verts = vb.verts[:len(vb.verts)-n]
}

// Clear resets the length to zero without releasing capacity.
func (vb *VertexBuffer) Clear() {
	vb.verts = vb.verts[:0]
}

// Len returns the number of vertices in the buffer.
func (vb *VertexBuffer) Len() int { return len(vb.verts) }

// Cap returns the number of vertices the buffer can hold before growing.
func (vb *VertexBuffer) Cap() int { return cap(vb.verts) }

// Vertices returns the accumulated vertices. The slice aliases the buffer
// and is only valid until the next Alloc or Clear.
func (vb *VertexBuffer) Vertices() []Vertex { return vb.verts }

package gl2d

// PixelFormat is the layout of texture data passed to UploadTexture.
type PixelFormat uint8

const (
	PixelRGBA8 PixelFormat = iota // 4 bytes per pixel, R first
)

// WrapMode selects how texture coordinates outside [0, 1] are resolved.
type WrapMode uint8

const (
	WrapClampToEdge WrapMode = iota
)

// AttribType is the component type of a vertex attribute.
type AttribType uint8

const (
	AttribFloat32 AttribType = iota
)

// VertexAttrib describes one attribute of a vertex layout.
type VertexAttrib struct {
	Location   uint32
	Components int
	Type       AttribType
	Offset     uintptr // Byte offset within the vertex
}

// VertexLayout describes the memory layout of a vertex type.
type VertexLayout struct {
	Stride  int // Bytes per vertex
	Attribs []VertexAttrib
}

// Device is the graphics-resource layer the frame controller draws
// through. Implementations own the GPU objects behind the handles they
// return; Release frees one.
//
// All methods are called from the rendering thread only.
type Device interface {
	// CompileProgram compiles and links a vertex+fragment program.
	CompileProgram(vertexSrc, fragmentSrc string) (Handle, error)

	// UploadTexture allocates a 2D texture initialised with pix.
	UploadTexture(width, height int, format PixelFormat, pix []byte, wrap WrapMode) (Handle, error)

	// CreateVertexBuffer allocates a streaming vertex buffer with the
	// given attribute layout.
	CreateVertexBuffer(layout VertexLayout) (Handle, error)

	// Begin2D sets the viewport and configures alpha blending with depth
	// testing disabled. An empty scissor disables scissoring.
	Begin2D(viewport, scissor IRect)

	// BindVertexBuffer uploads vertices into the buffer and binds it.
	BindVertexBuffer(h Handle, vertices []Vertex)
	BindProgram(h Handle)
	BindTexture(slot int, h Handle)

	SetUniformVec2(name string, v Vec2)
	SetUniformInt(name string, v int32)

	// DrawArrays draws count vertices starting at start from the bound
	// vertex buffer.
	DrawArrays(t Topology, start, count int)

	// Release frees the GPU object behind h.
	Release(h Handle)
}

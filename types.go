package gl2d

// Vec2 represents a 2D vector for positions and texture coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 is shorthand for Vec2{x, y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// IRect is an integer pixel rectangle (viewport, scissor box).
type IRect struct {
	X, Y int // Bottom-left corner in framebuffer coordinates
	W, H int // Width and height
}

// Empty reports whether the rectangle covers no pixels.
func (r IRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// RGBA is a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Common colors.
var (
	White       = RGBA{1, 1, 1, 1}
	Black       = RGBA{0, 0, 0, 1}
	Transparent = RGBA{}
)

// RGBAf creates a color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ARGB creates a color from a packed 0xAARRGGBB value.
func ARGB(argb uint32) RGBA {
	return RGBA{
		R: float32((argb>>16)&0xFF) / 255,
		G: float32((argb>>8)&0xFF) / 255,
		B: float32(argb&0xFF) / 255,
		A: float32((argb>>24)&0xFF) / 255,
	}
}

// ARGB packs the color back into 0xAARRGGBB, clamping each component.
func (c RGBA) ARGB() uint32 {
	return uint32(to8(c.A))<<24 | uint32(to8(c.R))<<16 | uint32(to8(c.G))<<8 | uint32(to8(c.B))
}

func to8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// Topology is the primitive assembly mode of a draw call.
type Topology uint8

const (
	Triangles Topology = iota // Filled shapes and glyphs
	Lines                     // Outlines
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// Vertex represents a vertex for 2D rendering.
// Memory layout matches the vertex attribute locations of the 2D program:
// 0 = position, 1 = color, 2 = texture coordinate.
type Vertex struct {
	Pos   Vec2 // Position in pixels, origin at the top-left
	Color RGBA // Per-vertex color, baked at emission
	UV    Vec2 // Atlas texture coordinates
}

// DrawCall is one run of consecutive vertices sharing a topology.
// Its start offset is the sum of the counts of all preceding runs.
type DrawCall struct {
	Topology Topology
	Count    int // Number of vertices
}

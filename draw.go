package gl2d

import "fmt"

// Line draws a one-pixel line from a to b in the current color.
func (c *Context2D) Line(a, b Vec2) {
	if !c.initialized {
		return
	}
	c.calls.Append(Lines, 2)
	v := c.vertices.Alloc(2)
	uv := c.atlas.SolidUV()
	col := c.state.Color
	v[0] = Vertex{Pos: a, Color: col, UV: uv}
	v[1] = Vertex{Pos: b, Color: col, UV: uv}
}

// LineF is Line with separate float coordinates.
func (c *Context2D) LineF(x0, y0, x1, y1 float32) {
	c.Line(Vec2{x0, y0}, Vec2{x1, y1})
}

// LineI is Line with integer pixel coordinates.
func (c *Context2D) LineI(x0, y0, x1, y1 int) {
	c.Line(Vec2{float32(x0), float32(y0)}, Vec2{float32(x1), float32(y1)})
}

// Rectangle draws the rectangle spanning corners a and b. A filled
// rectangle covers [a, b]; an outline is drawn one pixel inside b so that
// it covers the same pixels as the filled version.
func (c *Context2D) Rectangle(a, b Vec2, filled bool) {
	if !c.initialized {
		return
	}
	if !filled {
		b = b.Sub(Vec2{1, 1})
		c.Line(a, Vec2{b.X, a.Y})
		c.Line(Vec2{b.X, a.Y}, b)
		c.Line(b, Vec2{a.X, b.Y})
		c.Line(Vec2{a.X, b.Y}, a)
		return
	}
	c.calls.Append(Triangles, 6)
	uv := c.atlas.SolidUV()
	putQuad(c.vertices.Alloc(6), a.X, a.Y, b.X, b.Y, uv, uv, c.state.Color)
}

// RectangleF is Rectangle with separate float coordinates.
func (c *Context2D) RectangleF(x0, y0, x1, y1 float32, filled bool) {
	c.Rectangle(Vec2{x0, y0}, Vec2{x1, y1}, filled)
}

// RectangleI is Rectangle with integer pixel coordinates.
func (c *Context2D) RectangleI(x0, y0, x1, y1 int, filled bool) {
	c.Rectangle(Vec2{float32(x0), float32(y0)}, Vec2{float32(x1), float32(y1)}, filled)
}

// Text draws s with its top-left corner at pos and returns the position
// just past the last character. "^" followed by a hex digit switches to
// the corresponding MarkupPalette color for the rest of the string; the
// current color is not changed.
func (c *Context2D) Text(pos Vec2, s string) Vec2 {
	if !c.initialized || s == "" {
		return pos
	}
	return layoutText(c.vertices, c.calls, c.atlas, pos, s, c.state.Color)
}

// Textf formats according to a format specifier and draws the result
// with Text.
func (c *Context2D) Textf(pos Vec2, format string, args ...any) Vec2 {
	if !c.initialized {
		return pos
	}
	return c.Text(pos, fmt.Sprintf(format, args...))
}

// TextI is Textf at integer pixel coordinates.
func (c *Context2D) TextI(x, y int, format string, args ...any) Vec2 {
	return c.Textf(Vec2{float32(x), float32(y)}, format, args...)
}

// MeasureText returns the size s would occupy if drawn with Text.
// Color directives take no space.
func (c *Context2D) MeasureText(s string) Vec2 {
	a := c.atlas
	if a == nil {
		var err error
		if a, err = DefaultAtlas(); err != nil {
			return Vec2{}
		}
	}
	return measureText(a, s)
}

package gl2d

import (
	"strings"
	"unicode/utf8"
)

// MarkupEscape starts an inline color directive. "^" followed by a hex
// digit switches the text color to the corresponding palette entry; any
// other character after it leaves the caret as a literal glyph.
const MarkupEscape = '^'

// MarkupPalette holds the colors selected by the directives ^0 through ^f.
var MarkupPalette = [16]RGBA{
	ARGB(0xFF000000), // 0 black
	ARGB(0xFF000080), // 1 navy
	ARGB(0xFF008000), // 2 green
	ARGB(0xFF008080), // 3 teal
	ARGB(0xFF800000), // 4 maroon
	ARGB(0xFF800080), // 5 purple
	ARGB(0xFF808000), // 6 olive
	ARGB(0xFF404040), // 7 dark gray
	ARGB(0xFF808080), // 8 gray
	ARGB(0xFF4080FF), // 9 sky blue
	ARGB(0xFF40FF40), // a lime
	ARGB(0xFF40FFFF), // b aqua
	ARGB(0xFFFF8040), // c orange
	ARGB(0xFFFF40FF), // d pink
	ARGB(0xFFFFFF40), // e yellow
	ARGB(0xFFFFFFFF), // f white
}

// hexDigit returns the palette index selected by c.
func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// scanMarkup splits s at color directives. segment is called with each run
// of literal text (possibly ending in a literal caret) and directive with
// the palette index of each valid ^<hex> sequence, in string order.
func scanMarkup(s string, segment func(string), directive func(int)) {
	for len(s) > 0 {
		i := strings.IndexByte(s, MarkupEscape)
		if i < 0 {
			segment(s)
			return
		}
		if i+1 < len(s) {
			if idx, ok := hexDigit(s[i+1]); ok {
				if i > 0 {
					segment(s[:i])
				}
				directive(idx)
				s = s[i+2:]
				continue
			}
		}
		// Not a directive: the caret is printed and scanning resumes
		// right after it.
		segment(s[:i+1])
		s = s[i+1:]
	}
}

// layoutText appends one quad per printable character of s to vb and dl,
// starting at pos in the given color, and returns the advanced cursor.
func layoutText(vb *VertexBuffer, dl *DrawList, a *Atlas, pos Vec2, s string, color RGBA) Vec2 {
	scanMarkup(s,
		func(seg string) { pos.X = emitGlyphs(vb, dl, a, pos.X, pos.Y, seg, color) },
		func(idx int) { color = MarkupPalette[idx] },
	)
	return pos
}

// emitGlyphs reserves six vertices per character of s, fills in the
// printable ones and then gives back the reservation of the rest. Every
// character advances x by one char step.
func emitGlyphs(vb *VertexBuffer, dl *DrawList, a *Atlas, x, y float32, s string, color RGBA) float32 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return x
	}

	dl.Append(Triangles, n*6)
	v := vb.Alloc(n * 6)

	cw, ch := float32(a.CharW), float32(a.CharH)
	step := float32(a.CharStep)
	skipped := 0
	k := 0
	for _, r := range s {
		u0, v0, u1, v1, ok := a.GlyphUV(unicodeFallback(r))
		if ok {
			putQuad(v[k:k+6], x, y, x+cw, y+ch, Vec2{u0, v0}, Vec2{u1, v1}, color)
			k += 6
		} else {
			skipped++
		}
		x += step
	}

	vb.Shrink(skipped * 6)
	dl.Retract(skipped * 6)
	return x
}

// putQuad writes an axis-aligned quad as two triangles split along the
// top-right/bottom-left diagonal. The fourth and fifth vertices repeat the
// third and second. v must hold six vertices.
func putQuad(v []Vertex, x0, y0, x1, y1 float32, uv0, uv1 Vec2, c RGBA) {
	v[0] = Vertex{Pos: Vec2{x0, y0}, Color: c, UV: uv0}
	v[1] = Vertex{Pos: Vec2{x1, y0}, Color: c, UV: Vec2{uv1.X, uv0.Y}}
	v[2] = Vertex{Pos: Vec2{x0, y1}, Color: c, UV: Vec2{uv0.X, uv1.Y}}
	v[3] = v[2]
	v[4] = v[1]
	v[5] = Vertex{Pos: Vec2{x1, y1}, Color: c, UV: uv1}
}

// measureText returns the size of the box s occupies when laid out with
// a, ignoring color directives.
func measureText(a *Atlas, s string) Vec2 {
	n := 0
	scanMarkup(s,
		func(seg string) { n += utf8.RuneCountInString(seg) },
		func(int) {},
	)
	if n == 0 {
		return Vec2{}
	}
	return Vec2{X: float32(n * a.CharStep), Y: float32(a.CharH)}
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 33-127 only).
func unicodeFallback(r rune) rune {
	if r < utf8.RuneSelf {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→', '⯈':
		return '>'
	case '◄', '◀', '◂', '←', '⯇':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	case '°':
		return 'o'
	default:
		return r
	}
}

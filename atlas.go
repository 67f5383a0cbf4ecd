package gl2d

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"image"
	"sync"
)

// Built-in font metrics. The atlas is a 32x3 grid of 9x14 cells covering
// character codes 32..127.
const (
	FontWidth      = 288
	FontHeight     = 42
	FontCharWidth  = 9
	FontCharHeight = 14
	FontCharStep   = 8 // Horizontal advance; narrower than a cell
	FontLineHeight = 12

	fontCellsPerRow = FontWidth / FontCharWidth
	firstGlyph      = 32
)

// fontBitmap is the built-in font as a base64-encoded 1-bit-per-pixel
// bitmap, row-major, least significant bit first.
//
//go:embed font.b64
var fontBitmap string

// Atlas is an RGBA8 glyph texture. It is immutable once built and may be
// shared between controllers.
type Atlas struct {
	Width, Height   int
	CharW, CharH    int
	CharStep        int
	LineHeight      int
	Pix             []byte // RGBA8, row-major, Width*Height*4 bytes
	uvW, uvH        float32
	cellsPerRow     int
	cellRowsInAtlas int
}

var (
	defaultAtlas     *Atlas
	defaultAtlasErr  error
	defaultAtlasOnce sync.Once
)

// DefaultAtlas returns the atlas built from the embedded font. It is
// decoded once per process.
func DefaultAtlas() (*Atlas, error) {
	defaultAtlasOnce.Do(func() {
		packed, err := base64.StdEncoding.DecodeString(fontBitmap)
		if err != nil {
			defaultAtlasErr = fmt.Errorf("decode font bitmap: %w", err)
			return
		}
		defaultAtlas = BuildAtlas(packed)
	})
	return defaultAtlas, defaultAtlasErr
}

// BuildAtlas expands a packed 1bpp font bitmap into an RGBA8 atlas of the
// built-in font's dimensions. Every set bit becomes an opaque white pixel
// with an opaque black pixel diagonally below-right of it as a drop
// shadow. A short bitmap is treated as zero-padded.
func BuildAtlas(packed []byte) *Atlas {
	const w, h = FontWidth, FontHeight
	pix := make([]byte, w*h*4)

	put := func(x, y int, c uint32) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		o := (y*w + x) * 4
		pix[o+0] = byte(c >> 16) // R
		pix[o+1] = byte(c >> 8)  // G
		pix[o+2] = byte(c)       // B
		pix[o+3] = byte(c >> 24) // A
	}

	for xy := 0; xy < w*h; xy++ {
		i := xy / 8
		if i >= len(packed) {
			break
		}
		if packed[i]>>(xy%8)&1 == 0 {
			continue
		}
		x, y := xy%w, xy/w
		put(x, y, 0xFFFFFFFF)
		put(x+1, y+1, 0xFF000000)
	}

	// The solid-fill texel used by lines and rectangles. No bit can ever
	// light it since its shadow would fall outside the atlas.
	put(w-1, h-1, 0xFFFFFFFF)

	return &Atlas{
		Width:           w,
		Height:          h,
		CharW:           FontCharWidth,
		CharH:           FontCharHeight,
		CharStep:        FontCharStep,
		LineHeight:      FontLineHeight,
		Pix:             pix,
		uvW:             float32(FontCharWidth) / w,
		uvH:             float32(FontCharHeight) / h,
		cellsPerRow:     fontCellsPerRow,
		cellRowsInAtlas: h / FontCharHeight,
	}
}

// Image returns an image.RGBA view over the atlas pixels. The pixels must
// not be modified.
func (a *Atlas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    a.Pix,
		Stride: a.Width * 4,
		Rect:   image.Rect(0, 0, a.Width, a.Height),
	}
}

// At returns the RGBA8 texel at (x, y), or zero outside the atlas.
func (a *Atlas) At(x, y int) [4]byte {
	if x < 0 || y < 0 || x >= a.Width || y >= a.Height {
		return [4]byte{}
	}
	o := (y*a.Width + x) * 4
	return [4]byte{a.Pix[o], a.Pix[o+1], a.Pix[o+2], a.Pix[o+3]}
}

// Printable reports whether r has a glyph cell in the atlas.
func (a *Atlas) Printable(r rune) bool {
	return r > firstGlyph && int(r-firstGlyph) < a.cellsPerRow*a.cellRowsInAtlas
}

// GlyphUV returns the texture rectangle of the glyph for r.
func (a *Atlas) GlyphUV(r rune) (u0, v0, u1, v1 float32, ok bool) {
	if !a.Printable(r) {
		return 0, 0, 0, 0, false
	}
	idx := int(r - firstGlyph)
	u0 = float32(idx%a.cellsPerRow) * a.uvW
	v0 = float32(idx/a.cellsPerRow) * a.uvH
	return u0, v0, u0 + a.uvW, v0 + a.uvH, true
}

// SolidUV is the texture coordinate of the guaranteed opaque white texel
// in the bottom-right corner, used so that untextured shapes can share the
// atlas binding with text.
func (a *Atlas) SolidUV() Vec2 {
	return Vec2{X: 1, Y: 1}
}

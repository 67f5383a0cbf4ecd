package gl2d

import (
	"bytes"
	"math"
	"testing"
)

var (
	opaqueWhite = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	opaqueBlack = [4]byte{0, 0, 0, 0xFF}
)

func TestBuildAtlas_AllOnes(t *testing.T) {
	packed := bytes.Repeat([]byte{0xFF}, FontWidth*FontHeight/8)
	a := BuildAtlas(packed)

	if len(a.Pix) != FontWidth*FontHeight*4 {
		t.Fatalf("len(Pix) = %d", len(a.Pix))
	}
	// Every shadow is overdrawn by the lit pixel that follows it in scan order.
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if got := a.At(x, y); got != opaqueWhite {
				t.Fatalf("At(%d, %d) = %v, want opaque white", x, y, got)
			}
		}
	}
}

func TestBuildAtlas_Empty(t *testing.T) {
	a := BuildAtlas(nil)
	if got := a.At(a.Width-1, a.Height-1); got != opaqueWhite {
		t.Errorf("solid texel = %v, want opaque white", got)
	}
	if got := a.At(0, 0); got != [4]byte{} {
		t.Errorf("At(0, 0) = %v, want transparent", got)
	}
}

func TestBuildAtlas_Shadow(t *testing.T) {
	packed := make([]byte, FontWidth*FontHeight/8)
	packed[0] = 0x01 // (0, 0)

	// (w-1, 0): shadow falls outside and must not wrap into the next row.
	last := FontWidth - 1
	packed[last/8] |= 1 << (last % 8)

	a := BuildAtlas(packed)
	checks := []struct {
		x, y int
		want [4]byte
	}{
		{0, 0, opaqueWhite},
		{1, 1, opaqueBlack},
		{1, 0, [4]byte{}},
		{0, 1, [4]byte{}},
		{last, 0, opaqueWhite},
		{0, 2, [4]byte{}},
	}
	for _, c := range checks {
		if got := a.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestAtlas_AtOutOfBounds(t *testing.T) {
	a := BuildAtlas(nil)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {a.Width, 0}, {0, a.Height}} {
		if got := a.At(p[0], p[1]); got != [4]byte{} {
			t.Errorf("At(%d, %d) = %v, want zero", p[0], p[1], got)
		}
	}
}

func TestDefaultAtlas(t *testing.T) {
	a, err := DefaultAtlas()
	if err != nil {
		t.Fatalf("DefaultAtlas: %v", err)
	}
	if a.Width != FontWidth || a.Height != FontHeight {
		t.Errorf("size = %dx%d", a.Width, a.Height)
	}
	if got := a.At(a.Width-1, a.Height-1); got != opaqueWhite {
		t.Errorf("solid texel = %v, want opaque white", got)
	}

	again, _ := DefaultAtlas()
	if again != a {
		t.Error("DefaultAtlas should be built once")
	}

	// The cell for 'A' must contain lit pixels.
	u0, v0, _, _, ok := a.GlyphUV('A')
	if !ok {
		t.Fatal("'A' not printable")
	}
	x0 := int(math.Round(float64(u0 * float32(a.Width))))
	y0 := int(math.Round(float64(v0 * float32(a.Height))))
	lit := 0
	for y := y0; y < y0+a.CharH; y++ {
		for x := x0; x < x0+a.CharW; x++ {
			if a.At(x, y) == opaqueWhite {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph 'A' has no lit pixels")
	}

	img := a.Image()
	if img.Bounds().Dx() != a.Width || img.RGBAAt(a.Width-1, a.Height-1).A != 0xFF {
		t.Error("Image() does not reflect the atlas")
	}
}

func TestAtlas_GlyphUV(t *testing.T) {
	a := BuildAtlas(nil)
	const eps = 1e-6

	tests := []struct {
		r        rune
		col, row int
		ok       bool
	}{
		{' ', 0, 0, false},
		{'\t', 0, 0, false},
		{'!', 1, 0, true},
		{'?', 31, 0, true},
		{'@', 0, 1, true},
		{'A', 1, 1, true},
		{'~', 30, 2, true},
		{127, 31, 2, true},
		{128, 0, 0, false},
		{'é', 0, 0, false},
	}
	for _, tt := range tests {
		u0, v0, u1, v1, ok := a.GlyphUV(tt.r)
		if ok != tt.ok {
			t.Errorf("GlyphUV(%q) ok = %v, want %v", tt.r, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		wantU := float64(tt.col*FontCharWidth) / FontWidth
		wantV := float64(tt.row*FontCharHeight) / FontHeight
		if math.Abs(float64(u0)-wantU) > eps || math.Abs(float64(v0)-wantV) > eps {
			t.Errorf("GlyphUV(%q) origin = (%v, %v), want (%v, %v)", tt.r, u0, v0, wantU, wantV)
		}
		if math.Abs(float64(u1-u0)-float64(FontCharWidth)/FontWidth) > eps ||
			math.Abs(float64(v1-v0)-float64(FontCharHeight)/FontHeight) > eps {
			t.Errorf("GlyphUV(%q) size = (%v, %v)", tt.r, u1-u0, v1-v0)
		}
	}
}

package gl2d

import (
	"reflect"
	"testing"
)

func mustAtlas(t *testing.T) *Atlas {
	t.Helper()
	a, err := DefaultAtlas()
	if err != nil {
		t.Fatal(err)
	}
	return a
}

type markupEvent struct {
	text  string
	color int // -1 for text segments
}

func scanAll(s string) []markupEvent {
	var ev []markupEvent
	scanMarkup(s,
		func(seg string) { ev = append(ev, markupEvent{seg, -1}) },
		func(idx int) { ev = append(ev, markupEvent{"", idx}) },
	)
	return ev
}

func TestScanMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want []markupEvent
	}{
		{"", nil},
		{"plain", []markupEvent{{"plain", -1}}},
		{"^1red^ftext", []markupEvent{{"", 1}, {"red", -1}, {"", 15}, {"text", -1}}},
		{"5^^2", []markupEvent{{"5^", -1}, {"", 2}}},
		{"a^", []markupEvent{{"a^", -1}}},
		{"^x", []markupEvent{{"^", -1}, {"x", -1}}},
		{"^A^b", []markupEvent{{"", 10}, {"", 11}}},
		{"x^g^9y", []markupEvent{{"x^", -1}, {"g", -1}, {"", 9}, {"y", -1}}},
	}
	for _, tt := range tests {
		if got := scanAll(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("scanMarkup(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func layout(t *testing.T, s string, color RGBA) (*VertexBuffer, *DrawList, Vec2) {
	t.Helper()
	vb := NewVertexBuffer(0)
	dl := NewDrawList()
	end := layoutText(vb, dl, mustAtlas(t), V2(10, 20), s, color)
	if dl.Total() != vb.Len() {
		t.Fatalf("%q: ledger covers %d vertices, buffer holds %d", s, dl.Total(), vb.Len())
	}
	return vb, dl, end
}

func TestLayoutText_SkipsSpaces(t *testing.T) {
	vb, _, end := layout(t, "a b", White)
	if vb.Len() != 12 {
		t.Errorf("Len() = %d, want 12", vb.Len())
	}
	if want := V2(10+3*FontCharStep, 20); end != want {
		t.Errorf("cursor = %v, want %v", end, want)
	}
	// 'b' sits two steps in despite the skipped space.
	if got := vb.Vertices()[6].Pos; got != V2(10+2*FontCharStep, 20) {
		t.Errorf("second glyph at %v", got)
	}
}

func TestLayoutText_Markup(t *testing.T) {
	vb, _, end := layout(t, "^1red^ftext", Black)
	if vb.Len() != 7*6 {
		t.Fatalf("Len() = %d, want %d", vb.Len(), 7*6)
	}
	if want := V2(10+7*FontCharStep, 20); end != want {
		t.Errorf("cursor = %v, want %v", end, want)
	}
	v := vb.Vertices()
	if v[0].Color != MarkupPalette[1] || v[3*6-1].Color != MarkupPalette[1] {
		t.Errorf("\"red\" colored %v, want %v", v[0].Color, MarkupPalette[1])
	}
	if v[3*6].Color != White {
		t.Errorf("\"text\" colored %v, want white", v[3*6].Color)
	}
}

func TestLayoutText_LiteralCaret(t *testing.T) {
	vb, _, end := layout(t, "5^^2", Black)
	if vb.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", vb.Len())
	}
	v := vb.Vertices()
	for i := range v {
		if v[i].Color != Black {
			t.Fatalf("vertex %d colored %v, want the base color", i, v[i].Color)
		}
	}
	u0, v0, _, _, _ := mustAtlas(t).GlyphUV('^')
	if got := v[6].UV; got != V2(u0, v0) {
		t.Errorf("second glyph uv = %v, want caret cell %v", got, V2(u0, v0))
	}
	if want := V2(10+2*FontCharStep, 20); end != want {
		t.Errorf("cursor = %v, want %v", end, want)
	}
}

func TestLayoutText_TrailingCaret(t *testing.T) {
	vb, _, _ := layout(t, "a^", White)
	if vb.Len() != 12 {
		t.Errorf("Len() = %d, want 12", vb.Len())
	}
}

func TestLayoutText_QuadGeometry(t *testing.T) {
	a := mustAtlas(t)
	vb, dl, _ := layout(t, "A", White)
	if got := dl.Calls(); len(got) != 1 || got[0] != (DrawCall{Triangles, 6}) {
		t.Fatalf("Calls() = %v", got)
	}
	u0, v0, u1, v1, _ := a.GlyphUV('A')
	x0, y0 := float32(10), float32(20)
	x1, y1 := x0+FontCharWidth, y0+FontCharHeight
	want := []Vertex{
		{Pos: V2(x0, y0), Color: White, UV: V2(u0, v0)},
		{Pos: V2(x1, y0), Color: White, UV: V2(u1, v0)},
		{Pos: V2(x0, y1), Color: White, UV: V2(u0, v1)},
		{Pos: V2(x0, y1), Color: White, UV: V2(u0, v1)},
		{Pos: V2(x1, y0), Color: White, UV: V2(u1, v0)},
		{Pos: V2(x1, y1), Color: White, UV: V2(u1, v1)},
	}
	if got := vb.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("vertices = %v\nwant %v", got, want)
	}
}

func TestLayoutText_UnicodeFallback(t *testing.T) {
	vb, _, end := layout(t, "→é", White)
	if vb.Len() != 6 {
		t.Errorf("Len() = %d, want one glyph", vb.Len())
	}
	u0, v0, _, _, _ := mustAtlas(t).GlyphUV('>')
	if got := vb.Vertices()[0].UV; got != V2(u0, v0) {
		t.Errorf("arrow drawn with uv %v, want '>' cell", got)
	}
	if want := V2(10+2*FontCharStep, 20); end != want {
		t.Errorf("cursor = %v, want %v", end, want)
	}
}

func TestMeasureText(t *testing.T) {
	a := mustAtlas(t)
	tests := []struct {
		in   string
		want Vec2
	}{
		{"", Vec2{}},
		{"^1", Vec2{}},
		{"abc", V2(3*FontCharStep, FontCharHeight)},
		{"^1red^ftext", V2(7*FontCharStep, FontCharHeight)},
		{"a b", V2(3*FontCharStep, FontCharHeight)},
		{"5^^2", V2(2*FontCharStep, FontCharHeight)},
	}
	for _, tt := range tests {
		if got := measureText(a, tt.in); got != tt.want {
			t.Errorf("measureText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexDigit(t *testing.T) {
	for c, want := range map[byte]int{'0': 0, '9': 9, 'a': 10, 'f': 15, 'A': 10, 'F': 15} {
		if got, ok := hexDigit(c); !ok || got != want {
			t.Errorf("hexDigit(%q) = %d, %v", c, got, ok)
		}
	}
	for _, c := range []byte{'g', 'G', '^', ' ', '/'} {
		if _, ok := hexDigit(c); ok {
			t.Errorf("hexDigit(%q) should fail", c)
		}
	}
}

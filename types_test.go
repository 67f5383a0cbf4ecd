package gl2d_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/go-theft-auto/gl2d"
)

func TestARGB(t *testing.T) {
	c := gl2d.ARGB(0x80FF0000)
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("ARGB(0x80FF0000) = %v", c)
	}
	if c.A < 0.5 || c.A > 0.503 {
		t.Errorf("alpha = %v", c.A)
	}
	for _, v := range []uint32{0xFFFFFFFF, 0xFF000000, 0x80FF4040, 0x00000000, 0x12345678} {
		if got := gl2d.ARGB(v).ARGB(); got != v {
			t.Errorf("ARGB(%#08x).ARGB() = %#08x", v, got)
		}
	}
	if got := gl2d.RGBAf(2, -1, 0.5, 1).ARGB(); got != 0xFFFF0080 {
		t.Errorf("clamped pack = %#08x", got)
	}
}

func TestPaletteEndsWhite(t *testing.T) {
	if gl2d.MarkupPalette[15] != gl2d.White || gl2d.MarkupPalette[0] != gl2d.Black {
		t.Errorf("palette ends = %v, %v", gl2d.MarkupPalette[0], gl2d.MarkupPalette[15])
	}
}

func TestStatsLogValue(t *testing.T) {
	var sb strings.Builder
	l := slog.New(slog.NewTextHandler(&sb, nil))
	l.Info("frame", slog.Any("stats", gl2d.Stats{Vertices: 8, DrawCalls: 2, Lines: 1, Triangles: 2}))
	out := sb.String()
	for _, want := range []string{"stats.vertices=8", "stats.draw_calls=2", "stats.lines=1", "stats.tris=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestTopologyString(t *testing.T) {
	if gl2d.Triangles.String() != "triangles" || gl2d.Lines.String() != "lines" {
		t.Errorf("got %q, %q", gl2d.Triangles, gl2d.Lines)
	}
}

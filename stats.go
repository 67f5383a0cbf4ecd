package gl2d

import (
	"fmt"
	"log/slog"
)

// Stats describes what a single Render submitted.
type Stats struct {
	Vertices  int
	DrawCalls int
	Lines     int
	Triangles int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d vertices, %d draw calls: %d lines, %d tris",
		s.Vertices, s.DrawCalls, s.Lines, s.Triangles)
}

// add accounts for one submitted run.
func (s *Stats) add(t Topology, count int) {
	s.DrawCalls++
	s.Vertices += count
	switch t {
	case Lines:
		s.Lines += count / 2
	case Triangles:
		s.Triangles += count / 3
	}
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("vertices", s.Vertices),
		slog.Int("draw_calls", s.DrawCalls),
		slog.Int("lines", s.Lines),
		slog.Int("tris", s.Triangles),
	)
}

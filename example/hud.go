package main

import (
	"fmt"
	"time"

	"github.com/go-theft-auto/gl2d"
)

const graphSamples = 120

// hud accumulates frame timings and draws the overlay.
type hud struct {
	color gl2d.RGBA
	sys   *sysStats

	frames    [graphSamples]time.Duration
	plot      [graphSamples]float32
	bars      []gl2d.HistogramBar
	head      int
	fps       float64
	fpsFrames int
	fpsSince  time.Time
}

func newHUD(color gl2d.RGBA, sys *sysStats) *hud {
	return &hud{color: color, sys: sys}
}

// frame records one frame that took dt.
func (h *hud) frame(now time.Time, dt time.Duration) {
	h.frames[h.head] = dt
	h.head = (h.head + 1) % graphSamples

	if h.fpsSince.IsZero() {
		h.fpsSince = now
	}
	h.fpsFrames++
	if el := now.Sub(h.fpsSince); el >= time.Second {
		h.fps = float64(h.fpsFrames) / el.Seconds()
		h.fpsFrames = 0
		h.fpsSince = now
	}

	h.sys.update(now)
}

func (h *hud) draw(c *gl2d.Context2D) {
	const x, y = 8, 8
	const width = graphSamples*2 + 16
	lh := gl2d.FontLineHeight

	c.SetColorARGB(0xA0000000)
	c.RectangleI(x, y, x+width, y+6*lh+62, true)
	c.SetColorARGB(0xFF808080)
	c.RectangleI(x, y, x+width, y+6*lh+62, false)

	c.SetColor(h.color)
	ty := y + 4
	c.TextI(x+6, ty, "^eFPS^f %.1f", h.fps)
	ty += lh
	c.TextI(x+6, ty, "^eframe^f %.2f ms", float64(h.latest())/float64(time.Millisecond))
	ty += lh
	c.TextI(x+6, ty, "^bcpu^f %5.1f%%", h.sys.CPUPercent)
	ty += lh
	c.TextI(x+6, ty, "^bmem^f %.0f / %.0f MiB", mib(h.sys.MemUsed), mib(h.sys.MemTotal))
	ty += lh
	c.TextI(x+6, ty, "^brss^f %.1f MiB", mib(h.sys.ProcRSS))
	ty += lh
	st := c.LastStats()
	c.TextI(x+6, ty, "^8%d verts, %d calls", st.Vertices, st.DrawCalls)
	ty += lh + 4

	h.drawGraph(c, x+8, ty, 48)
	h.drawCores(c, x, y+6*lh+62+4, width)
}

// drawCores shows per-core CPU usage below the main panel.
func (h *hud) drawCores(c *gl2d.Context2D, x, y, width int) {
	n := len(h.sys.PerCPU)
	if n == 0 {
		return
	}
	h.bars = h.bars[:0]
	for i, pct := range h.sys.PerCPU {
		h.bars = append(h.bars, gl2d.HistogramBar{
			Label: fmt.Sprintf("cpu%d", i),
			Value: float32(pct),
			Color: coreColor(pct),
		})
	}
	size := gl2d.V2(float32(width), float32(n*(gl2d.FontCharHeight+2)+2))
	c.Histogram(gl2d.V2(float32(x), float32(y)), size, h.bars, 100, true)
}

func coreColor(pct float64) gl2d.RGBA {
	switch {
	case pct > 90:
		return gl2d.ARGB(0xFFFF4040)
	case pct > 60:
		return gl2d.ARGB(0xFFFFFF40)
	}
	return gl2d.ARGB(0xFF40FF40)
}

// drawGraph plots frame times in milliseconds, newest on the right.
func (h *hud) drawGraph(c *gl2d.Context2D, x, y, height int) {
	for i := range h.plot {
		h.plot[i] = float32(h.frames[(h.head+i)%graphSamples]) / float32(time.Millisecond)
	}
	c.Graph(gl2d.V2(float32(x), float32(y)), gl2d.V2(graphSamples*2, float32(height)),
		[]gl2d.GraphSeries{{Label: "frame ms", Values: h.plot[:], Color: gl2d.ARGB(0xFF40FF40)}},
		gl2d.WithGraphRange(0, 33), gl2d.WithGraphGridLines(2))
}

func (h *hud) latest() time.Duration {
	return h.frames[(h.head+graphSamples-1)%graphSamples]
}

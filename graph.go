package gl2d

import "fmt"

// GraphSeries is a single data series drawn by Graph.
type GraphSeries struct {
	Label  string
	Values []float32
	Color  RGBA
}

type graphOptions struct {
	yMin, yMax float32
	gridLines  int
	legend     bool
	background RGBA
	border     RGBA
}

// GraphOption configures Graph.
type GraphOption func(*graphOptions)

// WithGraphRange fixes the value range instead of fitting it to the data.
func WithGraphRange(yMin, yMax float32) GraphOption {
	return func(o *graphOptions) { o.yMin, o.yMax = yMin, yMax }
}

// WithGraphGridLines draws n evenly spaced horizontal grid lines.
func WithGraphGridLines(n int) GraphOption {
	return func(o *graphOptions) { o.gridLines = n }
}

// WithGraphLegend labels each series in the top-left corner.
func WithGraphLegend() GraphOption {
	return func(o *graphOptions) { o.legend = true }
}

// Graph draws a line graph of data in the box at pos with the given size.
// Series with fewer than two values are not plotted. The current color is
// restored afterwards.
//
// Usage:
//
//	ctx.Graph(gl2d.V2(8, 100), gl2d.V2(240, 48), []gl2d.GraphSeries{
//	    {Label: "frame ms", Values: frameTimes, Color: gl2d.ARGB(0xFF40FF40)},
//	}, gl2d.WithGraphRange(0, 33), gl2d.WithGraphGridLines(2))
func (c *Context2D) Graph(pos, size Vec2, data []GraphSeries, opts ...GraphOption) {
	if !c.initialized || len(data) == 0 {
		return
	}
	o := graphOptions{
		background: ARGB(0xA0202020),
		border:     ARGB(0xFF808080),
	}
	for _, opt := range opts {
		opt(&o)
	}

	saved := c.state.Color
	defer func() { c.state.Color = saved }()

	maxLen := 0
	yMin, yMax := o.yMin, o.yMax
	if yMin == yMax {
		seen := false
		for _, s := range data {
			for _, v := range s.Values {
				if !seen {
					yMin, yMax, seen = v, v, true
				}
				yMin = min(yMin, v)
				yMax = max(yMax, v)
			}
		}
		if !seen {
			yMin, yMax = 0, 1
		}
		padding := (yMax - yMin) * 0.1
		if padding <= 0 {
			padding = 1
		}
		yMin -= padding
		yMax += padding
	}
	for _, s := range data {
		maxLen = max(maxLen, len(s.Values))
	}

	end := pos.Add(size)
	c.state.Color = o.background
	c.Rectangle(pos, end, true)

	if o.gridLines > 0 {
		c.state.Color = ARGB(0x64505050)
		for i := 0; i <= o.gridLines; i++ {
			y := pos.Y + size.Y*float32(i)/float32(o.gridLines)
			c.LineF(pos.X, y, end.X, y)
		}
	}

	if maxLen >= 2 {
		yRange := yMax - yMin
		step := size.X / float32(maxLen-1)
		for _, s := range data {
			if len(s.Values) < 2 {
				continue
			}
			c.state.Color = s.Color
			for i := 1; i < len(s.Values); i++ {
				y0 := end.Y - (clampf(s.Values[i-1], yMin, yMax)-yMin)/yRange*size.Y
				y1 := end.Y - (clampf(s.Values[i], yMin, yMax)-yMin)/yRange*size.Y
				c.LineF(pos.X+float32(i-1)*step, y0, pos.X+float32(i)*step, y1)
			}
		}
	}

	lh := float32(c.atlas.LineHeight)
	if o.legend && len(data) > 1 {
		at := pos.Add(Vec2{4, 4})
		for _, s := range data {
			c.state.Color = s.Color
			c.Rectangle(at.Add(Vec2{0, 2}), at.Add(Vec2{8, 10}), true)
			c.state.Color = White
			c.Text(at.Add(Vec2{12, 0}), s.Label)
			at.Y += lh
		}
	}

	// Y-axis labels, right-aligned.
	c.state.Color = MarkupPalette[8]
	hi, lo := fmt.Sprintf("%.1f", yMax), fmt.Sprintf("%.1f", yMin)
	c.Text(Vec2{end.X - c.MeasureText(hi).X - 2, pos.Y + 2}, hi)
	c.Text(Vec2{end.X - c.MeasureText(lo).X - 2, end.Y - lh - 2}, lo)

	c.state.Color = o.border
	c.Rectangle(pos, end, false)
}

// HistogramBar is a single bar drawn by Histogram.
type HistogramBar struct {
	Label string
	Value float32
	Color RGBA // Zero uses MarkupPalette[9]
}

// Histogram draws labelled horizontal bars stacked top to bottom in the box
// at pos. Bars are scaled so that yMax fills the width left of the labels;
// yMax <= 0 fits the range to the largest value. When showValues is set
// each bar's value is printed after it.
func (c *Context2D) Histogram(pos, size Vec2, bars []HistogramBar, yMax float32, showValues bool) {
	if !c.initialized || len(bars) == 0 {
		return
	}
	saved := c.state.Color
	defer func() { c.state.Color = saved }()

	if yMax <= 0 {
		for _, b := range bars {
			yMax = max(yMax, b.Value)
		}
		if yMax == 0 {
			yMax = 1
		}
	}

	labelW := float32(0)
	for _, b := range bars {
		labelW = max(labelW, c.MeasureText(b.Label).X)
	}
	labelW += 6
	valueW := float32(0)
	if showValues {
		valueW = c.MeasureText("000.0").X + 4
	}

	end := pos.Add(size)
	c.state.Color = ARGB(0xA0202020)
	c.Rectangle(pos, end, true)

	const gap = 2
	n := float32(len(bars))
	barH := max((size.Y-gap*(n+1))/n, 1)
	trackW := max(size.X-labelW-valueW-gap, 0)
	lh := float32(c.atlas.CharH)

	for i, b := range bars {
		y := pos.Y + gap + float32(i)*(barH+gap)
		textY := y + (barH-lh)/2
		w := clampf(b.Value/yMax, 0, 1) * trackW

		c.state.Color = White
		c.Text(Vec2{pos.X + 2, textY}, b.Label)

		c.state.Color = b.Color
		if c.state.Color == Transparent {
			c.state.Color = MarkupPalette[9]
		}
		x0 := pos.X + labelW
		c.Rectangle(Vec2{x0, y}, Vec2{x0 + w, y + barH}, true)

		if showValues {
			c.state.Color = MarkupPalette[8]
			c.Textf(Vec2{x0 + trackW + gap, textY}, "%.1f", b.Value)
		}
	}

	c.state.Color = ARGB(0xFF808080)
	c.Rectangle(pos, end, false)
}

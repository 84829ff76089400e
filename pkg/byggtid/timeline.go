package byggtid

// Geometry is the per-frame overlay layout, derived from the frame's
// dimensions and progress fraction. It has no identity of its own and is
// recomputed on every render.
type Geometry struct {
	BarX   float64 // left edge of the static bar
	BarY   float64 // vertical center of the bar
	BarLen float64

	MarkerX float64
	Radius  float64

	LabelX      float64
	LabelY      float64 // text baseline
	LabelAnchor Anchor

	PanelTop float64 // backdrop panel spans full width from here to the bottom edge
}

// timelineGeometry lays out the bar, marker, backdrop panel and label for
// one frame. The label is clamped so it never extends past the bar: if
// centering it on the marker would overflow the bar's left edge it is
// start-anchored at the bar's start, if it would overflow the right edge it
// is end-anchored at the bar's end, and only otherwise is it centered. The
// branches are checked in that order, so a label wider than the whole bar
// still picks the left clamp.
func timelineGeometry(c *Config, width, height int64, progress float64, labelW, labelH float64) Geometry {
	w := float64(width)
	h := float64(height)
	rad := c.Timeline.MarkerRadius

	g := Geometry{
		BarLen: c.Timeline.BarLengthRatio * w,
		BarY:   c.Timeline.BarYRatio * h,
		Radius: rad,
	}
	g.BarX = (w - g.BarLen) / 2
	g.MarkerX = g.BarX + g.BarLen*progress
	g.LabelY = g.BarY - 1.25*rad

	// Panel: tall enough for the bar, the marker overhang, and the label.
	g.PanelTop = h - ((h - g.BarY) + 2.25*rad + 1.5*labelH)

	switch {
	case g.MarkerX-labelW/2 < g.BarX:
		g.LabelAnchor = AnchorStart
		g.LabelX = g.BarX
	case g.MarkerX+labelW/2 > g.BarX+g.BarLen:
		g.LabelAnchor = AnchorEnd
		g.LabelX = g.BarX + g.BarLen
	default:
		g.LabelAnchor = AnchorCenter
		g.LabelX = g.MarkerX
	}

	return g
}

// DrawTimeline burns the progress timeline into the surface for one
// evaluated frame. Later draws land on top of earlier ones: backdrop panel,
// static bar, traveled progress line, marker disc, then the date label.
func DrawTimeline(s Surface, c *Config, f *Frame) {
	label := f.Label()
	labelW, labelH := s.MeasureText(label)
	g := timelineGeometry(c, f.Width, f.Height, f.Progress, labelW, labelH)

	background := parseHexColor(c.Colors.Background)
	bar := parseHexColor(c.Colors.Bar)
	progress := parseHexColor(c.Colors.Progress)
	text := parseHexColor(c.Colors.Label)

	s.FillRect(0, g.PanelTop, float64(f.Width), float64(f.Height), background)
	s.Line(g.BarX, g.BarY, g.BarX+g.BarLen, g.BarY, c.Timeline.LineWidth, bar)
	s.Line(g.BarX, g.BarY, g.MarkerX, g.BarY, 2*g.Radius, progress)
	s.FillCircle(g.MarkerX, g.BarY, g.Radius, progress)
	s.Text(label, g.LabelX, g.LabelY, g.LabelAnchor, text)
}

package byggtid

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records draw calls and answers text measurements with fixed
// values, so geometry can be checked without rasterizing anything.
type fakeSurface struct {
	labelW float64
	labelH float64
	ops    []string
}

func (s *fakeSurface) FillRect(x0, y0, x1, y1 float64, _ color.Color) {
	s.ops = append(s.ops, "rect")
}

func (s *fakeSurface) Line(x0, y0, x1, y1, width float64, _ color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("line w=%g", width))
}

func (s *fakeSurface) FillCircle(x, y, r float64, _ color.Color) {
	s.ops = append(s.ops, "circle")
}

func (s *fakeSurface) Text(str string, x, y float64, anchor Anchor, _ color.Color) {
	s.ops = append(s.ops, fmt.Sprintf("text anchor=%d", anchor))
}

func (s *fakeSurface) MeasureText(string) (float64, float64) {
	return s.labelW, s.labelH
}

func TestGeometryMarkerEndpoints(t *testing.T) {
	c := DefaultConfig()

	g0 := timelineGeometry(c, 4032, 3024, 0, 300, 60)
	assert.Equal(t, g0.BarX, g0.MarkerX, "progress 0 sits at the bar start")

	g1 := timelineGeometry(c, 4032, 3024, 1, 300, 60)
	assert.Equal(t, g1.BarX+g1.BarLen, g1.MarkerX, "progress 1 sits at the bar end")

	gm := timelineGeometry(c, 4032, 3024, 0.5, 300, 60)
	assert.InDelta(t, 4032.0/2, gm.MarkerX, 1e-9, "midpoint progress lands at the bar's horizontal midpoint")
}

func TestGeometryBarPlacement(t *testing.T) {
	c := DefaultConfig()
	g := timelineGeometry(c, 4032, 3024, 0.25, 300, 60)

	assert.InDelta(t, 0.95*4032, g.BarLen, 1e-9)
	assert.InDelta(t, (4032-0.95*4032)/2, g.BarX, 1e-9)
	assert.InDelta(t, 0.98*3024, g.BarY, 1e-9)
	assert.Less(t, g.PanelTop, g.BarY-g.Radius, "panel covers the marker overhang")
}

// labelExtent returns the label's horizontal min and max for a geometry.
func labelExtent(g Geometry, labelW float64) (float64, float64) {
	switch g.LabelAnchor {
	case AnchorStart:
		return g.LabelX, g.LabelX + labelW
	case AnchorEnd:
		return g.LabelX - labelW, g.LabelX
	default:
		return g.LabelX - labelW/2, g.LabelX + labelW/2
	}
}

func TestLabelClampBranches(t *testing.T) {
	c := DefaultConfig()

	tests := []struct {
		name     string
		progress float64
		anchor   Anchor
	}{
		{"first frame clamps left", 0, AnchorStart},
		{"near start clamps left", 0.01, AnchorStart},
		{"middle centers", 0.5, AnchorCenter},
		{"near end clamps right", 0.99, AnchorEnd},
		{"last frame clamps right", 1, AnchorEnd},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := timelineGeometry(c, 4032, 3024, tc.progress, 400, 60)
			assert.Equal(t, tc.anchor, g.LabelAnchor)
		})
	}
}

func TestLabelStaysWithinBar(t *testing.T) {
	c := DefaultConfig()
	labelW := 400.0

	for _, progress := range []float64{0, 0.01, 0.05, 0.1, 0.5, 0.9, 0.95, 0.99, 1} {
		g := timelineGeometry(c, 4032, 3024, progress, labelW, 60)
		lo, hi := labelExtent(g, labelW)
		assert.GreaterOrEqual(t, lo, g.BarX, "progress %g", progress)
		assert.LessOrEqual(t, hi, g.BarX+g.BarLen, "progress %g", progress)
	}
}

func TestLabelWiderThanBar(t *testing.T) {
	c := DefaultConfig()

	// A 120px label on a 100px image: wider than the whole 95px bar. A
	// clamp branch must still win over centering; the left check runs
	// first, so only a marker far enough right falls through to the right
	// clamp.
	g := timelineGeometry(c, 100, 100, 0, 120, 20)
	assert.Equal(t, AnchorStart, g.LabelAnchor)

	g = timelineGeometry(c, 100, 100, 1, 120, 20)
	assert.Equal(t, AnchorEnd, g.LabelAnchor)
}

func TestDrawTimelineOrder(t *testing.T) {
	c := DefaultConfig()
	f := &Frame{Width: 4032, Height: 3024, Progress: 0.5}

	s := &fakeSurface{labelW: 300, labelH: 60}
	DrawTimeline(s, c, f)

	require.Equal(t, []string{
		"rect",      // backdrop panel
		"line w=10", // static bar
		"line w=30", // traveled progress line, 2x marker radius
		"circle",    // marker disc
		"text anchor=0",
	}, s.ops)
}

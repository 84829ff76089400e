package byggtid

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Anchor selects the horizontal anchor mode for text drawing.
type Anchor int

const (
	// AnchorCenter centers the text on x.
	AnchorCenter Anchor = iota
	// AnchorStart places the text's left edge at x.
	AnchorStart
	// AnchorEnd places the text's right edge at x.
	AnchorEnd
)

// Surface is the drawing target for timeline overlays. The vertical text
// anchor is always the baseline at y.
type Surface interface {
	FillRect(x0, y0, x1, y1 float64, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	Text(s string, x, y float64, anchor Anchor, c color.Color)
	MeasureText(s string) (w, h float64)
}

// Canvas is a Surface backed by a gg raster context.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas wraps an image in a drawable surface with a font face sized to
// fontPercent of the image diagonal.
func NewCanvas(img image.Image, fontPercent float64) (*Canvas, error) {
	dc := gg.NewContextForImage(img)

	b := img.Bounds()
	diag := math.Sqrt(float64(b.Dx()*b.Dx() + b.Dy()*b.Dy()))
	size := fontPercent * diag / 100

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	dc.SetFontFace(face)
	return &Canvas{dc: dc}, nil
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	c.dc.Fill()
}

func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

func (c *Canvas) FillCircle(x, y, r float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func (c *Canvas) Text(s string, x, y float64, anchor Anchor, col color.Color) {
	ax := 0.5
	switch anchor {
	case AnchorStart:
		ax = 0
	case AnchorEnd:
		ax = 1
	}

	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, 0)
}

func (c *Canvas) MeasureText(s string) (float64, float64) {
	return c.dc.MeasureString(s)
}

// parseHexColor parses a #rrggbb string, falling back to opaque black.
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Black
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

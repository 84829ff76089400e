package byggtid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, parseHexColor("#ff0000"))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, parseHexColor("#808080"))
	assert.Equal(t, color.Black, parseHexColor("red"), "unparseable falls back to black")
}

func TestCanvasMeasureAndDraw(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	cv, err := NewCanvas(img, 1.5)
	require.NoError(t, err)

	w, h := cv.MeasureText("31-Dec-2021")
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)

	// Exercise every primitive once against the raster backend.
	cv.FillRect(0, 250, 400, 300, color.Black)
	cv.Line(10, 294, 390, 294, 10, color.Gray{Y: 128})
	cv.Line(10, 294, 200, 294, 30, color.RGBA{R: 255, A: 255})
	cv.FillCircle(200, 294, 15, color.RGBA{R: 255, A: 255})
	cv.Text("31-Dec-2021", 200, 275, AnchorCenter, color.White)

	out := cv.Image()
	assert.Equal(t, 400, out.Bounds().Dx())
	assert.Equal(t, 300, out.Bounds().Dy())
}

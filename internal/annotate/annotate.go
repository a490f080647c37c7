package annotate

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/labelpix/labelpix/internal/detect"
)

const (
	// strokeWidth is the box outline thickness in pixels, drawn inward from
	// the box edges.
	strokeWidth = 3

	// labelPad is the padding between label text and its background edges.
	labelPad = 4
)

// DrawResult renders every instance of every label in res onto img, in
// result order. Later draws may overlap earlier ones; overlap is accepted,
// not resolved.
func DrawResult(img *image.NRGBA, res detect.Result, style Style) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	for _, label := range res.Labels {
		for _, inst := range label.Instances {
			box := ToPixelBox(inst.Box, width, height)
			DrawDetection(img, box, label.Annotation(), style)
		}
	}
}

// DrawDetection draws one bounding rectangle and its label readout.
//
// The label background is sized to the rendered text extent plus padding and
// anchored so its bottom edge touches the box's top edge, clamped to not go
// above pixel row 0. Right and bottom edges are not clamped; overflow past
// the canvas is clipped pixel by pixel.
func DrawDetection(img *image.NRGBA, box PixelBox, text string, style Style) {
	left := int(math.Round(box.Left))
	top := int(math.Round(box.Top))
	right := int(math.Round(box.Right))
	bottom := int(math.Round(box.Bottom))

	drawOutline(img, left, top, right, bottom, style.Outline)
	drawLabel(img, left, top, text, style)
}

// drawOutline strokes a hollow rectangle, thickening inward.
func drawOutline(img *image.NRGBA, left, top, right, bottom int, c color.NRGBA) {
	for t := 0; t < strokeWidth; t++ {
		x1, y1 := left+t, top+t
		x2, y2 := right-t, bottom-t
		for x := x1; x <= x2; x++ {
			setPixel(img, x, y1, c)
			setPixel(img, x, y2, c)
		}
		for y := y1; y <= y2; y++ {
			setPixel(img, x1, y, c)
			setPixel(img, x2, y, c)
		}
	}
}

// drawLabel paints the padded background rectangle, then the text on top.
func drawLabel(img *image.NRGBA, left, top int, text string, style Style) {
	face := labelFace()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(style.Outline),
		Face: face,
	}

	metrics := face.Metrics()
	textWidth := drawer.MeasureString(text).Ceil()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	bgLeft := left
	bgTop := top - textHeight - 2*labelPad
	if bgTop < 0 {
		bgTop = 0
	}
	bgRight := bgLeft + textWidth + 2*labelPad
	bgBottom := bgTop + textHeight + 2*labelPad

	fillRect(img, bgLeft, bgTop, bgRight, bgBottom, style.Background)

	drawer.Dot = fixed.P(bgLeft+labelPad, bgTop+labelPad+metrics.Ascent.Ceil())
	drawer.DrawString(text)
}

// fillRect fills [x1,x2) x [y1,y2), skipping pixels outside the canvas.
func fillRect(img *image.NRGBA, x1, y1, x2, y2 int, c color.NRGBA) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			setPixel(img, x, y, c)
		}
	}
}

func setPixel(img *image.NRGBA, x, y int, c color.NRGBA) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.SetNRGBA(x, y, c)
	}
}

package annotate

import "github.com/labelpix/labelpix/internal/detect"

// PixelBox is an absolute pixel-space rectangle derived from a normalized
// bounding box and a concrete image size. It is computed on demand and never
// persisted.
type PixelBox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// ToPixelBox scales a normalized bounding box to absolute pixel coordinates
// for an image of the given size.
//
// This is pure arithmetic with no clamping: a provider returning fractions
// outside [0,1] yields a box partially or fully off-canvas, passed through
// as-is rather than corrected here.
func ToPixelBox(box detect.BoundingBox, width, height int) PixelBox {
	left := float64(width) * box.Left
	top := float64(height) * box.Top
	return PixelBox{
		Left:   left,
		Top:    top,
		Right:  left + float64(width)*box.Width,
		Bottom: top + float64(height)*box.Height,
	}
}

package annotate

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Style controls the annotation colors. Label text is drawn in the outline
// color on top of the background fill.
type Style struct {
	Outline    color.NRGBA // box outline and label text
	Background color.NRGBA // label background fill
}

// DefaultStyle is red boxes and red text on white label backgrounds.
func DefaultStyle() Style {
	return Style{
		Outline:    color.NRGBA{R: 255, A: 255},
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// StyleFromHex builds a style around an outline color given as "#RRGGBB".
//
// Light outline colors would be unreadable as text on the default white
// label background, so the background switches to near-black above a
// lightness threshold. Unparseable input falls back to DefaultStyle.
func StyleFromHex(outlineHex string) Style {
	c, err := colorful.Hex(outlineHex)
	if err != nil {
		return DefaultStyle()
	}

	s := DefaultStyle()
	r, g, b := c.RGB255()
	s.Outline = color.NRGBA{R: r, G: g, B: b, A: 255}

	if _, _, l := c.Hsl(); l > 0.7 {
		s.Background = color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	}
	return s
}

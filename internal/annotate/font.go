package annotate

import (
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSize is the point size for label text when a scalable face is available.
const fontSize = 16

// systemFonts are tried in order before falling back to the embedded faces.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

var (
	faceOnce   sync.Once
	activeFace font.Face
)

// labelFace returns the face used for label readouts.
//
// The attempt list is evaluated once for the process lifetime: a system font,
// then the embedded Go Regular, then a fixed bitmap face. The final fallback
// cannot fail, so callers always receive a usable face and rendering never
// fails a request over fonts.
func labelFace() font.Face {
	faceOnce.Do(func() {
		for _, path := range systemFonts {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if face, err := parseFace(data); err == nil {
				activeFace = face
				return
			}
		}
		if face, err := parseFace(goregular.TTF); err == nil {
			activeFace = face
			return
		}
		activeFace = basicfont.Face7x13
	})
	return activeFace
}

func parseFace(ttf []byte) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

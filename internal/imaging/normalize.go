package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
)

// DecodeError reports input bytes that could not be decoded as an image.
// It marks the failure as a user-input fault rather than an environment one.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Normalize decodes raw upload bytes into the canonical annotation surface.
//
// The decoded image has its EXIF orientation applied, any transparency is
// flattened over white, and the result is always an opaque *image.NRGBA.
// Normalizing an already-opaque image is idempotent: re-running the output
// through Normalize yields pixel-identical data.
//
// Returns:
//   - *image.NRGBA: The normalized image, owned by the caller.
//   - error: *DecodeError if the bytes are not a supported image.
func Normalize(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return Flatten(img), nil
}

// Flatten converts img to an opaque NRGBA image, compositing any transparent
// pixels over a white background. Fully opaque input is copied unchanged.
// The input image is never modified.
func Flatten(img image.Image) *image.NRGBA {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return imaging.Clone(img)
	}

	// Clone first so both operands share a zero-based coordinate space.
	src := imaging.Clone(img)
	bg := imaging.New(src.Bounds().Dx(), src.Bounds().Dy(), color.White)
	return imaging.Clone(blend.Normal(bg, src))
}

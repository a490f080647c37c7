package pipeline

import (
	"context"

	"github.com/labelpix/labelpix/internal/annotate"
	"github.com/labelpix/labelpix/internal/detect"
	"github.com/labelpix/labelpix/internal/imaging"
	"github.com/labelpix/labelpix/internal/storage"
)

// annotatedPrefix distinguishes the annotated artifact from the original.
const annotatedPrefix = "labeled_"

// Outcome is the successful result of one processed upload. The two names
// are the artifact identifiers; files of those names exist in the store.
type Outcome struct {
	OriginalName  string        `json:"original"`
	AnnotatedName string        `json:"annotated"`
	Detections    detect.Result `json:"detections"`
}

// Pipeline wires the annotation stages together around an injected detection
// provider and artifact store. It is stateless per request and safe for
// concurrent use.
type Pipeline struct {
	provider detect.Provider
	store    *storage.Store
	style    annotate.Style
}

// New builds a Pipeline. The provider choice (remote vs. synthetic) is made
// once at startup by the caller, not per request.
func New(provider detect.Provider, store *storage.Store, style annotate.Style) *Pipeline {
	return &Pipeline{provider: provider, store: store, style: style}
}

// Process runs one upload end to end and returns the artifact identifiers
// plus the full detection result.
//
// Stages run strictly in order: normalize, persist original, detect, render,
// persist annotated. The first failure terminates the request with the
// originating component's error; nothing is retried or rolled back. The
// original is persisted before detection runs, so a detection failure leaves
// it on disk with no annotated counterpart.
func (p *Pipeline) Process(ctx context.Context, uploadBytes []byte, originalFilename string) (*Outcome, error) {
	img, err := imaging.Normalize(uploadBytes)
	if err != nil {
		return nil, err
	}

	originalName := storage.UniqueName(originalFilename, "")
	annotatedName := storage.UniqueName(originalFilename, annotatedPrefix)

	if err := p.store.Save(img, originalName); err != nil {
		return nil, err
	}

	// The detector sees the normalized rendition, not the raw upload, so
	// returned box fractions line up with the orientation-corrected pixels.
	detectBytes, err := imaging.EncodeJPEG(img)
	if err != nil {
		return nil, err
	}

	result, err := p.provider.Detect(ctx, detectBytes)
	if err != nil {
		return nil, err
	}

	annotate.DrawResult(img, result, p.style)

	if err := p.store.Save(img, annotatedName); err != nil {
		return nil, err
	}

	return &Outcome{
		OriginalName:  originalName,
		AnnotatedName: annotatedName,
		Detections:    result,
	}, nil
}

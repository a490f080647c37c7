package detect

import (
	"context"
	"fmt"
)

// BoundingBox locates one object occurrence as fractions of the image size.
//
// All four values are normally within [0,1], but out-of-range values from a
// provider are passed through unclamped; rendering tolerates boxes that fall
// partially or fully outside the canvas.
type BoundingBox struct {
	Left   float64 `json:"left"`   // Fraction of image width to the box's left edge
	Top    float64 `json:"top"`    // Fraction of image height to the box's top edge
	Width  float64 `json:"width"`  // Box width as a fraction of image width
	Height float64 `json:"height"` // Box height as a fraction of image height
}

// Instance is one located occurrence of a label.
type Instance struct {
	Box        BoundingBox `json:"bounding_box"`
	Confidence float64     `json:"confidence"` // 0-100
}

// Label is one detected label with zero or more located instances.
// A label without instances is part of the result but draws nothing.
type Label struct {
	Name       string     `json:"name"`
	Confidence float64    `json:"confidence"` // 0-100
	Instances  []Instance `json:"instances,omitempty"`
}

// Annotation is the text burned into the annotated image for this label,
// e.g. "Person (98.3%)".
func (l Label) Annotation() string {
	return fmt.Sprintf("%s (%.1f%%)", l.Name, l.Confidence)
}

// Result is the ordered set of labels produced for one image. It is created
// atomically per request: either fully populated or the request failed first.
type Result struct {
	Labels []Label `json:"labels"`
}

// Provider produces a detection result for encoded image bytes.
//
// Implementations must be safe for concurrent use; the pipeline shares one
// provider across requests. The context bounds the remote variant's network
// call; the synthetic variant ignores it.
type Provider interface {
	Detect(ctx context.Context, imageBytes []byte) (Result, error)
}

// ServiceError reports a failure of the upstream labeling service. Message
// carries the upstream's human-readable diagnostic unchanged.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("detection service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Err }

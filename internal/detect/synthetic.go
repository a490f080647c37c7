package detect

import "context"

// SyntheticProvider is a deterministic stand-in for the remote service, used
// when the pipeline must run without network dependency (tests, offline
// demos). It is a pure function of nothing: the input image is ignored and
// Detect never fails.
type SyntheticProvider struct{}

// Detect returns exactly one "SampleObject" label whose single instance
// occupies the centered half of the image.
func (SyntheticProvider) Detect(_ context.Context, _ []byte) (Result, error) {
	return Result{
		Labels: []Label{
			{
				Name:       "SampleObject",
				Confidence: 99.1,
				Instances: []Instance{
					{
						Box:        BoundingBox{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5},
						Confidence: 99.1,
					},
				},
			},
		},
	}, nil
}

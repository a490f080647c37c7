package detect

import (
	"context"
	"testing"
)

func TestSyntheticProvider_Fixture(t *testing.T) {
	inputs := map[string][]byte{
		"nil bytes":   nil,
		"empty bytes": {},
		"non-image":   []byte("content is ignored"),
	}

	p := SyntheticProvider{}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			res, err := p.Detect(context.Background(), input)
			if err != nil {
				t.Fatalf("Detect failed: %v", err)
			}

			if len(res.Labels) != 1 {
				t.Fatalf("labels: got %d, want 1", len(res.Labels))
			}
			label := res.Labels[0]
			if label.Name != "SampleObject" {
				t.Errorf("name: got %q, want %q", label.Name, "SampleObject")
			}
			if label.Confidence != 99.1 {
				t.Errorf("confidence: got %v, want 99.1", label.Confidence)
			}

			if len(label.Instances) != 1 {
				t.Fatalf("instances: got %d, want 1", len(label.Instances))
			}
			inst := label.Instances[0]
			want := BoundingBox{Left: 0.25, Top: 0.25, Width: 0.5, Height: 0.5}
			if inst.Box != want {
				t.Errorf("bounding box: got %+v, want %+v", inst.Box, want)
			}
			if inst.Confidence != 99.1 {
				t.Errorf("instance confidence: got %v, want 99.1", inst.Confidence)
			}
		})
	}
}

func TestLabel_Annotation(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		want       string
	}{
		{"SampleObject", 99.1, "SampleObject (99.1%)"},
		{"Dog", 70, "Dog (70.0%)"},
		{"Street Sign", 88.26, "Street Sign (88.3%)"},
	}

	for _, tt := range tests {
		label := Label{Name: tt.name, Confidence: tt.confidence}
		if got := label.Annotation(); got != tt.want {
			t.Errorf("Annotation(%q, %v): got %q, want %q", tt.name, tt.confidence, got, tt.want)
		}
	}
}

package detect

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"
)

func closeTo(got, want float64) bool {
	return math.Abs(got-want) < 1e-5
}

func TestResultFromLabels(t *testing.T) {
	labels := []types.Label{
		{
			Name:       aws.String("Person"),
			Confidence: aws.Float32(98.7),
			Instances: []types.Instance{
				{
					BoundingBox: &types.BoundingBox{
						Left:   aws.Float32(0.1),
						Top:    aws.Float32(0.2),
						Width:  aws.Float32(0.3),
						Height: aws.Float32(0.4),
					},
					Confidence: aws.Float32(97.5),
				},
				// No bounding box: carries nothing to draw.
				{Confidence: aws.Float32(90)},
			},
		},
		// Scene-level label without instances stays in the result.
		{Name: aws.String("Outdoors"), Confidence: aws.Float32(88.1)},
	}

	res := resultFromLabels(labels)

	if len(res.Labels) != 2 {
		t.Fatalf("labels: got %d, want 2", len(res.Labels))
	}

	person := res.Labels[0]
	if person.Name != "Person" {
		t.Errorf("name: got %q, want Person", person.Name)
	}
	if !closeTo(person.Confidence, 98.7) {
		t.Errorf("confidence: got %v, want ~98.7", person.Confidence)
	}
	if len(person.Instances) != 1 {
		t.Fatalf("instances after nil-box skip: got %d, want 1", len(person.Instances))
	}
	box := person.Instances[0].Box
	for _, check := range []struct {
		field string
		got   float64
		want  float64
	}{
		{"left", box.Left, 0.1},
		{"top", box.Top, 0.2},
		{"width", box.Width, 0.3},
		{"height", box.Height, 0.4},
	} {
		if !closeTo(check.got, check.want) {
			t.Errorf("box %s: got %v, want ~%v", check.field, check.got, check.want)
		}
	}

	outdoors := res.Labels[1]
	if outdoors.Name != "Outdoors" {
		t.Errorf("name: got %q, want Outdoors", outdoors.Name)
	}
	if len(outdoors.Instances) != 0 {
		t.Errorf("instances: got %d, want 0", len(outdoors.Instances))
	}
}

func TestResultFromLabels_Empty(t *testing.T) {
	res := resultFromLabels(nil)
	if len(res.Labels) != 0 {
		t.Errorf("labels: got %d, want 0", len(res.Labels))
	}
}

func TestServiceMessage(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ThrottlingException", Message: "Rate exceeded"}
	wrapped := fmt.Errorf("operation error Rekognition: DetectLabels: %w", apiErr)
	if got := serviceMessage(wrapped); got != "Rate exceeded" {
		t.Errorf("API error message: got %q, want %q", got, "Rate exceeded")
	}

	plain := errors.New("dial tcp: i/o timeout")
	if got := serviceMessage(plain); got != plain.Error() {
		t.Errorf("transport error message: got %q, want %q", got, plain.Error())
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ServiceError{Message: "boom", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ServiceError should unwrap to its cause")
	}
}

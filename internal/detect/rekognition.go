package detect

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"
)

// DetectLabels request parameters. Labels below the confidence floor are
// filtered by the service, not locally.
const (
	maxLabels     = 10
	minConfidence = 70
)

// RekognitionProvider calls AWS Rekognition's DetectLabels API and maps the
// native response into a Result, structurally unchanged.
type RekognitionProvider struct {
	client *rekognition.Client
}

// NewRekognitionProvider builds a provider for the given AWS region using the
// default credential chain. Timeouts are the caller's concern: impose one via
// the context passed to Detect or the transport.
func NewRekognitionProvider(ctx context.Context, region string) (*RekognitionProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &RekognitionProvider{client: rekognition.NewFromConfig(cfg)}, nil
}

// Detect submits imageBytes to Rekognition and returns the mapped result.
//
// Any transport or service-side failure (throttling, auth, malformed
// response) surfaces as *ServiceError carrying the upstream message. No
// retry is performed here.
func (p *RekognitionProvider) Detect(ctx context.Context, imageBytes []byte) (Result, error) {
	out, err := p.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: imageBytes},
		MaxLabels:     aws.Int32(maxLabels),
		MinConfidence: aws.Float32(minConfidence),
	})
	if err != nil {
		return Result{}, &ServiceError{Message: serviceMessage(err), Err: err}
	}
	return resultFromLabels(out.Labels), nil
}

// serviceMessage extracts the service's own diagnostic when the failure is an
// API error, falling back to the transport error text.
func serviceMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}

// resultFromLabels maps Rekognition labels into the uniform result shape.
// Instances without a bounding box carry nothing to draw and are skipped,
// matching how the service's optional geometry is treated downstream.
func resultFromLabels(labels []types.Label) Result {
	res := Result{Labels: make([]Label, 0, len(labels))}
	for _, l := range labels {
		label := Label{
			Name:       aws.ToString(l.Name),
			Confidence: float64(aws.ToFloat32(l.Confidence)),
		}
		for _, inst := range l.Instances {
			if inst.BoundingBox == nil {
				continue
			}
			label.Instances = append(label.Instances, Instance{
				Box: BoundingBox{
					Left:   float64(aws.ToFloat32(inst.BoundingBox.Left)),
					Top:    float64(aws.ToFloat32(inst.BoundingBox.Top)),
					Width:  float64(aws.ToFloat32(inst.BoundingBox.Width)),
					Height: float64(aws.ToFloat32(inst.BoundingBox.Height)),
				},
				Confidence: float64(aws.ToFloat32(inst.Confidence)),
			})
		}
		res.Labels = append(res.Labels, label)
	}
	return res
}

package annotate

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/aws/aws-sdk-go/service/rekognition/rekognitioniface"
)

// Rekognition annotates images with AWS Rekognition label detection. The
// strongest label becomes the description; all label names, in confidence
// order, become the tags.
type Rekognition struct {
	client        rekognitioniface.RekognitionAPI
	maxLabels     int64
	minConfidence float64
}

// NewRekognition builds an annotator from the ambient AWS configuration
// (shared config files and environment).
func NewRekognition() (*Rekognition, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("annotate: session: %w", err)
	}
	return &Rekognition{
		client:        rekognition.New(sess),
		maxLabels:     10,
		minConfidence: 55,
	}, nil
}

// Annotate implements Annotator.
func (r *Rekognition) Annotate(ctx context.Context, data []byte, mediaType string) (Annotation, error) {
	switch mediaType {
	case "image/png", "image/jpeg":
	default:
		return Annotation{}, fmt.Errorf("annotate: unsupported media type %q", mediaType)
	}

	out, err := r.client.DetectLabelsWithContext(ctx, &rekognition.DetectLabelsInput{
		Image:         &rekognition.Image{Bytes: data},
		MaxLabels:     aws.Int64(r.maxLabels),
		MinConfidence: aws.Float64(r.minConfidence),
	})
	if err != nil {
		return Annotation{}, fmt.Errorf("annotate: detect labels: %w", err)
	}

	var ann Annotation
	for _, l := range out.Labels {
		if l == nil || l.Name == nil {
			continue
		}
		ann.Tags = append(ann.Tags, *l.Name)
	}
	if len(ann.Tags) > 0 {
		ann.Description = ann.Tags[0]
	}
	return ann, nil
}

// Package annotate labels converted images through an external vision
// service. Annotation is strictly optional: callers treat every failure as
// non-fatal and keep the item successful with empty annotation data.
package annotate

import "context"

// Annotation is a short description plus keyword tags for one image.
type Annotation struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Annotator describes the external annotation collaborator. data holds the
// encoded image bytes, mediaType its MIME type.
type Annotator interface {
	Annotate(ctx context.Context, data []byte, mediaType string) (Annotation, error)
}

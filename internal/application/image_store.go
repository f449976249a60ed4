package application

import (
	"context"
	"io"
)

// ImageStore stores an image blob and returns an opaque reference to it.
// The workflow treats the reference as a plain string; failures surface as
// rejected outcomes, never as partial commits.
type ImageStore interface {
	Store(ctx context.Context, r io.Reader, filename, contentType string) (string, error)
}

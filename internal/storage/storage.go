package storage

import (
	"context"
	"io"
)

// ImageStore saves uploaded pet images and returns the URL the stored file
// will be reachable at.
type ImageStore interface {
	Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

package storage

import (
	"context"
	"io"
	"time"
)

// Object describes a stored upload, as seen by the cleanup job.
type Object struct {
	Name    string
	Updated time.Time
}

// Uploader persists uploaded files and hands back a public URL.
type Uploader interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
	List(ctx context.Context) ([]Object, error)
	Remove(ctx context.Context, name string) error
}

package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCS stores uploads as public objects in a Cloud Storage bucket, under a
// fixed folder prefix.
type GCS struct {
	client *storage.Client
	bucket string
	folder string
}

func NewGCS(ctx context.Context, bucket, folder string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		return nil, fmt.Errorf("gcs bucket %s: %w", bucket, err)
	}
	return &GCS{client: client, bucket: bucket, folder: folder}, nil
}

func (g *GCS) object(name string) string {
	return g.folder + "/" + name
}

func (g *GCS) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	w := g.client.Bucket(g.bucket).Object(g.object(name)).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		return "", fmt.Errorf("copy to gcs: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gcs writer: %w", err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, g.object(name)), nil
}

func (g *GCS) List(ctx context.Context) ([]Object, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: g.folder + "/"})
	objects := []Object{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, Object{
			Name:    attrs.Name[len(g.folder)+1:],
			Updated: attrs.Updated,
		})
	}
	return objects, nil
}

func (g *GCS) Remove(ctx context.Context, name string) error {
	return g.client.Bucket(g.bucket).Object(g.object(name)).Delete(ctx)
}

func (g *GCS) Close() error {
	return g.client.Close()
}

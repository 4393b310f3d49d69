package port

import "context"

// UploadObject is a file handed to ImageStorage.
type UploadObject struct {
	Prefix      string
	FileName    string
	ContentType string
	Data        []byte
}

// ImageStorage stores campaign images and returns their public URL.
type ImageStorage interface {
	Upload(ctx context.Context, obj UploadObject) (string, error)
}

// Limiter decides whether an action identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

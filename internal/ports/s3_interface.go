package ports

import (
	"context"
	"time"
)

// S3Storage : document object storage
type S3Storage interface {
	PutObject(ctx context.Context, key string, contentType string, data []byte) error
	GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error)
	DeleteObject(ctx context.Context, key string) error
}

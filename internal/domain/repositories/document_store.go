package repositories

import (
	"context"
	"time"
)

// DocumentStore abstracts the object store holding KYC documents.
type DocumentStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	// Delete removes an object; used to clean up after a failed document
	// insert so uploads are not orphaned.
	Delete(ctx context.Context, key string) error
	// PresignURL returns a time-limited download URL for an object key.
	PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

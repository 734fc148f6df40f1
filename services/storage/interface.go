package storage

import (
	"context"
	"errors"
	"time"
)

// ErrObjectExists is returned by a non-overwriting upload when the name is taken.
var ErrObjectExists = errors.New("storage: object already exists")

// StorageService defines the object storage operations the catalog needs.
type StorageService interface {
	// Upload writes data under name. With overwrite false an existing object is an error.
	Upload(ctx context.Context, name string, data []byte, contentType string, overwrite bool) error
	// SignedURL returns a read URL for name that stays valid for ttl.
	SignedURL(ctx context.Context, name string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, name string) error
}

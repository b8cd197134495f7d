package storage

import (
	"context"
)

// ByteStore is the narrow object-storage contract the pipeline depends on.
// Whether the backing store is local disk or a remote blob store is not the
// pipeline's concern.
type ByteStore interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

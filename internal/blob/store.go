package blob

import "context"

// Store abstracts the object store holding all per-user state.
// Paths are "{user_id}/{filename}", except the global schedule blob.
// Implementations can be cloud-backed or in-memory.
// Upload with overwrite=false must fail if the blob already exists.
type Store interface {
	Upload(ctx context.Context, path string, data []byte, overwrite bool) error
	Download(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
	ContainerExists(ctx context.Context) (bool, error)
}

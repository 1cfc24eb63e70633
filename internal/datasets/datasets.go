// Package datasets provides read-only access to the geographic data files
// served under /data. Keys are slash-separated paths relative to the data
// directory and can never resolve outside it.
package datasets

import (
	"context"
	"io"
	"time"

	"github.com/JaimeStill/climate-atlas/pkg/lifecycle"
)

// Dataset describes a regular file in the data directory.
type Dataset struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// File is an open dataset. Callers must Close it.
type File struct {
	Dataset
	io.ReadSeekCloser
}

// System defines read access to the data directory.
type System interface {
	// Open returns the file stored at key.
	// Returns ErrInvalidKey if the key is empty, absolute, or escapes the directory.
	// Returns ErrNotFound if the key does not exist or names a directory.
	Open(ctx context.Context, key string) (*File, error)

	// List returns every regular file under the directory in lexical key order.
	// Dot files are skipped. A missing directory yields an empty list.
	List(ctx context.Context) ([]Dataset, error)

	// BasePath returns the absolute data directory.
	BasePath() string

	// Start registers lifecycle hooks with the coordinator.
	// The startup hook warns when the directory is missing.
	Start(lc *lifecycle.Coordinator) error
}

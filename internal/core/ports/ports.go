package ports

import (
	"context"

	"github.com/kamal-hamza/msgx/internal/core/domain"
)

// Container is an opened compound file: a directory tree plus stream access
type Container interface {
	// Nodes returns every directory entry in traversal order
	Nodes() []domain.DirectoryNode

	// ReadStream returns the full byte content of the stream behind a node
	ReadStream(id uint32) ([]byte, error)

	// Close releases the underlying file
	Close() error
}

// ContainerOpener defines the port for opening .msg files
type ContainerOpener interface {
	// Open parses the file at path as a compound file
	Open(ctx context.Context, path string) (Container, error)
}

// AttachmentWriter defines the port for persisting extracted payloads
type AttachmentWriter interface {
	// Write stores data as dir/name and returns the path actually written.
	// Without overwrite an existing file is never replaced; a numeric
	// suffix is chosen instead.
	Write(ctx context.Context, dir, name string, data []byte, overwrite bool) (string, error)

	// EnsureDir creates dir (and parents) if it does not exist
	EnsureDir(dir string) error
}

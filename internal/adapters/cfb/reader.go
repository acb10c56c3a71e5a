package cfb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/richardlehane/mscfb"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

const (
	// RootID is the synthetic id of the root storage
	RootID uint32 = 0

	rootName   = "Root Entry"
	lockRetry  = 50 * time.Millisecond
	pathJoiner = "\x00"
)

// Opener opens compound files from disk
type Opener struct {
	lockTimeout time.Duration
}

// NewOpener creates an opener that waits up to lockTimeout for a shared
// lock on the input file. A zero timeout makes a single attempt.
func NewOpener(lockTimeout time.Duration) *Opener {
	return &Opener{lockTimeout: lockTimeout}
}

// Ensure it implements the interface
var _ ports.ContainerOpener = (*Opener)(nil)

// Open parses the compound file at path and returns its directory
func (o *Opener) Open(ctx context.Context, path string) (ports.Container, error) {
	lock, err := o.lock(ctx, path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		lock.Unlock()
		return nil, err
	}

	reader, err := mscfb.New(file)
	if err != nil {
		file.Close()
		lock.Unlock()
		return nil, fmt.Errorf("%w: %v", domain.ErrNotCompoundFile, err)
	}

	var entries []*mscfb.File
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			file.Close()
			lock.Unlock()
			return nil, fmt.Errorf("%w: %v", domain.ErrNotCompoundFile, err)
		}
		entries = append(entries, entry)
	}

	refs := make([]entryRef, len(entries))
	for i, e := range entries {
		refs[i] = entryRef{Name: e.Name, Path: e.Path}
	}

	c := &Container{
		file:    file,
		lock:    lock,
		nodes:   buildTree(refs),
		entries: make(map[uint32]*mscfb.File, len(entries)),
		read:    make(map[uint32]bool),
	}
	for i, e := range entries {
		c.entries[uint32(i+1)] = e
	}

	return c, nil
}

func (o *Opener) lock(ctx context.Context, path string) (*flock.Flock, error) {
	// Read-only without O_CREATE: a vanished input must not be recreated
	fl := flock.New(path, flock.SetFlag(os.O_RDONLY))

	if o.lockTimeout <= 0 {
		locked, err := fl.TryRLock()
		if err != nil {
			return nil, fmt.Errorf("failed to lock %s: %w", path, err)
		}
		if !locked {
			return nil, fmt.Errorf("%s is locked by another process", path)
		}
		return fl, nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, o.lockTimeout)
	defer cancel()

	locked, err := fl.TryRLockContext(lockCtx, lockRetry)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s is locked by another process", path)
	}

	return fl, nil
}

// Container is an opened compound file
type Container struct {
	file    *os.File
	lock    *flock.Flock
	nodes   []domain.DirectoryNode
	entries map[uint32]*mscfb.File
	read    map[uint32]bool
}

// Nodes returns every directory entry, the root first
func (c *Container) Nodes() []domain.DirectoryNode {
	return c.nodes
}

// ReadStream returns the full content of the stream with the given id.
// mscfb streams are consumed by reading, so each id can be read once.
func (c *Container) ReadStream(id uint32) ([]byte, error) {
	entry, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("no stream with id %d", id)
	}
	if c.read[id] {
		return nil, fmt.Errorf("stream %s already read", entry.Name)
	}
	c.read[id] = true

	data, err := io.ReadAll(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream %s: %w", entry.Name, err)
	}

	return data, nil
}

// Close releases the file and its lock
func (c *Container) Close() error {
	err := c.file.Close()
	if uerr := c.lock.Unlock(); uerr != nil && err == nil {
		err = uerr
	}
	return err
}

// entryRef is the part of a directory entry needed to rebuild the tree
type entryRef struct {
	Name string
	Path []string
}

// buildTree assigns ids to entries in traversal order, starting at 1 below
// a synthetic root, and links every entry to the storage its path names.
// Entries whose parent cannot be found are attached to the root.
func buildTree(entries []entryRef) []domain.DirectoryNode {
	nodes := make([]domain.DirectoryNode, len(entries)+1)
	nodes[0] = domain.DirectoryNode{ID: RootID, Name: rootName}

	byPath := map[string]uint32{"": RootID}
	for i, e := range entries {
		id := uint32(i + 1)
		nodes[id] = domain.DirectoryNode{ID: id, Name: e.Name}
		byPath[entryKey(e.Path, e.Name)] = id
	}

	for i, e := range entries {
		id := uint32(i + 1)
		parent, ok := byPath[strings.Join(e.Path, pathJoiner)]
		if !ok {
			parent = RootID
		}
		nodes[parent].Children = append(nodes[parent].Children, id)
	}

	return nodes
}

func entryKey(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, pathJoiner) + pathJoiner + name
}

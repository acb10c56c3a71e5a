package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

// Writer stores attachment payloads as regular files
type Writer struct {
	perm fs.FileMode
}

// NewWriter creates a writer producing files with mode 0644
func NewWriter() *Writer {
	return &Writer{perm: 0o644}
}

// Ensure it implements the interface
var _ ports.AttachmentWriter = (*Writer)(nil)

// EnsureDir creates dir and its parents if missing
func (w *Writer) EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Write stores data as dir/name. With overwrite an existing file is
// replaced; otherwise the file is created exclusively and, on collision,
// name_1.ext, name_2.ext, ... are tried until one is free. The search has
// no upper bound: it ends at the first unused name, and a directory only
// holds finitely many files.
func (w *Writer) Write(ctx context.Context, dir, name string, data []byte, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if overwrite {
		path, err := w.resolve(dir, name)
		if err != nil {
			return "", err
		}
		// Replace the entry itself so an existing symlink is never followed
		if info, err := os.Lstat(path); err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("cannot overwrite directory %s", path)
			}
			if err := os.Remove(path); err != nil {
				return "", fmt.Errorf("failed to replace %s: %w", path, err)
			}
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, w.perm)
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}
		return path, writeAndClose(f, path, data)
	}

	candidate := name
	for n := 1; ; n++ {
		path, err := w.resolve(dir, candidate)
		if err != nil {
			return "", err
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, w.perm)
		if err == nil {
			return path, writeAndClose(f, path, data)
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}

		candidate = domain.SuffixedFilename(name, n)
	}
}

// resolve joins dir and name, refusing names that escape dir
func (w *Writer) resolve(dir, name string) (string, error) {
	path := filepath.Join(dir, name)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal blocked: %s", name)
	}

	return path, nil
}

// writeAndClose writes the full payload, flushes it to disk and closes f.
// On failure the partial file is removed.
func writeAndClose(f *os.File, path string, data []byte) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	buf := bufio.NewWriter(f)
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}

	return nil
}

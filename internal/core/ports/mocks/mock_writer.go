package mocks

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

// WrittenFile records one call to MockWriter.Write
type WrittenFile struct {
	Dir       string
	Name      string
	Data      []byte
	Overwrite bool
}

// MockWriter keeps written files in memory and applies the same
// collision naming as the filesystem writer.
type MockWriter struct {
	mu      sync.Mutex
	files   map[string][]byte
	Writes  []WrittenFile
	Dirs    []string
	FailFor map[string]error // keyed by requested name
}

// NewMockWriter creates an empty writer
func NewMockWriter() *MockWriter {
	return &MockWriter{
		files:   make(map[string][]byte),
		FailFor: make(map[string]error),
	}
}

// Write stores data under dir/name
func (m *MockWriter) Write(ctx context.Context, dir, name string, data []byte, overwrite bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailFor[name]; ok {
		return "", err
	}

	path := filepath.Join(dir, name)
	if !overwrite {
		for n := 1; ; n++ {
			if _, exists := m.files[path]; !exists {
				break
			}
			path = filepath.Join(dir, domain.SuffixedFilename(name, n))
		}
	}

	m.files[path] = append([]byte(nil), data...)
	m.Writes = append(m.Writes, WrittenFile{Dir: dir, Name: name, Data: data, Overwrite: overwrite})
	return path, nil
}

// EnsureDir records the directory
func (m *MockWriter) EnsureDir(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Dirs = append(m.Dirs, dir)
	return nil
}

// File returns the content stored at path
func (m *MockWriter) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path]
	return data, ok
}

// Count returns the number of distinct files stored
func (m *MockWriter) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.files)
}

var _ ports.AttachmentWriter = (*MockWriter)(nil)

package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

// MockContainer is an in-memory compound file for testing
type MockContainer struct {
	mu         sync.Mutex
	nodes      []domain.DirectoryNode
	streams    map[uint32][]byte
	readErrors map[uint32]error
	nextID     uint32
	Reads      []uint32
	Closed     bool
}

// NewMockContainer creates an empty container
func NewMockContainer() *MockContainer {
	return &MockContainer{
		streams:    make(map[uint32][]byte),
		readErrors: make(map[uint32]error),
	}
}

// AddStorage adds a top-level storage node and returns its id
func (m *MockContainer) AddStorage(name string) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.nodes = append(m.nodes, domain.DirectoryNode{ID: id, Name: name})
	return id
}

// AddStream adds a stream node under parent and returns its id
func (m *MockContainer) AddStream(parent uint32, name string, data []byte) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.nodes = append(m.nodes, domain.DirectoryNode{ID: id, Name: name})
	m.streams[id] = data
	for i := range m.nodes {
		if m.nodes[i].ID == parent {
			m.nodes[i].Children = append(m.nodes[i].Children, id)
			break
		}
	}
	return id
}

// FailRead makes ReadStream return err for the given node
func (m *MockContainer) FailRead(id uint32, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readErrors[id] = err
}

// Nodes returns all nodes in insertion order
func (m *MockContainer) Nodes() []domain.DirectoryNode {
	m.mu.Lock()
	defer m.mu.Unlock()

	nodes := make([]domain.DirectoryNode, len(m.nodes))
	copy(nodes, m.nodes)
	return nodes
}

// ReadStream returns the stream registered for id
func (m *MockContainer) ReadStream(id uint32) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Reads = append(m.Reads, id)
	if err, ok := m.readErrors[id]; ok {
		return nil, err
	}
	data, ok := m.streams[id]
	if !ok {
		return nil, fmt.Errorf("no stream for node %d", id)
	}
	return data, nil
}

// Close marks the container closed
func (m *MockContainer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Closed = true
	return nil
}

var _ ports.Container = (*MockContainer)(nil)

// MockOpener hands out prepared containers by path
type MockOpener struct {
	mu         sync.Mutex
	containers map[string]*MockContainer
}

// NewMockOpener creates an opener with no known files
func NewMockOpener() *MockOpener {
	return &MockOpener{containers: make(map[string]*MockContainer)}
}

// Register makes path open to c
func (m *MockOpener) Register(path string, c *MockContainer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.containers[path] = c
}

// Open returns the container registered for path
func (m *MockOpener) Open(ctx context.Context, path string) (ports.Container, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.containers[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotCompoundFile)
	}
	return c, nil
}

var _ ports.ContainerOpener = (*MockOpener)(nil)

// Package membuffer provides an in-memory buffer manager.
package membuffer

import (
	"fmt"

	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/ports"
)

type buffer struct {
	kind ports.BufferKind
	data []byte
}

// Manager implements ports.BufferManager with byte slices held in an
// arena of slots.
type Manager struct {
	buffers *arena.Arena[buffer]
}

// New creates a Manager.
func New() *Manager {
	return &Manager{buffers: arena.New[buffer]()}
}

// Create allocates a buffer of size*count bytes, seeded from data when
// non-nil.
func (m *Manager) Create(kind ports.BufferKind, size, count int, data []byte) (ports.BufferHandle, error) {
	if size < 0 || count < 0 {
		return ports.InvalidBufferHandle, fmt.Errorf("%w: negative extent %d*%d", ports.ErrBufferAllocation, size, count)
	}
	h, b, err := m.buffers.Allocate()
	if err != nil {
		return ports.InvalidBufferHandle, ports.ErrBufferAllocation
	}
	b.kind = kind
	b.data = make([]byte, size*count)
	copy(b.data, data)
	return ports.BufferHandle(h), nil
}

// Destroy releases a buffer.
func (m *Manager) Destroy(handle ports.BufferHandle) error {
	if m.buffers.Resolve(arena.Handle(handle)) == nil {
		return ports.ErrBufferInvalidHandle
	}
	m.buffers.Free(arena.Handle(handle))
	return nil
}

// Bytes returns the live backing bytes of a buffer.
func (m *Manager) Bytes(handle ports.BufferHandle) ([]byte, error) {
	b := m.buffers.Resolve(arena.Handle(handle))
	if b == nil {
		return nil, ports.ErrBufferInvalidHandle
	}
	return b.data, nil
}

var _ ports.BufferManager = (*Manager)(nil)

package mocks

import (
	"github.com/user/vidbridge/pkg/ports"
)

// BufferManager is a mock implementation of ports.BufferManager backed
// by plain byte slices.
type BufferManager struct {
	CreateFunc  func(kind ports.BufferKind, size, count int, data []byte) (ports.BufferHandle, error)
	DestroyFunc func(handle ports.BufferHandle) error
	BytesFunc   func(handle ports.BufferHandle) ([]byte, error)

	// Recorded calls for verification
	Created   []CreateCall
	Destroyed []ports.BufferHandle

	buffers map[ports.BufferHandle][]byte
	next    ports.BufferHandle
}

// CreateCall records a call to Create.
type CreateCall struct {
	Kind  ports.BufferKind
	Size  int
	Count int
}

func (m *BufferManager) Create(kind ports.BufferKind, size, count int, data []byte) (ports.BufferHandle, error) {
	m.Created = append(m.Created, CreateCall{Kind: kind, Size: size, Count: count})
	if m.CreateFunc != nil {
		return m.CreateFunc(kind, size, count, data)
	}
	if m.buffers == nil {
		m.buffers = make(map[ports.BufferHandle][]byte)
	}
	b := make([]byte, size*count)
	copy(b, data)
	h := m.next
	m.next++
	m.buffers[h] = b
	return h, nil
}

func (m *BufferManager) Destroy(handle ports.BufferHandle) error {
	m.Destroyed = append(m.Destroyed, handle)
	if m.DestroyFunc != nil {
		return m.DestroyFunc(handle)
	}
	if _, ok := m.buffers[handle]; !ok {
		return ports.ErrBufferInvalidHandle
	}
	delete(m.buffers, handle)
	return nil
}

func (m *BufferManager) Bytes(handle ports.BufferHandle) ([]byte, error) {
	if m.BytesFunc != nil {
		return m.BytesFunc(handle)
	}
	b, ok := m.buffers[handle]
	if !ok {
		return nil, ports.ErrBufferInvalidHandle
	}
	return b, nil
}

var _ ports.BufferManager = (*BufferManager)(nil)

package ports

import "errors"

// BufferKind classifies a buffer's role.
type BufferKind int

const (
	// BufferKindImage backs the pixel data of a portable image.
	BufferKindImage BufferKind = iota
)

// BufferHandle references a buffer owned by a BufferManager.
type BufferHandle uint32

// InvalidBufferHandle marks "no such buffer".
const InvalidBufferHandle = ^BufferHandle(0)

// Buffer manager errors.
var (
	// ErrBufferInvalidHandle is returned when a handle does not refer to
	// a live buffer.
	ErrBufferInvalidHandle = errors.New("buffer: invalid handle")

	// ErrBufferAllocation is returned when a buffer cannot be allocated.
	ErrBufferAllocation = errors.New("buffer: allocation failed")
)

// BufferManager owns the raw byte storage behind portable images.
type BufferManager interface {
	// Create allocates a buffer of size*count bytes. When data is
	// non-nil its contents seed the buffer.
	Create(kind BufferKind, size, count int, data []byte) (BufferHandle, error)

	// Destroy releases a buffer.
	Destroy(handle BufferHandle) error

	// Bytes returns the buffer's live backing bytes.
	Bytes(handle BufferHandle) ([]byte, error)
}

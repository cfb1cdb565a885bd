// Package driver implements the portable image/subpicture API on top of
// the native presentation device.
//
// The bridge translates between two fixed type systems: fourcc-keyed
// portable image descriptors with CPU-addressable plane buffers on one
// side, and the device's typed surfaces, native format enums and
// hardware mixer on the other. All state lives in an explicit Driver
// value; operations are synchronous and perform no locking, with
// ordering imposed by the caller.
package driver

import (
	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/imageformat"
	"github.com/user/vidbridge/pkg/ports"
)

// ImageID references a portable image owned by the driver.
type ImageID uint32

// SurfaceID references a video surface owned by the driver.
type SurfaceID uint32

// ContextID references a rendering context owned by the driver.
type ContextID uint32

// ImageInfo is the portable image descriptor: geometry, plane layout and
// the backing buffer handle. DataSize always equals the byte extent
// implied by the plane pitches and offsets.
type ImageInfo struct {
	ID        ImageID
	Format    imageformat.Format
	Width     uint32
	Height    uint32
	NumPlanes int
	Pitches   [3]uint32
	Offsets   [3]uint32
	DataSize  uint32
	Buf       ports.BufferHandle

	// Paletted formats are not supported, so these are always zero.
	NumPaletteEntries int
	EntryBytes        int
}

// imageObject is the driver-side image state. A packed RGBA image owns a
// device composite surface for exactly the image's lifetime; YUV images
// never allocate one.
type imageObject struct {
	info      ImageInfo
	composite ports.SurfaceHandle
}

// surfaceObject is the driver-side video surface state.
type surfaceObject struct {
	native  ports.SurfaceHandle
	context ContextID
	width   uint32
	height  uint32
}

// contextObject is the driver-side rendering context state.
type contextObject struct {
	mixer  ports.MixerHandle
	width  uint32
	height uint32
}

// Driver bridges the portable image API onto a native device. The
// device connection is an explicit value here, never ambient state.
type Driver struct {
	device  ports.Device
	buffers ports.BufferManager
	log     ports.Logger

	images   *arena.Arena[imageObject]
	surfaces *arena.Arena[surfaceObject]
	contexts *arena.Arena[contextObject]
}

// New creates a Driver over the given device and buffer manager. A nil
// logger disables logging.
func New(device ports.Device, buffers ports.BufferManager, log ports.Logger) *Driver {
	if log == nil {
		log = noopLogger{}
	}
	return &Driver{
		device:   device,
		buffers:  buffers,
		log:      log.WithComponent("driver"),
		images:   arena.New[imageObject](),
		surfaces: arena.New[surfaceObject](),
		contexts: arena.New[contextObject](),
	}
}

// noopLogger keeps the driver's logging calls unconditional.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...interface{}) {}
func (noopLogger) Info(msg string, args ...interface{})  {}
func (noopLogger) Warn(msg string, args ...interface{})  {}
func (noopLogger) Error(msg string, args ...interface{}) {}

func (noopLogger) WithComponent(component string) ports.Logger { return noopLogger{} }

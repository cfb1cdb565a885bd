// Package ports defines the interfaces between the bridge core and its
// collaborators: the native presentation device, the buffer manager and
// the logger.
package ports

import "errors"

// YCbCrFormat identifies a native chroma-subsampled pixel layout.
type YCbCrFormat uint32

const (
	YCbCrFormatNV12 YCbCrFormat = iota
	YCbCrFormatYV12
	YCbCrFormatUYVY
	YCbCrFormatYUYV
	YCbCrFormatV8U8Y8A8

	// YCbCrFormatInvalid is the lookup-miss sentinel.
	YCbCrFormatInvalid YCbCrFormat = ^YCbCrFormat(0)
)

// String returns the native format name.
func (f YCbCrFormat) String() string {
	switch f {
	case YCbCrFormatNV12:
		return "NV12"
	case YCbCrFormatYV12:
		return "YV12"
	case YCbCrFormatUYVY:
		return "UYVY"
	case YCbCrFormatYUYV:
		return "YUYV"
	case YCbCrFormatV8U8Y8A8:
		return "V8U8Y8A8"
	case YCbCrFormatInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// RGBAFormat identifies a native packed 32-bit pixel layout.
type RGBAFormat uint32

const (
	RGBAFormatB8G8R8A8 RGBAFormat = iota
	RGBAFormatR8G8B8A8

	// RGBAFormatInvalid is the lookup-miss sentinel.
	RGBAFormatInvalid RGBAFormat = ^RGBAFormat(0)
)

// String returns the native format name.
func (f RGBAFormat) String() string {
	switch f {
	case RGBAFormatB8G8R8A8:
		return "B8G8R8A8"
	case RGBAFormatR8G8B8A8:
		return "R8G8B8A8"
	case RGBAFormatInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ChromaType identifies the chroma subsampling of a video surface.
type ChromaType uint32

const (
	ChromaType420 ChromaType = iota
	ChromaType422
	ChromaType444
)

// SurfaceHandle references a device-resident surface (video or output).
type SurfaceHandle uint32

// InvalidSurfaceHandle marks "no such surface".
const InvalidSurfaceHandle = ^SurfaceHandle(0)

// MixerHandle references a device compositing mixer.
type MixerHandle uint32

// InvalidMixerHandle marks "no such mixer".
const InvalidMixerHandle = ^MixerHandle(0)

// Rect is a device rectangle, half-open on the bottom-right edge.
type Rect struct {
	X0, Y0, X1, Y1 uint32
}

// Width returns the rectangle width.
func (r Rect) Width() uint32 { return r.X1 - r.X0 }

// Height returns the rectangle height.
func (r Rect) Height() uint32 { return r.Y1 - r.Y0 }

// Device errors returned by implementations of Device. The bridge core
// translates these to its portable status errors with errors.Is.
var (
	// ErrDeviceInvalidHandle is returned when a surface or mixer handle
	// does not refer to a live device object.
	ErrDeviceInvalidHandle = errors.New("device: invalid handle")

	// ErrDeviceInvalidValue is returned when an argument is outside the
	// device's accepted range.
	ErrDeviceInvalidValue = errors.New("device: invalid value")

	// ErrDeviceUnsupported is returned when the device does not implement
	// the requested format or operation.
	ErrDeviceUnsupported = errors.New("device: unsupported")

	// ErrDeviceResources is returned when the device is out of memory or
	// object slots.
	ErrDeviceResources = errors.New("device: insufficient resources")

	// ErrDeviceFailed is returned for any other device-side failure.
	ErrDeviceFailed = errors.New("device: operation failed")
)

// Device abstracts the native presentation device the bridge translates
// onto. One implementation wraps the real device; pkg/adapters/softdevice
// is a self-contained software implementation.
//
// All calls are synchronous and return before the caller proceeds; the
// bridge performs no locking around them.
type Device interface {
	// QueryYCbCrCaps reports whether video surfaces of the given chroma
	// type can be read back in the given chroma-subsampled format.
	QueryYCbCrCaps(chroma ChromaType, format YCbCrFormat) (bool, error)

	// QueryRGBACaps reports whether output surfaces of the given packed
	// format can be created and read back.
	QueryRGBACaps(format RGBAFormat) (bool, error)

	// CreateVideoSurface creates a device video surface.
	CreateVideoSurface(chroma ChromaType, width, height uint32) (SurfaceHandle, error)

	// DestroyVideoSurface destroys a video surface.
	DestroyVideoSurface(surface SurfaceHandle) error

	// VideoSurfaceGetBits copies the surface pixels into the caller's
	// plane buffers in the requested format, honoring per-plane strides.
	VideoSurfaceGetBits(surface SurfaceHandle, format YCbCrFormat, planes [][]byte, strides []int) error

	// CreateOutputSurface creates a device output (render target) surface.
	CreateOutputSurface(format RGBAFormat, width, height uint32) (SurfaceHandle, error)

	// DestroyOutputSurface destroys an output surface.
	DestroyOutputSurface(surface SurfaceHandle) error

	// OutputSurfaceGetBits copies the rect of an output surface into dst
	// in the surface's native packed format, honoring the row stride.
	OutputSurfaceGetBits(surface SurfaceHandle, rect Rect, dst []byte, stride int) error

	// CreateMixer creates a compositing mixer sized for the given frames.
	CreateMixer(width, height uint32) (MixerHandle, error)

	// DestroyMixer destroys a mixer.
	DestroyMixer(mixer MixerHandle) error

	// MixerRender composites the source video surface into the rect of
	// the destination output surface, with no auxiliary layers.
	MixerRender(mixer MixerHandle, src SurfaceHandle, dst SurfaceHandle, rect Rect) error
}

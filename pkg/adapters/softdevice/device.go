// Package softdevice provides a software implementation of ports.Device.
//
// Video surfaces are 4:2:0 image.YCbCr frames, output surfaces are
// image.RGBA render targets, and the mixer composites with fogleman/gg.
// It backs the CLI and the integration tests; a production deployment
// substitutes an adapter wrapping the real presentation device.
package softdevice

import (
	"image"

	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/ports"
)

type videoSurface struct {
	frame  *image.YCbCr
	width  uint32
	height uint32
}

type outputSurface struct {
	frame  *image.RGBA
	format ports.RGBAFormat
	width  uint32
	height uint32
}

type mixer struct {
	width  uint32
	height uint32
}

// Device implements ports.Device in software.
type Device struct {
	videos  *arena.Arena[videoSurface]
	outputs *arena.Arena[outputSurface]
	mixers  *arena.Arena[mixer]
}

// New creates a software device.
func New() *Device {
	return &Device{
		videos:  arena.New[videoSurface](),
		outputs: arena.New[outputSurface](),
		mixers:  arena.New[mixer](),
	}
}

// QueryYCbCrCaps reports support for 4:2:0 readback in the planar and
// raw packed formats. V8U8Y8A8 readback is not implemented.
func (d *Device) QueryYCbCrCaps(chroma ports.ChromaType, format ports.YCbCrFormat) (bool, error) {
	if chroma != ports.ChromaType420 {
		return false, nil
	}
	switch format {
	case ports.YCbCrFormatNV12, ports.YCbCrFormatYV12,
		ports.YCbCrFormatUYVY, ports.YCbCrFormatYUYV:
		return true, nil
	case ports.YCbCrFormatV8U8Y8A8:
		return false, nil
	default:
		return false, ports.ErrDeviceInvalidValue
	}
}

// QueryRGBACaps reports support for both packed 32-bit layouts.
func (d *Device) QueryRGBACaps(format ports.RGBAFormat) (bool, error) {
	switch format {
	case ports.RGBAFormatB8G8R8A8, ports.RGBAFormatR8G8B8A8:
		return true, nil
	default:
		return false, ports.ErrDeviceInvalidValue
	}
}

// CreateVideoSurface creates a 4:2:0 video surface.
func (d *Device) CreateVideoSurface(chroma ports.ChromaType, width, height uint32) (ports.SurfaceHandle, error) {
	if chroma != ports.ChromaType420 {
		return ports.InvalidSurfaceHandle, ports.ErrDeviceUnsupported
	}
	if width == 0 || height == 0 {
		return ports.InvalidSurfaceHandle, ports.ErrDeviceInvalidValue
	}

	h, s, err := d.videos.Allocate()
	if err != nil {
		return ports.InvalidSurfaceHandle, ports.ErrDeviceResources
	}
	s.frame = image.NewYCbCr(image.Rect(0, 0, int(width), int(height)), image.YCbCrSubsampleRatio420)
	s.width = width
	s.height = height
	return ports.SurfaceHandle(h), nil
}

// DestroyVideoSurface destroys a video surface.
func (d *Device) DestroyVideoSurface(surface ports.SurfaceHandle) error {
	if d.videos.Resolve(arena.Handle(surface)) == nil {
		return ports.ErrDeviceInvalidHandle
	}
	d.videos.Free(arena.Handle(surface))
	return nil
}

// CreateOutputSurface creates a packed render target surface.
func (d *Device) CreateOutputSurface(format ports.RGBAFormat, width, height uint32) (ports.SurfaceHandle, error) {
	if format != ports.RGBAFormatB8G8R8A8 && format != ports.RGBAFormatR8G8B8A8 {
		return ports.InvalidSurfaceHandle, ports.ErrDeviceInvalidValue
	}
	if width == 0 || height == 0 {
		return ports.InvalidSurfaceHandle, ports.ErrDeviceInvalidValue
	}

	h, s, err := d.outputs.Allocate()
	if err != nil {
		return ports.InvalidSurfaceHandle, ports.ErrDeviceResources
	}
	s.frame = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	s.format = format
	s.width = width
	s.height = height
	return ports.SurfaceHandle(h), nil
}

// DestroyOutputSurface destroys an output surface.
func (d *Device) DestroyOutputSurface(surface ports.SurfaceHandle) error {
	if d.outputs.Resolve(arena.Handle(surface)) == nil {
		return ports.ErrDeviceInvalidHandle
	}
	d.outputs.Free(arena.Handle(surface))
	return nil
}

// CreateMixer creates a compositing mixer.
func (d *Device) CreateMixer(width, height uint32) (ports.MixerHandle, error) {
	if width == 0 || height == 0 {
		return ports.InvalidMixerHandle, ports.ErrDeviceInvalidValue
	}
	h, m, err := d.mixers.Allocate()
	if err != nil {
		return ports.InvalidMixerHandle, ports.ErrDeviceResources
	}
	m.width = width
	m.height = height
	return ports.MixerHandle(h), nil
}

// DestroyMixer destroys a mixer.
func (d *Device) DestroyMixer(mixer ports.MixerHandle) error {
	if d.mixers.Resolve(arena.Handle(mixer)) == nil {
		return ports.ErrDeviceInvalidHandle
	}
	d.mixers.Free(arena.Handle(mixer))
	return nil
}

var _ ports.Device = (*Device)(nil)

package driver

import (
	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/ports"
)

// CreateContext creates a rendering context with a device mixer sized
// for width x height frames.
func (d *Driver) CreateContext(width, height uint32) (ContextID, error) {
	if width == 0 || height == 0 {
		return 0, ErrInvalidParameter
	}

	h, obj, err := d.contexts.Allocate()
	if err != nil {
		return 0, ErrAllocationFailed
	}

	mixer, err := d.device.CreateMixer(width, height)
	if err != nil {
		d.contexts.Free(h)
		return 0, statusFromDevice(err)
	}

	obj.mixer = mixer
	obj.width = width
	obj.height = height
	d.log.Debug("Created context %d (%dx%d)", h, width, height)
	return ContextID(h), nil
}

// DestroyContext destroys a context and its device mixer.
func (d *Driver) DestroyContext(id ContextID) error {
	obj := d.contexts.Resolve(arena.Handle(id))
	if obj == nil {
		return ErrInvalidContext
	}
	err := d.device.DestroyMixer(obj.mixer)
	d.contexts.Free(arena.Handle(id))
	return statusFromDevice(err)
}

// CreateSurface creates a 4:2:0 video surface bound to its owning
// context.
func (d *Driver) CreateSurface(ctx ContextID, width, height uint32) (SurfaceID, error) {
	if d.contexts.Resolve(arena.Handle(ctx)) == nil {
		return 0, ErrInvalidContext
	}
	if width == 0 || height == 0 {
		return 0, ErrInvalidParameter
	}

	h, obj, err := d.surfaces.Allocate()
	if err != nil {
		return 0, ErrAllocationFailed
	}

	native, err := d.device.CreateVideoSurface(ports.ChromaType420, width, height)
	if err != nil {
		d.surfaces.Free(h)
		return 0, statusFromDevice(err)
	}

	obj.native = native
	obj.context = ctx
	obj.width = width
	obj.height = height
	d.log.Debug("Created surface %d (%dx%d)", h, width, height)
	return SurfaceID(h), nil
}

// DestroySurface destroys a video surface.
func (d *Driver) DestroySurface(id SurfaceID) error {
	obj := d.surfaces.Resolve(arena.Handle(id))
	if obj == nil {
		return ErrInvalidSurface
	}
	err := d.device.DestroyVideoSurface(obj.native)
	d.surfaces.Free(arena.Handle(id))
	return statusFromDevice(err)
}

// SurfaceNative exposes the device handle behind a surface id, for
// collaborators that feed decoded frames into surfaces.
func (d *Driver) SurfaceNative(id SurfaceID) (ports.SurfaceHandle, error) {
	obj := d.surfaces.Resolve(arena.Handle(id))
	if obj == nil {
		return ports.InvalidSurfaceHandle, ErrInvalidSurface
	}
	return obj.native, nil
}

package driver

import (
	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/fourcc"
	"github.com/user/vidbridge/pkg/imageformat"
	"github.com/user/vidbridge/pkg/ports"
)

// GetImage copies the surface pixels for rect into the destination
// image's backing buffer. Only full-surface readback is supported; any
// sub-rectangle request returns ErrInvalidParameter.
//
// YUV images read the video surface back directly into their plane
// buffers. RGBA images first composite the surface into their device
// composite surface through the context's mixer, then copy the
// composited bytes out.
func (d *Driver) GetImage(surface SurfaceID, rect ports.Rect, image ImageID) error {
	surf := d.surfaces.Resolve(arena.Handle(surface))
	if surf == nil {
		return ErrInvalidSurface
	}

	// Sub-rectangle readback is a documented limitation, not silently
	// widened to the full surface.
	fullSurface := rect.X0 == 0 && rect.Y0 == 0 &&
		rect.Width() == surf.width && rect.Height() == surf.height
	if !fullSurface {
		return ErrInvalidParameter
	}

	obj := d.images.Resolve(arena.Handle(image))
	if obj == nil {
		return ErrInvalidImage
	}
	info := &obj.info

	data, err := d.buffers.Bytes(info.Buf)
	if err != nil {
		return ErrInvalidBuffer
	}

	isYUV := obj.composite == ports.InvalidSurfaceHandle

	var ycbcrFormat ports.YCbCrFormat
	if isYUV {
		// The image was created with this format, so the lookup must
		// succeed; a miss here is a hard error.
		if ycbcrFormat = imageformat.YCbCrFormatFor(info.Format); ycbcrFormat == ports.YCbCrFormatInvalid {
			return ErrOperationFailed
		}
	} else {
		if imageformat.RGBAFormatFor(info.Format) == ports.RGBAFormatInvalid {
			return ErrOperationFailed
		}
	}

	planes := make([][]byte, info.NumPlanes)
	strides := make([]int, info.NumPlanes)
	for i := 0; i < info.NumPlanes; i++ {
		planes[i] = data[info.Offsets[i]:]
		strides[i] = int(info.Pitches[i])
	}

	if isYUV {
		if info.Format.FourCC == fourcc.YV12 {
			// The creation-time layout permuted the chroma planes to
			// match device-native order; swap them back so the device
			// writes each plane where the portable descriptor expects
			// to read it.
			planes[1] = data[info.Offsets[2]:]
			strides[1] = int(info.Pitches[2])
			planes[2] = data[info.Offsets[1]:]
			strides[2] = int(info.Pitches[1])
		}
		return statusFromDevice(d.device.VideoSurfaceGetBits(surf.native, ycbcrFormat, planes, strides))
	}

	ctx := d.contexts.Resolve(arena.Handle(surf.context))
	if ctx == nil {
		return ErrInvalidContext
	}

	if err := d.device.MixerRender(ctx.mixer, surf.native, obj.composite, rect); err != nil {
		return statusFromDevice(err)
	}
	return statusFromDevice(d.device.OutputSurfaceGetBits(obj.composite, rect, planes[0], strides[0]))
}

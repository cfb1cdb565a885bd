package driver

import (
	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/fourcc"
	"github.com/user/vidbridge/pkg/imageformat"
	"github.com/user/vidbridge/pkg/ports"
)

// supportedFormat asks the device whether a table entry is usable. Any
// device failure counts as unsupported; support is never assumed.
func (d *Driver) supportedFormat(e imageformat.Entry) bool {
	switch e.Class {
	case imageformat.ClassYCbCr:
		ok, err := d.device.QueryYCbCrCaps(ports.ChromaType420, e.YCbCr)
		return err == nil && ok
	case imageformat.ClassRGBA:
		ok, err := d.device.QueryRGBACaps(e.RGBA)
		return err == nil && ok
	default:
		return false
	}
}

// QueryImageFormats writes the portable descriptors of every format the
// device actually supports into dst and returns their count. A nil dst
// is the count-only mode: the count is returned with no writes. dst
// should hold imageformat.MaxFormats entries; excess formats are counted
// but not written.
func (d *Driver) QueryImageFormats(dst []imageformat.Format) (int, error) {
	n := 0
	for _, e := range imageformat.Entries() {
		if !d.supportedFormat(e) {
			continue
		}
		if dst != nil && n < len(dst) {
			dst[n] = e.Format
		}
		n++
	}
	return n, nil
}

// packedLayout fills in the single-plane layout shared by packed RGBA
// and raw packed YUV images: one plane, four bytes per pixel.
func packedLayout(info *ImageInfo, width, height uint32) {
	info.NumPlanes = 1
	info.Pitches[0] = width * 4
	info.Offsets[0] = 0
	info.DataSize = info.Offsets[0] + info.Pitches[0]*height
}

// CreateImage creates a portable image of the given format and
// geometry, computing the per-plane layout and allocating the backing
// buffer. Packed RGBA images additionally allocate a device composite
// surface used as the intermediate target for readback. Any failure
// rolls back whatever was constructed so far.
func (d *Driver) CreateImage(format *imageformat.Format, width, height uint32) (*ImageInfo, error) {
	if format == nil || width == 0 || height == 0 {
		return nil, ErrInvalidParameter
	}

	h, obj, err := d.images.Allocate()
	if err != nil {
		return nil, ErrAllocationFailed
	}
	obj.composite = ports.InvalidSurfaceHandle

	info := &obj.info
	info.ID = ImageID(h)
	info.Buf = ports.InvalidBufferHandle

	// Chroma planes are half resolution in both dimensions, with odd
	// dimensions rounding up.
	size := width * height
	width2 := (width + 1) / 2
	height2 := (height + 1) / 2
	size2 := width2 * height2

	switch format.FourCC {
	case fourcc.NV12:
		info.NumPlanes = 2
		info.Pitches[0] = width
		info.Offsets[0] = 0
		info.Pitches[1] = width
		info.Offsets[1] = size
		info.DataSize = size + 2*size2

	case fourcc.YV12:
		// The device stores the chroma planes in the opposite order to
		// the portable descriptor, so plane 1 points past plane 2.
		// The readback path undoes this permutation.
		info.NumPlanes = 3
		info.Pitches[0] = width
		info.Offsets[0] = 0
		info.Pitches[1] = width2
		info.Offsets[1] = size + size2
		info.Pitches[2] = width2
		info.Offsets[2] = size
		info.DataSize = size + 2*size2

	case fourcc.RGBA:
		rgbaFormat := imageformat.RGBAFormatFor(*format)
		if rgbaFormat == ports.RGBAFormatInvalid {
			return nil, d.failCreateImage(h, ErrOperationFailed)
		}
		composite, err := d.device.CreateOutputSurface(rgbaFormat, width, height)
		if err != nil {
			return nil, d.failCreateImage(h, statusFromDevice(err))
		}
		obj.composite = composite
		packedLayout(info, width, height)

	case fourcc.UYVY, fourcc.YUYV:
		// Same single-plane layout as RGBA, without the composite
		// surface.
		packedLayout(info, width, height)

	default:
		return nil, d.failCreateImage(h, ErrOperationFailed)
	}

	buf, err := d.buffers.Create(ports.BufferKindImage, int(info.DataSize), 1, nil)
	if err != nil {
		return nil, d.failCreateImage(h, ErrAllocationFailed)
	}
	info.Buf = buf

	info.Format = *format
	info.Width = width
	info.Height = height

	// No paletted formats supported.
	info.NumPaletteEntries = 0
	info.EntryBytes = 0

	d.log.Debug("Created image %d: %s %dx%d, %d planes, %d bytes",
		info.ID, format.FourCC, width, height, info.NumPlanes, info.DataSize)

	out := *info
	return &out, nil
}

// failCreateImage rolls back a partially constructed image and returns
// the creation failure.
func (d *Driver) failCreateImage(h arena.Handle, status error) error {
	if err := d.DestroyImage(ImageID(h)); err != nil {
		d.log.Warn("Rollback of image %d failed: %s", h, err)
	}
	return status
}

// DestroyImage destroys an image, releasing its composite surface, its
// slot and its backing buffer.
func (d *Driver) DestroyImage(id ImageID) error {
	obj := d.images.Resolve(arena.Handle(id))
	if obj == nil {
		return ErrInvalidImage
	}

	if obj.composite != ports.InvalidSurfaceHandle {
		if err := d.device.DestroyOutputSurface(obj.composite); err != nil {
			d.log.Warn("Destroying composite surface of image %d failed: %s", id, err)
		}
	}

	buf := obj.info.Buf
	d.images.Free(arena.Handle(id))

	if buf == ports.InvalidBufferHandle {
		return nil
	}
	if err := d.buffers.Destroy(buf); err != nil {
		return ErrInvalidBuffer
	}
	return nil
}

// ImageBytes returns the live backing bytes of an image's buffer, for
// hosts that map image contents after readback.
func (d *Driver) ImageBytes(id ImageID) ([]byte, error) {
	obj := d.images.Resolve(arena.Handle(id))
	if obj == nil {
		return nil, ErrInvalidImage
	}
	data, err := d.buffers.Bytes(obj.info.Buf)
	if err != nil {
		return nil, ErrInvalidBuffer
	}
	return data, nil
}

// Image returns the portable descriptor of a live image.
func (d *Driver) Image(id ImageID) (*ImageInfo, error) {
	obj := d.images.Resolve(arena.Handle(id))
	if obj == nil {
		return nil, ErrInvalidImage
	}
	out := obj.info
	return &out, nil
}

package softdevice

import (
	"image"

	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/ports"
)

// VideoSurfaceGetBits copies the surface frame into the caller's plane
// buffers in the requested format.
func (d *Device) VideoSurfaceGetBits(surface ports.SurfaceHandle, format ports.YCbCrFormat, planes [][]byte, strides []int) error {
	s := d.videos.Resolve(arena.Handle(surface))
	if s == nil {
		return ports.ErrDeviceInvalidHandle
	}

	switch format {
	case ports.YCbCrFormatNV12:
		if len(planes) < 2 || len(strides) < 2 {
			return ports.ErrDeviceInvalidValue
		}
		writeLuma(s.frame, planes[0], strides[0])
		writeChromaNV12(s.frame, planes[1], strides[1])
		return nil

	case ports.YCbCrFormatYV12:
		// Planes leave the device in Y/Cb/Cr order; reordering for
		// portable consumers is the caller's concern.
		if len(planes) < 3 || len(strides) < 3 {
			return ports.ErrDeviceInvalidValue
		}
		writeLuma(s.frame, planes[0], strides[0])
		writeChromaPlane(s.frame.Cb, s.frame.CStride, chromaRows(s.frame), chromaCols(s.frame), planes[1], strides[1])
		writeChromaPlane(s.frame.Cr, s.frame.CStride, chromaRows(s.frame), chromaCols(s.frame), planes[2], strides[2])
		return nil

	case ports.YCbCrFormatUYVY:
		if len(planes) < 1 || len(strides) < 1 {
			return ports.ErrDeviceInvalidValue
		}
		writePacked422(s.frame, planes[0], strides[0], true)
		return nil

	case ports.YCbCrFormatYUYV:
		if len(planes) < 1 || len(strides) < 1 {
			return ports.ErrDeviceInvalidValue
		}
		writePacked422(s.frame, planes[0], strides[0], false)
		return nil

	case ports.YCbCrFormatV8U8Y8A8:
		return ports.ErrDeviceUnsupported

	default:
		return ports.ErrDeviceInvalidValue
	}
}

// OutputSurfaceGetBits copies the rect of an output surface into dst in
// the surface's packed byte order.
func (d *Device) OutputSurfaceGetBits(surface ports.SurfaceHandle, rect ports.Rect, dst []byte, stride int) error {
	s := d.outputs.Resolve(arena.Handle(surface))
	if s == nil {
		return ports.ErrDeviceInvalidHandle
	}
	if rect.X1 > s.width || rect.Y1 > s.height || rect.X0 > rect.X1 || rect.Y0 > rect.Y1 {
		return ports.ErrDeviceInvalidValue
	}

	bgra := s.format == ports.RGBAFormatB8G8R8A8
	w := int(rect.Width())
	for row := 0; row < int(rect.Height()); row++ {
		src := s.frame.Pix[(int(rect.Y0)+row)*s.frame.Stride+int(rect.X0)*4:]
		out := dst[row*stride:]
		for x := 0; x < w; x++ {
			r, g, b, a := src[x*4], src[x*4+1], src[x*4+2], src[x*4+3]
			if bgra {
				out[x*4], out[x*4+1], out[x*4+2], out[x*4+3] = b, g, r, a
			} else {
				out[x*4], out[x*4+1], out[x*4+2], out[x*4+3] = r, g, b, a
			}
		}
	}
	return nil
}

func chromaRows(f *image.YCbCr) int { return (f.Rect.Dy() + 1) / 2 }
func chromaCols(f *image.YCbCr) int { return (f.Rect.Dx() + 1) / 2 }

func writeLuma(f *image.YCbCr, dst []byte, stride int) {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	for row := 0; row < h; row++ {
		copy(dst[row*stride:row*stride+w], f.Y[row*f.YStride:])
	}
}

func writeChromaPlane(src []byte, srcStride, rows, cols int, dst []byte, stride int) {
	for row := 0; row < rows; row++ {
		copy(dst[row*stride:row*stride+cols], src[row*srcStride:])
	}
}

// writeChromaNV12 interleaves Cb/Cr pairs into the second NV12 plane.
func writeChromaNV12(f *image.YCbCr, dst []byte, stride int) {
	rows, cols := chromaRows(f), chromaCols(f)
	for row := 0; row < rows; row++ {
		out := dst[row*stride:]
		for col := 0; col < cols; col++ {
			out[col*2] = f.Cb[row*f.CStride+col]
			out[col*2+1] = f.Cr[row*f.CStride+col]
		}
	}
}

// writePacked422 writes UYVY (uFirst) or YUYV pixel pairs. The trailing
// pixel of an odd-width row repeats its own luma.
func writePacked422(f *image.YCbCr, dst []byte, stride int, uFirst bool) {
	w, h := f.Rect.Dx(), f.Rect.Dy()
	for row := 0; row < h; row++ {
		out := dst[row*stride:]
		for x := 0; x < w; x += 2 {
			ci := (row/2)*f.CStride + x/2
			y0 := f.Y[row*f.YStride+x]
			y1 := y0
			if x+1 < w {
				y1 = f.Y[row*f.YStride+x+1]
			}
			u, v := f.Cb[ci], f.Cr[ci]
			o := (x / 2) * 4
			if uFirst {
				out[o], out[o+1], out[o+2], out[o+3] = u, y0, v, y1
			} else {
				out[o], out[o+1], out[o+2], out[o+3] = y0, u, y1, v
			}
		}
	}
}

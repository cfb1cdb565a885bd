package softdevice

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/user/vidbridge/pkg/arena"
	"github.com/user/vidbridge/pkg/ports"
)

// MixerRender composites the source video surface into the rect of the
// destination output surface, with no auxiliary layers.
func (d *Device) MixerRender(m ports.MixerHandle, src, dst ports.SurfaceHandle, rect ports.Rect) error {
	if d.mixers.Resolve(arena.Handle(m)) == nil {
		return ports.ErrDeviceInvalidHandle
	}
	video := d.videos.Resolve(arena.Handle(src))
	if video == nil {
		return ports.ErrDeviceInvalidHandle
	}
	out := d.outputs.Resolve(arena.Handle(dst))
	if out == nil {
		return ports.ErrDeviceInvalidHandle
	}
	if rect.X1 > out.width || rect.Y1 > out.height || rect.X0 > rect.X1 || rect.Y0 > rect.Y1 {
		return ports.ErrDeviceInvalidValue
	}

	// Color-convert the frame, scaling when the target rect differs
	// from the frame geometry.
	w, h := int(rect.Width()), int(rect.Height())
	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == video.frame.Rect.Dx() && h == video.frame.Rect.Dy() {
		xdraw.Draw(frame, frame.Bounds(), video.frame, video.frame.Rect.Min, xdraw.Src)
	} else {
		xdraw.BiLinear.Scale(frame, frame.Bounds(), video.frame, video.frame.Rect, xdraw.Src, nil)
	}

	dc := gg.NewContextForRGBA(out.frame)
	dc.DrawImage(frame, int(rect.X0), int(rect.Y0))
	return nil
}

// UploadVideoSurface fills a video surface from an arbitrary picture,
// converting to 4:2:0 with chroma taken from the even-aligned pixel of
// each 2x2 block. Callers use it to seed frames that a real deployment
// would receive from a decoder.
func (d *Device) UploadVideoSurface(surface ports.SurfaceHandle, src image.Image) error {
	s := d.videos.Resolve(arena.Handle(surface))
	if s == nil {
		return ports.ErrDeviceInvalidHandle
	}

	f := s.frame
	w, h := f.Rect.Dx(), f.Rect.Dy()
	b := src.Bounds()
	for row := 0; row < h; row++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+row).RGBA()
			y, cb, cr := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
			f.Y[row*f.YStride+x] = y
			if row%2 == 0 && x%2 == 0 {
				ci := (row/2)*f.CStride + x/2
				f.Cb[ci] = cb
				f.Cr[ci] = cr
			}
		}
	}
	return nil
}

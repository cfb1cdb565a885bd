package softdevice

import (
	"errors"
	"image"
	"testing"

	"github.com/user/vidbridge/pkg/ports"
)

// testFrame builds a 4x2 surface with distinct luma and chroma samples.
func testFrame(t *testing.T, d *Device) ports.SurfaceHandle {
	t.Helper()
	h, err := d.CreateVideoSurface(ports.ChromaType420, 4, 2)
	if err != nil {
		t.Fatalf("CreateVideoSurface: %v", err)
	}
	s := d.videos.Resolve(0)
	copy(s.frame.Y, []byte{10, 11, 12, 13, 20, 21, 22, 23})
	copy(s.frame.Cb, []byte{100, 101})
	copy(s.frame.Cr, []byte{200, 201})
	return h
}

func TestQueryYCbCrCaps(t *testing.T) {
	d := New()
	tests := []struct {
		chroma ports.ChromaType
		format ports.YCbCrFormat
		want   bool
		hasErr bool
	}{
		{ports.ChromaType420, ports.YCbCrFormatNV12, true, false},
		{ports.ChromaType420, ports.YCbCrFormatYV12, true, false},
		{ports.ChromaType420, ports.YCbCrFormatUYVY, true, false},
		{ports.ChromaType420, ports.YCbCrFormatYUYV, true, false},
		{ports.ChromaType420, ports.YCbCrFormatV8U8Y8A8, false, false},
		{ports.ChromaType422, ports.YCbCrFormatNV12, false, false},
		{ports.ChromaType420, ports.YCbCrFormat(99), false, true},
	}
	for _, tt := range tests {
		got, err := d.QueryYCbCrCaps(tt.chroma, tt.format)
		if got != tt.want || (err != nil) != tt.hasErr {
			t.Errorf("QueryYCbCrCaps(%v, %v) = %v, %v", tt.chroma, tt.format, got, err)
		}
	}
}

func TestVideoSurfaceGetBitsNV12(t *testing.T) {
	d := New()
	h := testFrame(t, d)

	y := make([]byte, 8)
	uv := make([]byte, 4)
	err := d.VideoSurfaceGetBits(h, ports.YCbCrFormatNV12, [][]byte{y, uv}, []int{4, 4})
	if err != nil {
		t.Fatalf("VideoSurfaceGetBits: %v", err)
	}

	wantY := []byte{10, 11, 12, 13, 20, 21, 22, 23}
	for i := range wantY {
		if y[i] != wantY[i] {
			t.Fatalf("luma = % x, want % x", y, wantY)
		}
	}
	wantUV := []byte{100, 200, 101, 201}
	for i := range wantUV {
		if uv[i] != wantUV[i] {
			t.Fatalf("chroma = % x, want % x", uv, wantUV)
		}
	}
}

func TestVideoSurfaceGetBitsYV12(t *testing.T) {
	d := New()
	h := testFrame(t, d)

	y := make([]byte, 8)
	cb := make([]byte, 2)
	cr := make([]byte, 2)
	err := d.VideoSurfaceGetBits(h, ports.YCbCrFormatYV12, [][]byte{y, cb, cr}, []int{4, 2, 2})
	if err != nil {
		t.Fatalf("VideoSurfaceGetBits: %v", err)
	}

	// Device-native plane order is Y/Cb/Cr.
	if cb[0] != 100 || cb[1] != 101 {
		t.Errorf("plane 1 = % x, want Cb samples", cb)
	}
	if cr[0] != 200 || cr[1] != 201 {
		t.Errorf("plane 2 = % x, want Cr samples", cr)
	}
}

func TestVideoSurfaceGetBitsPacked(t *testing.T) {
	d := New()
	h := testFrame(t, d)

	buf := make([]byte, 2*16)
	if err := d.VideoSurfaceGetBits(h, ports.YCbCrFormatUYVY, [][]byte{buf}, []int{16}); err != nil {
		t.Fatalf("UYVY: %v", err)
	}
	// First pair of row 0: U Y0 V Y1.
	if buf[0] != 100 || buf[1] != 10 || buf[2] != 200 || buf[3] != 11 {
		t.Errorf("UYVY first pair = % x", buf[:4])
	}

	if err := d.VideoSurfaceGetBits(h, ports.YCbCrFormatYUYV, [][]byte{buf}, []int{16}); err != nil {
		t.Fatalf("YUYV: %v", err)
	}
	if buf[0] != 10 || buf[1] != 100 || buf[2] != 11 || buf[3] != 200 {
		t.Errorf("YUYV first pair = % x", buf[:4])
	}
}

func TestVideoSurfaceGetBitsUnsupported(t *testing.T) {
	d := New()
	h := testFrame(t, d)

	err := d.VideoSurfaceGetBits(h, ports.YCbCrFormatV8U8Y8A8, [][]byte{make([]byte, 32)}, []int{16})
	if !errors.Is(err, ports.ErrDeviceUnsupported) {
		t.Fatalf("err = %v, want ErrDeviceUnsupported", err)
	}
}

func TestOutputSurfaceGetBits(t *testing.T) {
	d := New()
	h, err := d.CreateOutputSurface(ports.RGBAFormatB8G8R8A8, 2, 1)
	if err != nil {
		t.Fatalf("CreateOutputSurface: %v", err)
	}
	s := d.outputs.Resolve(0)
	copy(s.frame.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8}) // two RGBA pixels

	dst := make([]byte, 8)
	rect := ports.Rect{X0: 0, Y0: 0, X1: 2, Y1: 1}
	if err := d.OutputSurfaceGetBits(h, rect, dst, 8); err != nil {
		t.Fatalf("OutputSurfaceGetBits: %v", err)
	}
	// B8G8R8A8 swizzles each pixel to B,G,R,A.
	want := []byte{3, 2, 1, 4, 7, 6, 5, 8}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst = % x, want % x", dst, want)
		}
	}
}

func TestMixerRender(t *testing.T) {
	d := New()
	video := testFrame(t, d)
	out, err := d.CreateOutputSurface(ports.RGBAFormatR8G8B8A8, 4, 2)
	if err != nil {
		t.Fatalf("CreateOutputSurface: %v", err)
	}
	m, err := d.CreateMixer(4, 2)
	if err != nil {
		t.Fatalf("CreateMixer: %v", err)
	}

	rect := ports.Rect{X0: 0, Y0: 0, X1: 4, Y1: 2}
	if err := d.MixerRender(m, video, out, rect); err != nil {
		t.Fatalf("MixerRender: %v", err)
	}

	// The composited target must be opaque and non-black.
	got := d.outputs.Resolve(0).frame
	nonZero := false
	for i := 0; i < len(got.Pix); i += 4 {
		if got.Pix[i+3] != 0xFF {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, got.Pix[i+3])
		}
		if got.Pix[i] != 0 || got.Pix[i+1] != 0 || got.Pix[i+2] != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("composited frame is all black")
	}
}

func TestMixerRenderInvalidHandles(t *testing.T) {
	d := New()
	rect := ports.Rect{X1: 4, Y1: 2}
	if err := d.MixerRender(0, 0, 0, rect); !errors.Is(err, ports.ErrDeviceInvalidHandle) {
		t.Fatalf("err = %v, want ErrDeviceInvalidHandle", err)
	}
}

func TestUploadVideoSurface(t *testing.T) {
	d := New()
	h, err := d.CreateVideoSurface(ports.ChromaType420, 2, 2)
	if err != nil {
		t.Fatalf("CreateVideoSurface: %v", err)
	}

	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255 // pure red
		src.Pix[i+3] = 255
	}
	if err := d.UploadVideoSurface(h, src); err != nil {
		t.Fatalf("UploadVideoSurface: %v", err)
	}

	s := d.videos.Resolve(0)
	// Red in BT.601: luma ~76, Cr well above neutral 128.
	if s.frame.Y[0] < 60 || s.frame.Y[0] > 90 {
		t.Errorf("Y = %d, want ~76", s.frame.Y[0])
	}
	if s.frame.Cr[0] <= 128 {
		t.Errorf("Cr = %d, want > 128", s.frame.Cr[0])
	}
}

func TestDestroyTwice(t *testing.T) {
	d := New()
	h, _ := d.CreateVideoSurface(ports.ChromaType420, 4, 2)
	if err := d.DestroyVideoSurface(h); err != nil {
		t.Fatalf("DestroyVideoSurface: %v", err)
	}
	if err := d.DestroyVideoSurface(h); !errors.Is(err, ports.ErrDeviceInvalidHandle) {
		t.Fatalf("second destroy err = %v, want ErrDeviceInvalidHandle", err)
	}
}

package driver

import (
	"errors"
	"testing"

	"github.com/user/vidbridge/pkg/fourcc"
	"github.com/user/vidbridge/pkg/imageformat"
	"github.com/user/vidbridge/pkg/mocks"
	"github.com/user/vidbridge/pkg/ports"
)

func formatFor(t *testing.T, code fourcc.FourCC) *imageformat.Format {
	t.Helper()
	for _, e := range imageformat.Entries() {
		if e.Format.FourCC == code {
			f := e.Format
			return &f
		}
	}
	t.Fatalf("no table entry for %s", code)
	return nil
}

func ceil2(v uint32) uint32 { return (v + 1) / 2 }

func TestCreateImageNV12(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
	}{
		{"even", 320, 240},
		{"odd", 321, 241},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(&mocks.Device{}, &mocks.BufferManager{}, nil)

			info, err := d.CreateImage(formatFor(t, fourcc.NV12), tt.width, tt.height)
			if err != nil {
				t.Fatalf("CreateImage: %v", err)
			}

			if info.NumPlanes != 2 {
				t.Errorf("NumPlanes = %d, want 2", info.NumPlanes)
			}
			if info.Pitches[0] != tt.width || info.Pitches[1] != tt.width {
				t.Errorf("Pitches = %v, want both %d", info.Pitches, tt.width)
			}
			if info.Offsets[0] != 0 || info.Offsets[1] != tt.width*tt.height {
				t.Errorf("Offsets = %v", info.Offsets)
			}
			want := tt.width*tt.height + 2*ceil2(tt.width)*ceil2(tt.height)
			if info.DataSize != want {
				t.Errorf("DataSize = %d, want %d", info.DataSize, want)
			}
		})
	}
}

func TestCreateImageYV12(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
	}{
		{"even", 320, 240},
		{"odd", 321, 241},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(&mocks.Device{}, &mocks.BufferManager{}, nil)

			info, err := d.CreateImage(formatFor(t, fourcc.YV12), tt.width, tt.height)
			if err != nil {
				t.Fatalf("CreateImage: %v", err)
			}

			size := tt.width * tt.height
			width2 := ceil2(tt.width)
			size2 := width2 * ceil2(tt.height)

			if info.NumPlanes != 3 {
				t.Errorf("NumPlanes = %d, want 3", info.NumPlanes)
			}
			if info.Pitches != [3]uint32{tt.width, width2, width2} {
				t.Errorf("Pitches = %v", info.Pitches)
			}
			// Portable plane 1 sits after portable plane 2 in storage.
			if info.Offsets != [3]uint32{0, size + size2, size} {
				t.Errorf("Offsets = %v", info.Offsets)
			}
			if info.DataSize != size+2*size2 {
				t.Errorf("DataSize = %d, want %d", info.DataSize, size+2*size2)
			}

			// Plane byte ranges must not overlap and must stay inside
			// DataSize.
			heights := [3]uint32{tt.height, ceil2(tt.height), ceil2(tt.height)}
			type extent struct{ lo, hi uint32 }
			var extents []extent
			for i := 0; i < 3; i++ {
				extents = append(extents, extent{
					info.Offsets[i],
					info.Offsets[i] + info.Pitches[i]*heights[i],
				})
			}
			for i, a := range extents {
				if a.hi > info.DataSize {
					t.Errorf("plane %d extends to %d, past DataSize %d", i, a.hi, info.DataSize)
				}
				for j, b := range extents {
					if i < j && a.lo < b.hi && b.lo < a.hi {
						t.Errorf("planes %d and %d overlap: %v %v", i, j, a, b)
					}
				}
			}
		})
	}
}

func TestCreateImagePacked(t *testing.T) {
	for _, code := range []fourcc.FourCC{fourcc.UYVY, fourcc.YUYV} {
		t.Run(code.String(), func(t *testing.T) {
			dev := &mocks.Device{}
			d := New(dev, &mocks.BufferManager{}, nil)

			info, err := d.CreateImage(formatFor(t, code), 160, 120)
			if err != nil {
				t.Fatalf("CreateImage: %v", err)
			}
			if info.NumPlanes != 1 {
				t.Errorf("NumPlanes = %d, want 1", info.NumPlanes)
			}
			if info.Pitches[0] != 160*4 {
				t.Errorf("Pitches[0] = %d, want %d", info.Pitches[0], 160*4)
			}
			if info.DataSize != 160*4*120 {
				t.Errorf("DataSize = %d, want %d", info.DataSize, 160*4*120)
			}
			// Raw packed YUV never allocates a composite surface.
			if len(dev.OutputSurfacesCreated) != 0 {
				t.Errorf("composite surfaces created: %v", dev.OutputSurfacesCreated)
			}
		})
	}
}

func TestCreateImageRGBA(t *testing.T) {
	dev := &mocks.Device{}
	d := New(dev, &mocks.BufferManager{}, nil)

	info, err := d.CreateImage(formatFor(t, fourcc.RGBA), 160, 120)
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if info.NumPlanes != 1 || info.Pitches[0] != 160*4 || info.DataSize != 160*4*120 {
		t.Errorf("layout = %d planes, pitch %d, size %d", info.NumPlanes, info.Pitches[0], info.DataSize)
	}
	if len(dev.OutputSurfacesCreated) != 1 {
		t.Fatalf("composite surfaces created = %d, want 1", len(dev.OutputSurfacesCreated))
	}

	if err := d.DestroyImage(info.ID); err != nil {
		t.Fatalf("DestroyImage: %v", err)
	}
	if len(dev.OutputSurfacesDestroyed) != 1 {
		t.Errorf("composite surfaces destroyed = %d, want 1", len(dev.OutputSurfacesDestroyed))
	}
}

func TestCreateImageRGBAMaskMismatch(t *testing.T) {
	dev := &mocks.Device{}
	d := New(dev, &mocks.BufferManager{}, nil)

	f := formatFor(t, fourcc.RGBA)
	f.GMask ^= 1
	if _, err := d.CreateImage(f, 160, 120); !errors.Is(err, ErrOperationFailed) {
		t.Fatalf("err = %v, want ErrOperationFailed", err)
	}
	if len(dev.OutputSurfacesCreated) != 0 {
		t.Errorf("composite surface leaked: %v", dev.OutputSurfacesCreated)
	}
}

func TestCreateImageUnknownFourCC(t *testing.T) {
	dev := &mocks.Device{}
	bufs := &mocks.BufferManager{}
	d := New(dev, bufs, nil)

	// AYUV is enumerable but not creatable, like any unknown code.
	for _, f := range []*imageformat.Format{
		formatFor(t, fourcc.AYUV),
		{FourCC: fourcc.Make('B', 'O', 'G', 'U')},
	} {
		if _, err := d.CreateImage(f, 64, 64); !errors.Is(err, ErrOperationFailed) {
			t.Errorf("%s: err = %v, want ErrOperationFailed", f.FourCC, err)
		}
	}
	if len(bufs.Created) != 0 {
		t.Errorf("buffers allocated: %v", bufs.Created)
	}
	if len(dev.OutputSurfacesCreated) != 0 {
		t.Errorf("composite surfaces allocated: %v", dev.OutputSurfacesCreated)
	}
}

func TestCreateImageBufferFailureRollsBack(t *testing.T) {
	dev := &mocks.Device{}
	calls := 0
	bufs := &mocks.BufferManager{
		CreateFunc: func(kind ports.BufferKind, size, count int, data []byte) (ports.BufferHandle, error) {
			calls++
			if calls == 1 {
				return ports.InvalidBufferHandle, ports.ErrBufferAllocation
			}
			return 7, nil
		},
	}
	d := New(dev, bufs, nil)

	_, err := d.CreateImage(formatFor(t, fourcc.RGBA), 64, 64)
	if !errors.Is(err, ErrAllocationFailed) {
		t.Fatalf("err = %v, want ErrAllocationFailed", err)
	}

	// The composite surface must be gone and the slot reusable.
	if len(dev.OutputSurfacesDestroyed) != 1 {
		t.Errorf("composite surfaces destroyed = %d, want 1", len(dev.OutputSurfacesDestroyed))
	}
	info, err := d.CreateImage(formatFor(t, fourcc.NV12), 64, 64)
	if err != nil {
		t.Fatalf("CreateImage after rollback: %v", err)
	}
	if info.ID != 0 {
		t.Errorf("slot not reused: got id %d, want 0", info.ID)
	}
}

func TestDestroyImageTwice(t *testing.T) {
	d := New(&mocks.Device{}, &mocks.BufferManager{}, nil)

	info, err := d.CreateImage(formatFor(t, fourcc.NV12), 64, 64)
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if err := d.DestroyImage(info.ID); err != nil {
		t.Fatalf("first DestroyImage: %v", err)
	}
	if err := d.DestroyImage(info.ID); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("second DestroyImage err = %v, want ErrInvalidImage", err)
	}
}

func TestQueryImageFormats(t *testing.T) {
	// The device supports NV12 readback and both RGBA layouts only.
	dev := &mocks.Device{
		QueryYCbCrCapsFunc: func(chroma ports.ChromaType, format ports.YCbCrFormat) (bool, error) {
			return format == ports.YCbCrFormatNV12, nil
		},
	}
	d := New(dev, &mocks.BufferManager{}, nil)

	count, err := d.QueryImageFormats(nil)
	if err != nil {
		t.Fatalf("count-only QueryImageFormats: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	dst := make([]imageformat.Format, imageformat.MaxFormats)
	n, err := d.QueryImageFormats(dst)
	if err != nil {
		t.Fatalf("QueryImageFormats: %v", err)
	}
	if n != count {
		t.Fatalf("two-call counts disagree: %d vs %d", n, count)
	}
	if dst[0].FourCC != fourcc.NV12 {
		t.Errorf("dst[0] = %s, want NV12", dst[0].FourCC)
	}
	for _, f := range dst[1:n] {
		if f.FourCC != fourcc.RGBA {
			t.Errorf("unexpected format %s", f.FourCC)
		}
	}
}

func TestQueryImageFormatsFailsClosed(t *testing.T) {
	dev := &mocks.Device{
		QueryYCbCrCapsFunc: func(ports.ChromaType, ports.YCbCrFormat) (bool, error) {
			return true, ports.ErrDeviceFailed
		},
		QueryRGBACapsFunc: func(ports.RGBAFormat) (bool, error) {
			return true, ports.ErrDeviceFailed
		},
	}
	d := New(dev, &mocks.BufferManager{}, nil)

	count, err := d.QueryImageFormats(nil)
	if err != nil {
		t.Fatalf("QueryImageFormats: %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0 when every capability query errors", count)
	}
}

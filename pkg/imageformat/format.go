// Package imageformat maps portable image format descriptors to the
// native device format enums.
package imageformat

import (
	"github.com/user/vidbridge/pkg/fourcc"
	"github.com/user/vidbridge/pkg/ports"
)

// ByteOrder is the byte order of a portable pixel format.
type ByteOrder int

const (
	// LSBFirst stores the lowest-order byte first in memory.
	LSBFirst ByteOrder = iota
	// MSBFirst stores the highest-order byte first in memory.
	MSBFirst
)

// Format is the portable image format descriptor exposed to the hosting
// runtime. The channel masks are meaningful for packed RGBA formats only.
type Format struct {
	FourCC       fourcc.FourCC
	ByteOrder    ByteOrder
	BitsPerPixel int
	Depth        int
	RMask        uint32
	GMask        uint32
	BMask        uint32
	AMask        uint32
}

// Class tags a format table entry with its semantic class.
type Class int

const (
	// ClassYCbCr is a chroma-subsampled or raw packed YUV format.
	ClassYCbCr Class = iota + 1
	// ClassRGBA is a packed 32-bit RGBA format.
	ClassRGBA
	// ClassIndexed is a paletted format. None are supported.
	ClassIndexed
)

// Entry is one row of the static format table.
type Entry struct {
	Class  Class
	YCbCr  ports.YCbCrFormat
	RGBA   ports.RGBAFormat
	Format Format
}

// MaxFormats caps the number of formats the table may advertise.
// Callers of enumeration entry points size their buffers with it.
const MaxFormats = 10

func yuv(native ports.YCbCrFormat, code fourcc.FourCC, order ByteOrder, bpp int) Entry {
	return Entry{
		Class: ClassYCbCr,
		YCbCr: native,
		RGBA:  ports.RGBAFormatInvalid,
		Format: Format{
			FourCC:       code,
			ByteOrder:    order,
			BitsPerPixel: bpp,
		},
	}
}

func rgb(native ports.RGBAFormat, code fourcc.FourCC, order ByteOrder, bpp, depth int, r, g, b, a uint32) Entry {
	return Entry{
		Class: ClassRGBA,
		YCbCr: ports.YCbCrFormatInvalid,
		RGBA:  native,
		Format: Format{
			FourCC:       code,
			ByteOrder:    order,
			BitsPerPixel: bpp,
			Depth:        depth,
			RMask:        r,
			GMask:        g,
			BMask:        b,
			AMask:        a,
		},
	}
}

// table is the build-time-constant list of supported formats, scanned
// linearly for both lookup directions.
var table = []Entry{
	yuv(ports.YCbCrFormatNV12, fourcc.NV12, LSBFirst, 12),
	yuv(ports.YCbCrFormatYV12, fourcc.YV12, LSBFirst, 12),
	yuv(ports.YCbCrFormatUYVY, fourcc.UYVY, LSBFirst, 16),
	yuv(ports.YCbCrFormatYUYV, fourcc.YUYV, LSBFirst, 16),
	yuv(ports.YCbCrFormatV8U8Y8A8, fourcc.AYUV, LSBFirst, 32),
	rgb(ports.RGBAFormatB8G8R8A8, fourcc.RGBA, LSBFirst, 32, 32,
		0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000),
	rgb(ports.RGBAFormatR8G8B8A8, fourcc.RGBA, LSBFirst, 32, 32,
		0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000),
}

func init() {
	// If this fires, MaxFormats needs to be bigger.
	if len(table) > MaxFormats {
		panic("imageformat: table exceeds MaxFormats")
	}
}

// Entries returns the static format table.
func Entries() []Entry {
	return table
}

// YCbCrFormatFor returns the native chroma format for a portable
// descriptor, matching on four-character code alone. It returns
// ports.YCbCrFormatInvalid when the code is unknown or zero; an
// unsupported format is an expected, recoverable condition for callers.
func YCbCrFormatFor(f Format) ports.YCbCrFormat {
	if f.FourCC == 0 {
		return ports.YCbCrFormatInvalid
	}
	for _, e := range table {
		if e.Class != ClassYCbCr {
			continue
		}
		if e.Format.FourCC == f.FourCC {
			return e.YCbCr
		}
	}
	return ports.YCbCrFormatInvalid
}

// RGBAFormatFor returns the native packed format for a portable
// descriptor. Every field participating in the match (four-character
// code, byte order and the three color channel masks) must agree
// bit-for-bit; any mismatch is a miss, returning ports.RGBAFormatInvalid.
func RGBAFormatFor(f Format) ports.RGBAFormat {
	for _, e := range table {
		if e.Class != ClassRGBA {
			continue
		}
		if e.Format.FourCC == f.FourCC &&
			e.Format.ByteOrder == f.ByteOrder &&
			e.Format.RMask == f.RMask &&
			e.Format.GMask == f.GMask &&
			e.Format.BMask == f.BMask {
			return e.RGBA
		}
	}
	return ports.RGBAFormatInvalid
}

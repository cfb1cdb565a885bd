package imageformat

import (
	"testing"

	"github.com/user/vidbridge/pkg/fourcc"
	"github.com/user/vidbridge/pkg/ports"
)

func TestYCbCrFormatFor(t *testing.T) {
	for _, e := range Entries() {
		if e.Class != ClassYCbCr {
			continue
		}
		if got := YCbCrFormatFor(e.Format); got != e.YCbCr {
			t.Errorf("%s: YCbCrFormatFor = %v, want %v", e.Format.FourCC, got, e.YCbCr)
		}
	}
}

func TestYCbCrFormatForMiss(t *testing.T) {
	if got := YCbCrFormatFor(Format{FourCC: fourcc.Make('X', 'X', 'X', 'X')}); got != ports.YCbCrFormatInvalid {
		t.Errorf("unknown fourcc: got %v, want invalid", got)
	}
	if got := YCbCrFormatFor(Format{}); got != ports.YCbCrFormatInvalid {
		t.Errorf("zero fourcc: got %v, want invalid", got)
	}
	// RGBA is not a chroma format even though it is in the table.
	rgba := Format{FourCC: fourcc.RGBA}
	if got := YCbCrFormatFor(rgba); got != ports.YCbCrFormatInvalid {
		t.Errorf("RGBA fourcc: got %v, want invalid", got)
	}
}

func TestRGBAFormatFor(t *testing.T) {
	for _, e := range Entries() {
		if e.Class != ClassRGBA {
			continue
		}
		if got := RGBAFormatFor(e.Format); got != e.RGBA {
			t.Errorf("masks %08x/%08x/%08x: RGBAFormatFor = %v, want %v",
				e.Format.RMask, e.Format.GMask, e.Format.BMask, got, e.RGBA)
		}
	}
}

func TestRGBAFormatForExactMatch(t *testing.T) {
	var base Format
	for _, e := range Entries() {
		if e.Class == ClassRGBA {
			base = e.Format
			break
		}
	}

	// Flipping any single matched field must produce a miss.
	mutations := map[string]func(f Format) Format{
		"fourcc":     func(f Format) Format { f.FourCC = fourcc.Make('R', 'G', 'B', 'X'); return f },
		"byte order": func(f Format) Format { f.ByteOrder = MSBFirst; return f },
		"red mask":   func(f Format) Format { f.RMask ^= 1; return f },
		"green mask": func(f Format) Format { f.GMask ^= 1; return f },
		"blue mask":  func(f Format) Format { f.BMask ^= 1; return f },
	}
	for name, mutate := range mutations {
		if got := RGBAFormatFor(mutate(base)); got != ports.RGBAFormatInvalid {
			t.Errorf("mutated %s: got %v, want invalid", name, got)
		}
	}
}

func TestTableWithinMaxFormats(t *testing.T) {
	if len(Entries()) > MaxFormats {
		t.Fatalf("table has %d entries, MaxFormats is %d", len(Entries()), MaxFormats)
	}
}

// Package fourcc defines four-character pixel format codes.
package fourcc

// FourCC is a 32-bit pixel layout tag, packed little-endian so that the
// first character occupies the lowest byte.
type FourCC uint32

// Make builds a FourCC from its four characters.
func Make(a, b, c, d byte) FourCC {
	return FourCC(a) | FourCC(b)<<8 | FourCC(c)<<16 | FourCC(d)<<24
}

// Supported four-character codes.
const (
	NV12 = FourCC('N' | 'V'<<8 | '1'<<16 | '2'<<24) // two-plane 4:2:0, interleaved chroma
	YV12 = FourCC('Y' | 'V'<<8 | '1'<<16 | '2'<<24) // three-plane 4:2:0, V before U
	UYVY = FourCC('U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24) // packed 4:2:2
	YUYV = FourCC('Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24) // packed 4:2:2
	AYUV = FourCC('A' | 'Y'<<8 | 'U'<<16 | 'V'<<24) // packed 4:4:4 with alpha
	RGBA = FourCC('R' | 'G'<<8 | 'B'<<16 | 'A'<<24) // packed 32-bit RGBA
)

// String returns the four characters of the code, or "????" for codes
// containing non-printable bytes.
func (f FourCC) String() string {
	var s [4]byte
	for i := range s {
		c := byte(f >> (8 * i))
		if c < 0x20 || c > 0x7e {
			return "????"
		}
		s[i] = c
	}
	return string(s[:])
}

// Parse converts a four-character string such as "NV12" into its code.
// The second result is false when the string is not exactly four
// printable characters.
func Parse(s string) (FourCC, bool) {
	if len(s) != 4 {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return 0, false
		}
	}
	return Make(s[0], s[1], s[2], s[3]), true
}

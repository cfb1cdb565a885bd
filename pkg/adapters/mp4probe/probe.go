// Package mp4probe reads video track geometry from MP4 containers.
package mp4probe

import (
	"errors"
	"fmt"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ErrNoVideoTrack is returned when the container has no video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track")

// Dimensions returns the width and height of the first video track.
func Dimensions(path string) (uint32, uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode mp4: %w", err)
	}
	return dimensionsFromFile(mp4File)
}

func dimensionsFromFile(f *mp4.File) (uint32, uint32, error) {
	if f.Moov == nil {
		return 0, 0, ErrNoVideoTrack
	}
	for _, trak := range f.Moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Tkhd == nil {
			continue
		}
		// Track header geometry is 16.16 fixed point.
		w := uint32(trak.Tkhd.Width >> 16)
		h := uint32(trak.Tkhd.Height >> 16)
		if w == 0 || h == 0 {
			continue
		}
		return w, h, nil
	}
	return 0, 0, ErrNoVideoTrack
}

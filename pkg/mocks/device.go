// Package mocks provides test doubles for the port interfaces.
package mocks

import (
	"github.com/user/vidbridge/pkg/ports"
)

// Device is a mock implementation of ports.Device. Unset function
// fields succeed: capability queries report support, creation returns
// sequential handles, copies do nothing.
type Device struct {
	QueryYCbCrCapsFunc       func(chroma ports.ChromaType, format ports.YCbCrFormat) (bool, error)
	QueryRGBACapsFunc        func(format ports.RGBAFormat) (bool, error)
	CreateVideoSurfaceFunc   func(chroma ports.ChromaType, width, height uint32) (ports.SurfaceHandle, error)
	DestroyVideoSurfaceFunc  func(surface ports.SurfaceHandle) error
	VideoSurfaceGetBitsFunc  func(surface ports.SurfaceHandle, format ports.YCbCrFormat, planes [][]byte, strides []int) error
	CreateOutputSurfaceFunc  func(format ports.RGBAFormat, width, height uint32) (ports.SurfaceHandle, error)
	DestroyOutputSurfaceFunc func(surface ports.SurfaceHandle) error
	OutputSurfaceGetBitsFunc func(surface ports.SurfaceHandle, rect ports.Rect, dst []byte, stride int) error
	CreateMixerFunc          func(width, height uint32) (ports.MixerHandle, error)
	DestroyMixerFunc         func(mixer ports.MixerHandle) error
	MixerRenderFunc          func(mixer ports.MixerHandle, src, dst ports.SurfaceHandle, rect ports.Rect) error

	// Recorded calls for verification
	OutputSurfacesCreated   []ports.SurfaceHandle
	OutputSurfacesDestroyed []ports.SurfaceHandle
	VideoSurfacesCreated    []ports.SurfaceHandle
	VideoSurfacesDestroyed  []ports.SurfaceHandle
	MixersCreated           []ports.MixerHandle
	MixersDestroyed         []ports.MixerHandle
	MixerRenderCalls        []MixerRenderCall
	VideoGetBitsCalls       []VideoGetBitsCall
	OutputGetBitsCalls      []OutputGetBitsCall

	nextSurface ports.SurfaceHandle
	nextMixer   ports.MixerHandle
}

// MixerRenderCall records a call to MixerRender.
type MixerRenderCall struct {
	Mixer ports.MixerHandle
	Src   ports.SurfaceHandle
	Dst   ports.SurfaceHandle
	Rect  ports.Rect
}

// VideoGetBitsCall records a call to VideoSurfaceGetBits.
type VideoGetBitsCall struct {
	Surface ports.SurfaceHandle
	Format  ports.YCbCrFormat
	Planes  [][]byte
	Strides []int
}

// OutputGetBitsCall records a call to OutputSurfaceGetBits.
type OutputGetBitsCall struct {
	Surface ports.SurfaceHandle
	Rect    ports.Rect
	Stride  int
}

func (m *Device) QueryYCbCrCaps(chroma ports.ChromaType, format ports.YCbCrFormat) (bool, error) {
	if m.QueryYCbCrCapsFunc != nil {
		return m.QueryYCbCrCapsFunc(chroma, format)
	}
	return true, nil
}

func (m *Device) QueryRGBACaps(format ports.RGBAFormat) (bool, error) {
	if m.QueryRGBACapsFunc != nil {
		return m.QueryRGBACapsFunc(format)
	}
	return true, nil
}

func (m *Device) CreateVideoSurface(chroma ports.ChromaType, width, height uint32) (ports.SurfaceHandle, error) {
	if m.CreateVideoSurfaceFunc != nil {
		h, err := m.CreateVideoSurfaceFunc(chroma, width, height)
		if err == nil {
			m.VideoSurfacesCreated = append(m.VideoSurfacesCreated, h)
		}
		return h, err
	}
	h := m.nextSurface
	m.nextSurface++
	m.VideoSurfacesCreated = append(m.VideoSurfacesCreated, h)
	return h, nil
}

func (m *Device) DestroyVideoSurface(surface ports.SurfaceHandle) error {
	m.VideoSurfacesDestroyed = append(m.VideoSurfacesDestroyed, surface)
	if m.DestroyVideoSurfaceFunc != nil {
		return m.DestroyVideoSurfaceFunc(surface)
	}
	return nil
}

func (m *Device) VideoSurfaceGetBits(surface ports.SurfaceHandle, format ports.YCbCrFormat, planes [][]byte, strides []int) error {
	m.VideoGetBitsCalls = append(m.VideoGetBitsCalls, VideoGetBitsCall{
		Surface: surface, Format: format, Planes: planes, Strides: strides,
	})
	if m.VideoSurfaceGetBitsFunc != nil {
		return m.VideoSurfaceGetBitsFunc(surface, format, planes, strides)
	}
	return nil
}

func (m *Device) CreateOutputSurface(format ports.RGBAFormat, width, height uint32) (ports.SurfaceHandle, error) {
	if m.CreateOutputSurfaceFunc != nil {
		h, err := m.CreateOutputSurfaceFunc(format, width, height)
		if err == nil {
			m.OutputSurfacesCreated = append(m.OutputSurfacesCreated, h)
		}
		return h, err
	}
	h := m.nextSurface
	m.nextSurface++
	m.OutputSurfacesCreated = append(m.OutputSurfacesCreated, h)
	return h, nil
}

func (m *Device) DestroyOutputSurface(surface ports.SurfaceHandle) error {
	m.OutputSurfacesDestroyed = append(m.OutputSurfacesDestroyed, surface)
	if m.DestroyOutputSurfaceFunc != nil {
		return m.DestroyOutputSurfaceFunc(surface)
	}
	return nil
}

func (m *Device) OutputSurfaceGetBits(surface ports.SurfaceHandle, rect ports.Rect, dst []byte, stride int) error {
	m.OutputGetBitsCalls = append(m.OutputGetBitsCalls, OutputGetBitsCall{
		Surface: surface, Rect: rect, Stride: stride,
	})
	if m.OutputSurfaceGetBitsFunc != nil {
		return m.OutputSurfaceGetBitsFunc(surface, rect, dst, stride)
	}
	return nil
}

func (m *Device) CreateMixer(width, height uint32) (ports.MixerHandle, error) {
	if m.CreateMixerFunc != nil {
		h, err := m.CreateMixerFunc(width, height)
		if err == nil {
			m.MixersCreated = append(m.MixersCreated, h)
		}
		return h, err
	}
	h := m.nextMixer
	m.nextMixer++
	m.MixersCreated = append(m.MixersCreated, h)
	return h, nil
}

func (m *Device) DestroyMixer(mixer ports.MixerHandle) error {
	m.MixersDestroyed = append(m.MixersDestroyed, mixer)
	if m.DestroyMixerFunc != nil {
		return m.DestroyMixerFunc(mixer)
	}
	return nil
}

func (m *Device) MixerRender(mixer ports.MixerHandle, src, dst ports.SurfaceHandle, rect ports.Rect) error {
	m.MixerRenderCalls = append(m.MixerRenderCalls, MixerRenderCall{
		Mixer: mixer, Src: src, Dst: dst, Rect: rect,
	})
	if m.MixerRenderFunc != nil {
		return m.MixerRenderFunc(mixer, src, dst, rect)
	}
	return nil
}

var _ ports.Device = (*Device)(nil)

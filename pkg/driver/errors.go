package driver

import (
	"errors"
	"fmt"

	"github.com/user/vidbridge/pkg/ports"
)

// Portable status errors returned by the bridge to the hosting runtime.
var (
	// ErrInvalidParameter is returned for null or out-of-range arguments,
	// including sub-rectangle readback requests.
	ErrInvalidParameter = errors.New("driver: invalid parameter")

	// ErrInvalidImage is returned when an image id does not resolve.
	ErrInvalidImage = errors.New("driver: invalid image")

	// ErrInvalidSurface is returned when a surface id does not resolve.
	ErrInvalidSurface = errors.New("driver: invalid surface")

	// ErrInvalidBuffer is returned when a buffer handle does not resolve.
	ErrInvalidBuffer = errors.New("driver: invalid buffer")

	// ErrInvalidContext is returned when a context id does not resolve.
	ErrInvalidContext = errors.New("driver: invalid context")

	// ErrAllocationFailed is returned when a slot or buffer cannot be
	// allocated.
	ErrAllocationFailed = errors.New("driver: allocation failed")

	// ErrOperationFailed is returned when the device rejects a request or
	// a format is unsupported.
	ErrOperationFailed = errors.New("driver: operation failed")

	// ErrNotImplemented is returned by stub entry points.
	ErrNotImplemented = errors.New("driver: not implemented")
)

// statusFromDevice translates a device-level error into a portable
// status error. Device failures map immediately, with no retry; anything
// unrecognized fails closed as ErrOperationFailed.
func statusFromDevice(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ports.ErrDeviceInvalidHandle),
		errors.Is(err, ports.ErrDeviceInvalidValue):
		return fmt.Errorf("%w: %s", ErrInvalidParameter, err)
	case errors.Is(err, ports.ErrDeviceResources):
		return fmt.Errorf("%w: %s", ErrAllocationFailed, err)
	default:
		return fmt.Errorf("%w: %s", ErrOperationFailed, err)
	}
}

package driver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/user/vidbridge/pkg/ports"
)

func TestStatusFromDevice(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"invalid handle", ports.ErrDeviceInvalidHandle, ErrInvalidParameter},
		{"invalid value", ports.ErrDeviceInvalidValue, ErrInvalidParameter},
		{"resources", ports.ErrDeviceResources, ErrAllocationFailed},
		{"unsupported", ports.ErrDeviceUnsupported, ErrOperationFailed},
		{"failed", ports.ErrDeviceFailed, ErrOperationFailed},
		{"unknown", errors.New("something else"), ErrOperationFailed},
		{"wrapped", fmt.Errorf("surface 3: %w", ports.ErrDeviceResources), ErrAllocationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusFromDevice(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("statusFromDevice(nil) = %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("statusFromDevice(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

package scan

import (
	"context"
)

// Capability is the tri-state answer to "can this installation scan
// barcodes right now".
type Capability string

const (
	CapabilitySupported         Capability = "supported"
	CapabilityUnsupported       Capability = "unsupported"
	CapabilityPermissionPending Capability = "permission_pending"
)

type FacingMode string

const (
	FacingEnvironment FacingMode = "environment"
	FacingUser        FacingMode = "user"
)

// CaptureDevice abstracts the camera/decoder hardware. Implementations
// must tolerate Stop followed by Start within one session, and Stop must
// release the device no matter how the session ends.
type CaptureDevice interface {
	Capability(ctx context.Context) Capability
	Start(ctx context.Context, facing FacingMode) error
	Barcodes() <-chan string
	Stop() error
}

// nopDevice stands in when no camera hardware is attached to the hub;
// decoded barcodes then arrive only through the HTTP surface.
type nopDevice struct{}

func NewNopDevice() CaptureDevice {
	return nopDevice{}
}

func (nopDevice) Capability(context.Context) Capability { return CapabilityUnsupported }

func (nopDevice) Start(context.Context, FacingMode) error { return nil }

func (nopDevice) Barcodes() <-chan string {
	ch := make(chan string)
	close(ch)
	return ch
}

func (nopDevice) Stop() error { return nil }

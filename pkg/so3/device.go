package so3

import "fmt"

// DeviceKind identifies a class of compute device.
type DeviceKind int

const (
	// CPU is host memory; the zero value and the only kind this package
	// computes on directly.
	CPU DeviceKind = iota
	// CUDA identifies an NVIDIA GPU managed by the caller.
	CUDA
	// Metal identifies an Apple GPU managed by the caller.
	Metal
)

// String returns the lowercase kind name.
func (k DeviceKind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case CUDA:
		return "cuda"
	case Metal:
		return "metal"
	default:
		return fmt.Sprintf("devicekind(%d)", int(k))
	}
}

// Device identifies a compute location. It participates in the transform
// matrix cache key: the same (bandwidth, grid) on two devices yields two
// numerically identical but physically distinct cache entries, so callers
// that mirror matrices onto accelerators keep one host copy per device.
// The zero value is cpu:0.
type Device struct {
	Kind  DeviceKind
	Index int
}

// String formats the device as "kind:index".
func (d Device) String() string {
	return fmt.Sprintf("%s:%d", d.Kind, d.Index)
}

// Package cpu implements the host CPU backend on top of gonum's BLAS
// routines.
package cpu

import (
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/zencoding/mshadow/internal/tensor"
)

// Backend implements the dense linear-algebra kernels on the host CPU.
// The zero value is not usable; construct with New.
type Backend struct {
	device tensor.Device
	blas   gonum.Implementation
}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *Backend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *Backend) Device() tensor.Device {
	return cpu.device
}

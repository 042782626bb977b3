//go:build windows

// Copyright 2026 The mshadow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU accelerator backend.
//
// Dot-product kernels run as WGSL compute shaders via go-webgpu's zero-CGO
// bindings. Kernel calls are fully synchronous: operand upload, dispatch,
// and result readback complete inside the call, so the destination tensor
// is valid as soon as an evaluation returns. float32 only.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Release()
//
//	a := tensor.Ones[float32](tensor.Shape{64, 64}, gpu)
package webgpu

import (
	internalwebgpu "github.com/zencoding/mshadow/internal/backend/webgpu"
	"github.com/zencoding/mshadow/tensor"
)

// Backend implements the dense linear-algebra kernels on a WebGPU device.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new WebGPU backend.
//
// This function initializes the WebGPU device and returns a backend ready
// for tensor operations. Call Release() when done to free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system.
//
// Useful for graceful fallback to the CPU backend when no compatible GPU
// and drivers are present.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

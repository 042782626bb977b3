// Copyright 2026 The mshadow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor container for the mshadow expression
// engine.
//
// # Overview
//
// Tensors are views over flat row-major buffers with a shape, strides, an
// element type, and a device tag. The package provides:
//   - Generic device-anchored tensors (Tensor[T, B])
//   - The Backend interface supplying dense linear-algebra kernels
//   - Shape, DataType, Device core type definitions
//
// # Basic Usage
//
//	import (
//	    "github.com/zencoding/mshadow/backend/cpu"
//	    "github.com/zencoding/mshadow/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    b := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    _ = a.At(1, 2)
//	    _ = b
//	}
//
// # Device Support
//
// The backend type parameter is part of a tensor's static type, so the
// device a tensor lives on is resolved at compile time:
//   - CPU: gonum BLAS kernels
//   - WebGPU: zero-CGO GPU kernels (Windows)
//
// Tensor computation itself lives in the expr package: expressions over
// tensors are composed lazily and evaluated in a single pass.
package tensor

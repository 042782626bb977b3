// Copyright 2026 The mshadow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the host CPU backend.
//
// The CPU backend executes dot-product kernels through gonum's BLAS
// implementation (gonum.org/v1/gonum/blas/gonum): gemm for matrix
// products, gemv for vector-matrix products, and ger for outer products,
// for both float32 and float64 tensors.
//
// Example:
//
//	backend := cpu.New()
//	a := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
package cpu

import (
	internalcpu "github.com/zencoding/mshadow/internal/backend/cpu"
	"github.com/zencoding/mshadow/tensor"
)

// Backend implements the dense linear-algebra kernels on the host CPU.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}

// Copyright 2026 The mshadow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides lazy tensor expressions: compositions over tensors
// build unevaluated trees that are compiled into a single fused evaluation
// pass, with dot products dispatched to device-specific linear-algebra
// kernels. No intermediate tensor is ever materialized.
//
// # Basic Usage
//
//	import (
//	    "github.com/zencoding/mshadow/backend/cpu"
//	    "github.com/zencoding/mshadow/expr"
//	    "github.com/zencoding/mshadow/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.FromSlice([]float32{1, 1, 1, 1}, tensor.Shape{2, 2}, backend)
//	    b, _ := tensor.FromSlice([]float32{2, 2, 2, 2}, tensor.Shape{2, 2}, backend)
//	    dst := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
//
//	    // dst = a + b*2, fused into one pass
//	    expr.Assign(dst, expr.Add(expr.Ref(a), expr.MulScalar(expr.Ref(b), 2)))
//
//	    // dst = dot(a, b) * 0.5, dispatched to the backend gemm
//	    expr.Assign(dst, expr.Dot(a, b).Scale(0.5))
//	}
//
// # Compatibility
//
// All tensors in one expression must share the destination's device and
// rank. The device is enforced by the type system (the backend type is a
// type parameter of every expression); rank and shape are asserted when an
// expression is evaluated. A shape mismatch panics with
// *IncompatibleShapeError before the destination is touched. These are
// programming-error contracts, not recoverable conditions.
package expr

package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"

	"github.com/zencoding/mshadow/internal/tensor"
)

// Gemm computes dst = scale * op(lhs) @ op(rhs) with a general
// matrix-multiply. The effective row/column counts are derived from the
// transpose flags: a transposed operand swaps its logical extents before
// they are passed to BLAS. Leading dimensions follow the row-major storage
// of the tensors. The accumulate coefficient is zero: the destination is
// overwritten, never accumulated into.
func (cpu *Backend) Gemm(dst, lhs, rhs *tensor.RawTensor, transLHS, transRHS bool, scale float64) {
	if lhs.Rank() != 2 || rhs.Rank() != 2 || dst.Rank() != 2 {
		panic(fmt.Sprintf("gemm: rank-2 operands required, got dst %dD, lhs %dD, rhs %dD", dst.Rank(), lhs.Rank(), rhs.Rank()))
	}
	if lhs.DType() != dst.DType() || rhs.DType() != dst.DType() {
		panic(fmt.Sprintf("gemm: mixed dtypes %s, %s, %s", dst.DType(), lhs.DType(), rhs.DType()))
	}

	opLHS, opRHS := blas.NoTrans, blas.NoTrans
	m, k := lhs.Shape()[0], lhs.Shape()[1]
	if transLHS {
		opLHS = blas.Trans
		m, k = k, m
	}
	kAlt, n := rhs.Shape()[0], rhs.Shape()[1]
	if transRHS {
		opRHS = blas.Trans
		kAlt, n = n, kAlt
	}

	if k != kAlt {
		panic(fmt.Sprintf("gemm: inner extents differ: op(lhs) is %dx%d, op(rhs) is %dx%d", m, k, kAlt, n))
	}
	if !dst.Shape().Equal(tensor.Shape{m, n}) {
		panic(fmt.Sprintf("gemm: destination shape %v, want [%d %d]", dst.Shape(), m, n))
	}

	// Leading dimensions come from the stored (un-transposed) layout.
	lda, ldb, ldc := lhs.Shape()[1], rhs.Shape()[1], n

	switch dst.DType() {
	case tensor.Float32:
		cpu.blas.Sgemm(opLHS, opRHS, m, n, k, float32(scale),
			lhs.AsFloat32(), lda, rhs.AsFloat32(), ldb, 0, dst.AsFloat32(), ldc)
	case tensor.Float64:
		cpu.blas.Dgemm(opLHS, opRHS, m, n, k, scale,
			lhs.AsFloat64(), lda, rhs.AsFloat64(), ldb, 0, dst.AsFloat64(), ldc)
	default:
		panic(fmt.Sprintf("gemm: unsupported dtype %s", dst.DType()))
	}
}

// Gemv computes dst = scale * vec @ op(mat): a row vector times a matrix.
// Expressed through BLAS gemv as dst = scale * op(mat)^T @ vec, so the
// transpose directive passed down is the inverse of the expression's flag.
func (cpu *Backend) Gemv(dst, vec, mat *tensor.RawTensor, transMat bool, scale float64) {
	if dst.Rank() != 1 || vec.Rank() != 1 || mat.Rank() != 2 {
		panic(fmt.Sprintf("gemv: want dst 1D, vec 1D, mat 2D, got %dD, %dD, %dD", dst.Rank(), vec.Rank(), mat.Rank()))
	}
	if vec.DType() != dst.DType() || mat.DType() != dst.DType() {
		panic(fmt.Sprintf("gemv: mixed dtypes %s, %s, %s", dst.DType(), vec.DType(), mat.DType()))
	}

	rows, cols := mat.Shape()[0], mat.Shape()[1]
	op := blas.Trans
	vecLen, dstLen := rows, cols
	if transMat {
		op = blas.NoTrans
		vecLen, dstLen = cols, rows
	}

	if vec.Shape()[0] != vecLen {
		panic(fmt.Sprintf("gemv: vector length %d, op(mat) has %d rows", vec.Shape()[0], vecLen))
	}
	if dst.Shape()[0] != dstLen {
		panic(fmt.Sprintf("gemv: destination length %d, op(mat) has %d columns", dst.Shape()[0], dstLen))
	}

	switch dst.DType() {
	case tensor.Float32:
		cpu.blas.Sgemv(op, rows, cols, float32(scale),
			mat.AsFloat32(), cols, vec.AsFloat32(), 1, 0, dst.AsFloat32(), 1)
	case tensor.Float64:
		cpu.blas.Dgemv(op, rows, cols, scale,
			mat.AsFloat64(), cols, vec.AsFloat64(), 1, 0, dst.AsFloat64(), 1)
	default:
		panic(fmt.Sprintf("gemv: unsupported dtype %s", dst.DType()))
	}
}

// Ger computes the outer product dst = scale * col @ row. BLAS ger
// accumulates into its destination, so the destination is cleared first to
// preserve the overwrite contract.
func (cpu *Backend) Ger(dst, col, row *tensor.RawTensor, scale float64) {
	if dst.Rank() != 2 || col.Rank() != 1 || row.Rank() != 1 {
		panic(fmt.Sprintf("ger: want dst 2D, col 1D, row 1D, got %dD, %dD, %dD", dst.Rank(), col.Rank(), row.Rank()))
	}
	if col.DType() != dst.DType() || row.DType() != dst.DType() {
		panic(fmt.Sprintf("ger: mixed dtypes %s, %s, %s", dst.DType(), col.DType(), row.DType()))
	}

	m, n := col.Shape()[0], row.Shape()[0]
	if !dst.Shape().Equal(tensor.Shape{m, n}) {
		panic(fmt.Sprintf("ger: destination shape %v, want [%d %d]", dst.Shape(), m, n))
	}

	switch dst.DType() {
	case tensor.Float32:
		out := dst.AsFloat32()
		clear(out)
		cpu.blas.Sger(m, n, float32(scale), col.AsFloat32(), 1, row.AsFloat32(), 1, out, n)
	case tensor.Float64:
		out := dst.AsFloat64()
		clear(out)
		cpu.blas.Dger(m, n, scale, col.AsFloat64(), 1, row.AsFloat64(), 1, out, n)
	default:
		panic(fmt.Sprintf("ger: unsupported dtype %s", dst.DType()))
	}
}

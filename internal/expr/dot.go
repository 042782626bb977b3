package expr

import (
	"fmt"

	"github.com/zencoding/mshadow/internal/tensor"
)

// evalDot routes a dot expression to the device kernel matching its
// (destination rank, operand ranks, transpose flags) combination.
//
// Supported forms:
//   - matrix @ matrix -> matrix, any transpose combination (Gemm)
//   - vector @ matrix -> vector, left never transposed (Gemv)
//   - vector.T @ vector -> matrix, outer product (Ger)
//
// Anything else panics: an unsupported combination must fail loudly
// rather than silently compute a wrong result.
func evalDot[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], d *DotExpr[T, B]) {
	if d.lhs.Device() != dst.Device() || d.rhs.Device() != dst.Device() {
		panic(fmt.Sprintf("expr: dot operands on %s/%s, target on %s: all tensors in an expression must share the target device",
			d.lhs.Device(), d.rhs.Device(), dst.Device()))
	}

	b := dst.Backend()
	scale := float64(d.scale)

	switch {
	case dst.Rank() == 2 && d.lhs.Rank() == 2 && d.rhs.Rank() == 2:
		b.Gemm(dst.Raw(), d.lhs.Raw(), d.rhs.Raw(), d.transLHS, d.transRHS, scale)
	case dst.Rank() == 1 && d.lhs.Rank() == 1 && d.rhs.Rank() == 2 && !d.transLHS:
		b.Gemv(dst.Raw(), d.lhs.Raw(), d.rhs.Raw(), d.transRHS, scale)
	case dst.Rank() == 2 && d.lhs.Rank() == 1 && d.rhs.Rank() == 1 && d.transLHS && !d.transRHS:
		b.Ger(dst.Raw(), d.lhs.Raw(), d.rhs.Raw(), scale)
	default:
		panic(fmt.Sprintf("expr: unsupported dot configuration: dst rank %d, lhs rank %d (transposed=%t), rhs rank %d (transposed=%t)",
			dst.Rank(), d.lhs.Rank(), d.transLHS, d.rhs.Rank(), d.transRHS))
	}
}

package expr

import (
	"fmt"

	"github.com/zencoding/mshadow/internal/tensor"
)

// checkDeviceRank folds over the expression tree and verifies that every
// tensor leaf is anchored to the destination's device and rank. Scalars
// always pass; maps pass iff their operands pass.
//
// The backend type parameter already rules out cross-device composition at
// compile time; this assertion covers the rank, which Go cannot carry in
// the type. A violation is a caller-side composition bug and panics.
func checkDeviceRank[T tensor.DType, B tensor.Backend](e Expr[T, B], dev tensor.Device, rank int) {
	switch n := e.(type) {
	case *TensorRef[T, B]:
		if n.t.Device() != dev {
			panic(fmt.Sprintf("expr: operand on %s, target on %s: all tensors in an expression must share the target device", n.t.Device(), dev))
		}
		if n.t.Rank() != rank {
			panic(fmt.Sprintf("expr: operand rank %d, target rank %d: all tensors in an expression must share the target rank", n.t.Rank(), rank))
		}
	case *ScalarExpr[T, B]:
	case *UnaryExpr[T, B]:
		checkDeviceRank(n.src, dev, rank)
	case *BinaryExpr[T, B]:
		checkDeviceRank(n.lhs, dev, rank)
		checkDeviceRank(n.rhs, dev, rank)
	default:
		panic(fmt.Sprintf("expr: %T is not an elementwise-mappable expression", e))
	}
}

// mismatchedShape walks the expression tree and returns the shape of the
// first tensor leaf that differs from the target shape, or nil when every
// leaf matches. Scalars trivially match.
func mismatchedShape[T tensor.DType, B tensor.Backend](e Expr[T, B], shape tensor.Shape) tensor.Shape {
	switch n := e.(type) {
	case *TensorRef[T, B]:
		if !n.t.Shape().Equal(shape) {
			return n.t.Shape()
		}
	case *UnaryExpr[T, B]:
		return mismatchedShape(n.src, shape)
	case *BinaryExpr[T, B]:
		if bad := mismatchedShape(n.lhs, shape); bad != nil {
			return bad
		}
		return mismatchedShape(n.rhs, shape)
	}
	return nil
}

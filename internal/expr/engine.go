package expr

import (
	"github.com/zencoding/mshadow/internal/tensor"
)

// MapExpr evaluates e into dst through the saver policy sv.
//
// Elementwise-mappable expressions run the device/rank assertion, then the
// shape check (panicking with *IncompatibleShapeError before any
// destination write on failure), then compile to a plan handed to the
// per-coordinate executor. Dot expressions forward to the backend's
// linear-algebra kernels; their shape compatibility is the kernel's
// responsibility and they always overwrite the destination.
func MapExpr[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B], sv Saver[T]) {
	switch e.Kind() {
	case KindDot:
		if _, ok := sv.(SaveTo[T]); !ok {
			panic("expr: dot expressions support assignment only, not accumulation")
		}
		evalDot(dst, e.(*DotExpr[T, B]))
	default:
		checkDeviceRank(e, dst.Device(), dst.Rank())
		if bad := mismatchedShape(e, dst.Shape()); bad != nil {
			panic(&IncompatibleShapeError{Dst: dst.Shape().Clone(), Operand: bad.Clone()})
		}
		mapPlan(dst, makePlan(e), sv)
	}
}

// Assign evaluates e and overwrites dst: dst = e.
func Assign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	MapExpr(dst, e, SaveTo[T]{})
}

// AddAssign evaluates e and accumulates into dst: dst += e.
func AddAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	MapExpr(dst, e, PlusTo[T]{})
}

// SubAssign evaluates e and subtracts from dst: dst -= e.
func SubAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	MapExpr(dst, e, MinusTo[T]{})
}

// MulAssign evaluates e and multiplies into dst: dst *= e.
func MulAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	MapExpr(dst, e, MultTo[T]{})
}

// DivAssign evaluates e and divides into dst: dst /= e.
func DivAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	MapExpr(dst, e, DivTo[T]{})
}

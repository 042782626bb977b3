package expr

import (
	"fmt"

	"github.com/zencoding/mshadow/internal/tensor"
)

// IncompatibleShapeError is the panic value raised when a tensor operand's
// shape does not equal the destination's shape in an elementwise
// evaluation. It reflects a caller-side composition bug, not a recoverable
// condition: the evaluation aborts before any destination write or kernel
// dispatch, and there is no retry or partial result.
type IncompatibleShapeError struct {
	Dst     tensor.Shape
	Operand tensor.Shape
}

func (e *IncompatibleShapeError) Error() string {
	return fmt.Sprintf("expr: operand shape %v is not consistent with target shape %v", e.Operand, e.Dst)
}

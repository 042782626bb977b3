package expr

import (
	"fmt"

	"github.com/zencoding/mshadow/internal/tensor"
)

// Plan is the compiled, per-coordinate evaluable form of an expression.
// Eval returns the expression's value at destination coordinate (y, x) in
// constant time with no allocation. Plans are pure and reentrant:
// evaluating the same coordinate twice yields the same value and has no
// side effect.
type Plan[T tensor.DType] interface {
	Eval(y, x int) T
}

type leafPlan[T tensor.DType] struct {
	data   []T
	stride int
}

func (p leafPlan[T]) Eval(y, x int) T {
	return p.data[y*p.stride+x]
}

type scalarPlan[T tensor.DType] struct {
	value T
}

func (p scalarPlan[T]) Eval(int, int) T {
	return p.value
}

type unaryPlan[T tensor.DType] struct {
	op  func(T) T
	src Plan[T]
}

func (p unaryPlan[T]) Eval(y, x int) T {
	return p.op(p.src.Eval(y, x))
}

type binaryPlan[T tensor.DType] struct {
	op       func(T, T) T
	lhs, rhs Plan[T]
}

func (p binaryPlan[T]) Eval(y, x int) T {
	return p.op(p.lhs.Eval(y, x), p.rhs.Eval(y, x))
}

// makePlan compiles an elementwise-mappable expression into a plan.
// Compilation is purely structural: leaves bind directly to the underlying
// buffer and row stride, maps nest their operands' plans. No intermediate
// tensor is ever materialized.
func makePlan[T tensor.DType, B tensor.Backend](e Expr[T, B]) Plan[T] {
	switch n := e.(type) {
	case *TensorRef[T, B]:
		return leafPlan[T]{data: n.t.Data(), stride: n.t.Raw().RowStride()}
	case *ScalarExpr[T, B]:
		return scalarPlan[T]{value: n.value}
	case *UnaryExpr[T, B]:
		return unaryPlan[T]{op: n.op, src: makePlan(n.src)}
	case *BinaryExpr[T, B]:
		return binaryPlan[T]{op: n.op, lhs: makePlan(n.lhs), rhs: makePlan(n.rhs)}
	default:
		panic(fmt.Sprintf("expr: cannot compile %T into a plan", e))
	}
}

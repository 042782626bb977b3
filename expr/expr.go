// Copyright 2026 The mshadow Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/zencoding/mshadow/internal/expr"
	"github.com/zencoding/mshadow/tensor"
)

// Type aliases for public API

// Kind classifies an expression for engine dispatch.
type Kind = expr.Kind

// Kind constants.
const (
	KindContainer Kind = expr.KindContainer
	KindMapper    Kind = expr.KindMapper
	KindDot       Kind = expr.KindDot
)

// Expr is a composable, unevaluated description of a tensor computation.
type Expr[T tensor.DType, B tensor.Backend] = expr.Expr[T, B]

// TensorRef is a leaf expression referring to a tensor.
type TensorRef[T tensor.DType, B tensor.Backend] = expr.TensorRef[T, B]

// ScalarExpr is a constant leaf, compatible with any expression.
type ScalarExpr[T tensor.DType, B tensor.Backend] = expr.ScalarExpr[T, B]

// UnaryExpr applies an operator elementwise to one sub-expression.
type UnaryExpr[T tensor.DType, B tensor.Backend] = expr.UnaryExpr[T, B]

// BinaryExpr combines two sub-expressions elementwise.
type BinaryExpr[T tensor.DType, B tensor.Backend] = expr.BinaryExpr[T, B]

// DotExpr represents a scaled matrix/vector product.
type DotExpr[T tensor.DType, B tensor.Backend] = expr.DotExpr[T, B]

// Plan is the compiled, per-coordinate evaluable form of an expression.
type Plan[T tensor.DType] = expr.Plan[T]

// Saver specifies how a computed value is written into the destination.
type Saver[T tensor.DType] = expr.Saver[T]

// Saver policies.
type (
	// SaveTo overwrites the destination element.
	SaveTo[T tensor.DType] = expr.SaveTo[T]
	// PlusTo accumulates into the destination element.
	PlusTo[T tensor.DType] = expr.PlusTo[T]
	// MinusTo subtracts from the destination element.
	MinusTo[T tensor.DType] = expr.MinusTo[T]
	// MultTo multiplies the destination element.
	MultTo[T tensor.DType] = expr.MultTo[T]
	// DivTo divides the destination element.
	DivTo[T tensor.DType] = expr.DivTo[T]
)

// IncompatibleShapeError is the panic value raised when an operand's shape
// does not equal the destination's shape.
type IncompatibleShapeError = expr.IncompatibleShapeError

// Composition operators

// Ref wraps a tensor as a leaf expression.
func Ref[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) *TensorRef[T, B] {
	return expr.Ref(t)
}

// Scalar wraps a constant as a leaf expression.
func Scalar[T tensor.DType, B tensor.Backend](v T) *ScalarExpr[T, B] {
	return expr.Scalar[T, B](v)
}

// Add builds lhs + rhs, elementwise.
func Add[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return expr.Add(lhs, rhs)
}

// Sub builds lhs - rhs, elementwise.
func Sub[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return expr.Sub(lhs, rhs)
}

// Mul builds lhs * rhs, elementwise.
func Mul[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return expr.Mul(lhs, rhs)
}

// Div builds lhs / rhs, elementwise.
func Div[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return expr.Div(lhs, rhs)
}

// Neg builds -src, elementwise.
func Neg[T tensor.DType, B tensor.Backend](src Expr[T, B]) *UnaryExpr[T, B] {
	return expr.Neg(src)
}

// F builds fn(src), applying a custom map elementwise.
func F[T tensor.DType, B tensor.Backend](fn func(T) T, src Expr[T, B]) *UnaryExpr[T, B] {
	return expr.F(fn, src)
}

// F2 builds fn(lhs, rhs), applying a custom binary map elementwise.
func F2[T tensor.DType, B tensor.Backend](fn func(T, T) T, lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return expr.F2(fn, lhs, rhs)
}

// AddScalar builds e + v, elementwise.
func AddScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return expr.AddScalar(e, v)
}

// SubScalar builds e - v, elementwise.
func SubScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return expr.SubScalar(e, v)
}

// MulScalar builds e * v, elementwise.
func MulScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return expr.MulScalar(e, v)
}

// DivScalar builds e / v, elementwise.
func DivScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return expr.DivScalar(e, v)
}

// Dot builds a dot-product expression with no transposes and unit scale.
// Use TransposeLeft, TransposeRight, and Scale on the result to adjust.
func Dot[T tensor.DType, B tensor.Backend](lhs, rhs *tensor.Tensor[T, B]) *DotExpr[T, B] {
	return expr.Dot(lhs, rhs)
}

// Evaluation entry points

// MapExpr evaluates e into dst through the saver policy sv.
func MapExpr[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B], sv Saver[T]) {
	expr.MapExpr(dst, e, sv)
}

// Assign evaluates e and overwrites dst: dst = e.
func Assign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	expr.Assign(dst, e)
}

// AddAssign evaluates e and accumulates into dst: dst += e.
func AddAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	expr.AddAssign(dst, e)
}

// SubAssign evaluates e and subtracts from dst: dst -= e.
func SubAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	expr.SubAssign(dst, e)
}

// MulAssign evaluates e and multiplies into dst: dst *= e.
func MulAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	expr.MulAssign(dst, e)
}

// DivAssign evaluates e and divides into dst: dst /= e.
func DivAssign[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], e Expr[T, B]) {
	expr.DivAssign(dst, e)
}

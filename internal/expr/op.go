package expr

import (
	"github.com/zencoding/mshadow/internal/tensor"
)

// Composition operators. Each builds a map node without evaluating
// anything; the resulting tree is compiled and executed by MapExpr.

// Add builds lhs + rhs, elementwise.
func Add[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return &BinaryExpr[T, B]{op: func(a, b T) T { return a + b }, lhs: lhs, rhs: rhs}
}

// Sub builds lhs - rhs, elementwise.
func Sub[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return &BinaryExpr[T, B]{op: func(a, b T) T { return a - b }, lhs: lhs, rhs: rhs}
}

// Mul builds lhs * rhs, elementwise.
func Mul[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return &BinaryExpr[T, B]{op: func(a, b T) T { return a * b }, lhs: lhs, rhs: rhs}
}

// Div builds lhs / rhs, elementwise.
func Div[T tensor.DType, B tensor.Backend](lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return &BinaryExpr[T, B]{op: func(a, b T) T { return a / b }, lhs: lhs, rhs: rhs}
}

// Neg builds -src, elementwise.
func Neg[T tensor.DType, B tensor.Backend](src Expr[T, B]) *UnaryExpr[T, B] {
	return &UnaryExpr[T, B]{op: func(v T) T { return -v }, src: src}
}

// F builds fn(src), applying a custom map elementwise.
func F[T tensor.DType, B tensor.Backend](fn func(T) T, src Expr[T, B]) *UnaryExpr[T, B] {
	return &UnaryExpr[T, B]{op: fn, src: src}
}

// F2 builds fn(lhs, rhs), applying a custom binary map elementwise.
func F2[T tensor.DType, B tensor.Backend](fn func(T, T) T, lhs, rhs Expr[T, B]) *BinaryExpr[T, B] {
	return &BinaryExpr[T, B]{op: fn, lhs: lhs, rhs: rhs}
}

// Scalar convenience forms. The scalar operand is device- and
// rank-agnostic, so these compose with any expression.

// AddScalar builds e + v, elementwise.
func AddScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return Add(e, Scalar[T, B](v))
}

// SubScalar builds e - v, elementwise.
func SubScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return Sub(e, Scalar[T, B](v))
}

// MulScalar builds e * v, elementwise.
func MulScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return Mul(e, Scalar[T, B](v))
}

// DivScalar builds e / v, elementwise.
func DivScalar[T tensor.DType, B tensor.Backend](e Expr[T, B], v T) *BinaryExpr[T, B] {
	return Div(e, Scalar[T, B](v))
}

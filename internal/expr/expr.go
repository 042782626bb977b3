// Package expr implements lazy tensor expressions: compositions over
// tensors are built as unevaluated trees, checked for compatibility, and
// compiled into a single fused evaluation pass per destination, with
// dot products dispatched to the backend's dense linear-algebra kernels.
package expr

import (
	"github.com/zencoding/mshadow/internal/tensor"
)

// Kind classifies an expression for engine dispatch. It is carried as a
// tag distinct from the node's structural type so the engine can branch
// without traversing the tree.
type Kind int

const (
	// KindContainer marks a bare tensor reference.
	KindContainer Kind = iota
	// KindMapper marks an elementwise-mappable expression: it can be
	// evaluated independently at each destination coordinate.
	KindMapper
	// KindDot marks a scaled matrix/vector product, evaluated by a
	// linear-algebra kernel rather than per coordinate.
	KindDot
)

// Expr is a composable, unevaluated description of a tensor computation
// over element type T and backend B.
//
// Anchoring the backend in the type parameter makes cross-device
// composition a compile error: an expression over the CPU backend cannot
// contain a WebGPU tensor.
type Expr[T tensor.DType, B tensor.Backend] interface {
	// Kind reports the expression's dispatch classification.
	Kind() Kind

	// node seals the interface. Its parameters carry T and B so type
	// arguments are inferable at composition call sites.
	node(T, B)
}

// TensorRef is a leaf expression referring to a tensor. The reference is
// non-owning and must not outlive the evaluation call that uses it.
type TensorRef[T tensor.DType, B tensor.Backend] struct {
	t *tensor.Tensor[T, B]
}

// Ref wraps a tensor as a leaf expression.
func Ref[T tensor.DType, B tensor.Backend](t *tensor.Tensor[T, B]) *TensorRef[T, B] {
	return &TensorRef[T, B]{t: t}
}

// Kind reports KindContainer.
func (*TensorRef[T, B]) Kind() Kind { return KindContainer }

func (*TensorRef[T, B]) node(T, B) {}

// Tensor returns the referenced tensor.
func (r *TensorRef[T, B]) Tensor() *tensor.Tensor[T, B] { return r.t }

// ScalarExpr is a constant leaf. It is device- and rank-agnostic and
// compatible with any expression.
type ScalarExpr[T tensor.DType, B tensor.Backend] struct {
	value T
}

// Scalar wraps a constant as a leaf expression.
func Scalar[T tensor.DType, B tensor.Backend](v T) *ScalarExpr[T, B] {
	return &ScalarExpr[T, B]{value: v}
}

// Kind reports KindMapper.
func (*ScalarExpr[T, B]) Kind() Kind { return KindMapper }

func (*ScalarExpr[T, B]) node(T, B) {}

// Value returns the constant.
func (s *ScalarExpr[T, B]) Value() T { return s.value }

// UnaryExpr applies an operator elementwise to one sub-expression.
type UnaryExpr[T tensor.DType, B tensor.Backend] struct {
	op  func(T) T
	src Expr[T, B]
}

// Kind reports KindMapper.
func (*UnaryExpr[T, B]) Kind() Kind { return KindMapper }

func (*UnaryExpr[T, B]) node(T, B) {}

// BinaryExpr combines two sub-expressions elementwise.
type BinaryExpr[T tensor.DType, B tensor.Backend] struct {
	op       func(T, T) T
	lhs, rhs Expr[T, B]
}

// Kind reports KindMapper.
func (*BinaryExpr[T, B]) Kind() Kind { return KindMapper }

func (*BinaryExpr[T, B]) node(T, B) {}

// DotExpr represents a scaled matrix/vector product of two tensor
// operands, each optionally transposed.
type DotExpr[T tensor.DType, B tensor.Backend] struct {
	lhs, rhs           *tensor.Tensor[T, B]
	transLHS, transRHS bool
	scale              T
}

// Dot builds a dot-product expression over two tensors with no transposes
// and unit scale.
func Dot[T tensor.DType, B tensor.Backend](lhs, rhs *tensor.Tensor[T, B]) *DotExpr[T, B] {
	return &DotExpr[T, B]{lhs: lhs, rhs: rhs, scale: 1}
}

// Kind reports KindDot.
func (*DotExpr[T, B]) Kind() Kind { return KindDot }

func (*DotExpr[T, B]) node(T, B) {}

// TransposeLeft returns the expression with the left operand marked
// transposed.
func (d *DotExpr[T, B]) TransposeLeft() *DotExpr[T, B] {
	c := *d
	c.transLHS = true
	return &c
}

// TransposeRight returns the expression with the right operand marked
// transposed.
func (d *DotExpr[T, B]) TransposeRight() *DotExpr[T, B] {
	c := *d
	c.transRHS = true
	return &c
}

// Scale returns the expression with its scale factor multiplied by s.
func (d *DotExpr[T, B]) Scale(s T) *DotExpr[T, B] {
	c := *d
	c.scale *= s
	return &c
}

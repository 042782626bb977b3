package expr

import (
	"github.com/zencoding/mshadow/internal/tensor"
)

// Saver specifies how a computed value is written into the destination:
// overwrite, accumulate, or another combining rule. The executor invokes
// Combine once per destination coordinate.
type Saver[T tensor.DType] interface {
	Combine(current, value T) T
}

// SaveTo overwrites the destination element.
type SaveTo[T tensor.DType] struct{}

// Combine returns the computed value, discarding the current one.
func (SaveTo[T]) Combine(_, value T) T { return value }

// PlusTo accumulates the computed value into the destination element.
type PlusTo[T tensor.DType] struct{}

// Combine returns current + value.
func (PlusTo[T]) Combine(current, value T) T { return current + value }

// MinusTo subtracts the computed value from the destination element.
type MinusTo[T tensor.DType] struct{}

// Combine returns current - value.
func (MinusTo[T]) Combine(current, value T) T { return current - value }

// MultTo multiplies the destination element by the computed value.
type MultTo[T tensor.DType] struct{}

// Combine returns current * value.
func (MultTo[T]) Combine(current, value T) T { return current * value }

// DivTo divides the destination element by the computed value.
type DivTo[T tensor.DType] struct{}

// Combine returns current / value.
func (DivTo[T]) Combine(current, value T) T { return current / value }

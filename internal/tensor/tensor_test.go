package tensor

import (
	"testing"
)

// mockBackend is a minimal Backend for container tests. Its kernels are
// never invoked here; the expression engine has its own tests against the
// real backends.
type mockBackend struct{}

func (mockBackend) Gemm(dst, lhs, rhs *RawTensor, transLHS, transRHS bool, scale float64) {
	panic("mock: gemm not implemented")
}

func (mockBackend) Gemv(dst, vec, mat *RawTensor, transMat bool, scale float64) {
	panic("mock: gemv not implemented")
}

func (mockBackend) Ger(dst, col, row *RawTensor, scale float64) {
	panic("mock: ger not implemented")
}

func (mockBackend) Name() string   { return "Mock" }
func (mockBackend) Device() Device { return CPU }

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3}, mockBackend{})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if !x.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", x.Shape())
	}
	if x.DType() != Float32 {
		t.Errorf("DType() = %v, want float32", x.DType())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}

	// FromSlice copies: mutating the source must not affect the tensor.
	data[0] = 99
	if got := x.At(0, 0); got != 1 {
		t.Errorf("At(0,0) = %v after source mutation, want 1", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}, mockBackend{}); err == nil {
		t.Error("FromSlice with wrong element count should fail")
	}
}

func TestZerosOnesFull(t *testing.T) {
	z := Zeros[float32](Shape{2, 2}, mockBackend{})
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Zeros data[%d] = %v, want 0", i, v)
		}
	}

	o := Ones[float64](Shape{3}, mockBackend{})
	for i, v := range o.Data() {
		if v != 1 {
			t.Errorf("Ones data[%d] = %v, want 1", i, v)
		}
	}

	f := Full[float32](Shape{2}, 3.25, mockBackend{})
	for i, v := range f.Data() {
		if v != 3.25 {
			t.Errorf("Full data[%d] = %v, want 3.25", i, v)
		}
	}
}

func TestTensorSetAt(t *testing.T) {
	x := Zeros[float32](Shape{2, 3}, mockBackend{})
	x.Set(4.5, 1, 1)

	if got := x.At(1, 1); got != 4.5 {
		t.Errorf("At(1,1) = %v, want 4.5", got)
	}
	if got := x.Data()[4]; got != 4.5 {
		t.Errorf("Data()[4] = %v, want 4.5 (row-major offset)", got)
	}
}

func TestTensorAtOutOfBounds(t *testing.T) {
	x := Zeros[float32](Shape{2, 3}, mockBackend{})
	defer func() {
		if recover() == nil {
			t.Error("At with out-of-bounds index should panic")
		}
	}()
	x.At(2, 0)
}

func TestTensorClone(t *testing.T) {
	x := Full[float32](Shape{2, 2}, 1, mockBackend{})
	y := x.Clone()
	y.Set(9, 0, 0)

	if x.At(0, 0) != 1 {
		t.Error("Clone should not share memory with the original")
	}
}

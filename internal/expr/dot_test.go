package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencoding/mshadow/internal/backend/cpu"
	"github.com/zencoding/mshadow/internal/tensor"
)

// refMatMul computes scale * op(lhs) @ op(rhs) naively for comparison.
func refMatMul(lhs, rhs []float32, lr, lc, rr, rc int, transLHS, transRHS bool, scale float32) []float32 {
	at := func(data []float32, rows, cols, i, j int, trans bool) float32 {
		if trans {
			i, j = j, i
		}
		_ = rows
		return data[i*cols+j]
	}

	m, k := lr, lc
	if transLHS {
		m, k = lc, lr
	}
	n := rc
	if transRHS {
		n = rr
	}

	out := make([]float32, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += at(lhs, lr, lc, i, p, transLHS) * at(rhs, rr, rc, p, j, transRHS)
			}
			out[i*n+j] = scale * sum
		}
	}
	return out
}

func TestDotMatMat(t *testing.T) {
	lhs := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	rhs := fromSlice(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	dst := tensor.Zeros[float32](tensor.Shape{2, 2}, cpu.New())

	Assign(dst, Dot(lhs, rhs))

	assert.Equal(t, []float32{19, 22, 43, 50}, dst.Data())
}

func TestDotMatMatScaled(t *testing.T) {
	lhs := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	rhs := fromSlice(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	dst := tensor.Zeros[float32](tensor.Shape{2, 2}, cpu.New())

	Assign(dst, Dot(lhs, rhs).Scale(2))

	assert.Equal(t, []float32{38, 44, 86, 100}, dst.Data())
}

func TestDotMatMatTransposes(t *testing.T) {
	// Rectangular operands so a wrong transpose cannot pass by accident.
	lhsData := []float32{1, 2, 3, 4, 5, 6}       // 2x3
	rhsData := []float32{7, 8, 9, 10, 11, 12}    // 3x2
	lhsTData := []float32{1, 4, 2, 5, 3, 6}      // 3x2, transpose of lhs
	rhsTData := []float32{7, 9, 11, 8, 10, 12}   // 2x3, transpose of rhs

	cases := []struct {
		name               string
		lhs, rhs           []float32
		lr, lc, rr, rc     int
		transLHS, transRHS bool
	}{
		{"NN", lhsData, rhsData, 2, 3, 3, 2, false, false},
		{"TN", lhsTData, rhsData, 3, 2, 3, 2, true, false},
		{"NT", lhsData, rhsTData, 2, 3, 2, 3, false, true},
		{"TT", lhsTData, rhsTData, 3, 2, 2, 3, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lhs := fromSlice(t, tc.lhs, tensor.Shape{tc.lr, tc.lc})
			rhs := fromSlice(t, tc.rhs, tensor.Shape{tc.rr, tc.rc})
			dst := tensor.Zeros[float32](tensor.Shape{2, 2}, cpu.New())

			e := Dot(lhs, rhs).Scale(1.5)
			if tc.transLHS {
				e = e.TransposeLeft()
			}
			if tc.transRHS {
				e = e.TransposeRight()
			}
			Assign(dst, e)

			want := refMatMul(tc.lhs, tc.rhs, tc.lr, tc.lc, tc.rr, tc.rc, tc.transLHS, tc.transRHS, 1.5)
			for i, v := range dst.Data() {
				assert.InDelta(t, want[i], v, 1e-5, "coordinate %d", i)
			}
		})
	}
}

func TestDotVecMat(t *testing.T) {
	vec := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3})
	mat := fromSlice(t, []float32{1, 4, 2, 5, 3, 6}, tensor.Shape{3, 2})
	dst := tensor.Zeros[float32](tensor.Shape{2}, cpu.New())

	// dst_j = sum_i vec_i * mat_ij
	Assign(dst, Dot(vec, mat))

	assert.Equal(t, []float32{14, 32}, dst.Data())
}

func TestDotVecMatTransposed(t *testing.T) {
	vec := fromSlice(t, []float32{1, 2}, tensor.Shape{2})
	mat := fromSlice(t, []float32{1, 4, 2, 5, 3, 6}, tensor.Shape{3, 2})
	dst := tensor.Zeros[float32](tensor.Shape{3}, cpu.New())

	// dst = vec @ mat^T
	Assign(dst, Dot(vec, mat).TransposeRight().Scale(2))

	assert.Equal(t, []float32{18, 24, 30}, dst.Data())
}

func TestDotOuterProduct(t *testing.T) {
	col := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3})
	row := fromSlice(t, []float32{4, 5}, tensor.Shape{2})
	dst := tensor.Zeros[float32](tensor.Shape{3, 2}, cpu.New())

	// dst = col^T @ row, the outer product.
	Assign(dst, Dot(col, row).TransposeLeft())

	assert.Equal(t, []float32{4, 5, 8, 10, 12, 15}, dst.Data())
}

func TestDotOuterProductOverwrites(t *testing.T) {
	col := fromSlice(t, []float32{1, 1}, tensor.Shape{2})
	row := fromSlice(t, []float32{1, 1}, tensor.Shape{2})
	dst := tensor.Full[float32](tensor.Shape{2, 2}, 50, cpu.New())

	Assign(dst, Dot(col, row).TransposeLeft())

	// The dot engine overwrites, never accumulates into, the destination.
	assert.Equal(t, []float32{1, 1, 1, 1}, dst.Data())
}

func TestDotUnsupportedConfigurations(t *testing.T) {
	backend := cpu.New()
	vec := tensor.Ones[float32](tensor.Shape{2}, backend)
	mat := tensor.Ones[float32](tensor.Shape{2, 2}, backend)

	cases := []struct {
		name string
		run  func()
	}{
		{"vec-mat with transposed left", func() {
			dst := tensor.Zeros[float32](tensor.Shape{2}, backend)
			Assign(dst, Dot(vec, mat).TransposeLeft())
		}},
		{"vec-vec without transposed left", func() {
			dst := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
			Assign(dst, Dot(vec, vec))
		}},
		{"vec-vec with both transposed", func() {
			dst := tensor.Zeros[float32](tensor.Shape{2, 2}, backend)
			Assign(dst, Dot(vec, vec).TransposeLeft().TransposeRight())
		}},
		{"mat-mat into rank-1 destination", func() {
			dst := tensor.Zeros[float32](tensor.Shape{4}, backend)
			Assign(dst, Dot(mat, mat))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "unsupported configuration must panic")
				assert.Contains(t, r.(string), "unsupported dot configuration")
			}()
			tc.run()
		})
	}
}

func TestDotInnerExtentMismatchPanics(t *testing.T) {
	lhs := tensor.Ones[float32](tensor.Shape{2, 3}, cpu.New())
	rhs := tensor.Ones[float32](tensor.Shape{2, 2}, cpu.New())
	dst := tensor.Zeros[float32](tensor.Shape{2, 2}, cpu.New())

	assert.Panics(t, func() {
		Assign(dst, Dot(lhs, rhs))
	})
}

func TestDotFloat64(t *testing.T) {
	backend := cpu.New()
	lhs, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	rhs, err := tensor.FromSlice([]float64{5, 6, 7, 8}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	dst := tensor.Zeros[float64](tensor.Shape{2, 2}, backend)

	Assign(dst, Dot(lhs, rhs).Scale(0.5))

	assert.InDeltaSlice(t, []float64{9.5, 11, 21.5, 25}, dst.Data(), 1e-12)
}

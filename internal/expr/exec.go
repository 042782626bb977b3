package expr

import (
	"github.com/zencoding/mshadow/internal/tensor"
)

// mapPlan walks every coordinate of the destination's flattened 2-D view
// in row-major order and writes saver.Combine(dst[y][x], plan.Eval(y, x)).
// Single-threaded and synchronous: the destination is fully written when
// mapPlan returns.
func mapPlan[T tensor.DType, B tensor.Backend](dst *tensor.Tensor[T, B], p Plan[T], sv Saver[T]) {
	rows, cols := dst.Shape().Flat2D()
	stride := dst.Raw().RowStride()
	data := dst.Data()

	for y := 0; y < rows; y++ {
		base := y * stride
		for x := 0; x < cols; x++ {
			i := base + x
			data[i] = sv.Combine(data[i], p.Eval(y, x))
		}
	}
}

package tensor

// Backend defines the interface that all compute backends must implement.
// A backend supplies the dense linear-algebra kernels the expression engine
// dispatches dot-product expressions to; elementwise expressions never reach
// the backend (they are fused into a single host-side evaluation pass).
//
// Every kernel overwrites its destination (the accumulate coefficient is
// zero) and the destination buffer is valid when the call returns: any
// device synchronization happens inside the kernel, not after it.
//
// Implementations:
//   - CPU: gonum BLAS (blas/gonum)
//   - WebGPU: WGSL compute shaders via go-webgpu
type Backend interface {
	// Gemm computes dst = scale * op(lhs) @ op(rhs) for rank-2 operands,
	// where op transposes its argument when the corresponding flag is set.
	Gemm(dst, lhs, rhs *RawTensor, transLHS, transRHS bool, scale float64)

	// Gemv computes dst = scale * vec @ op(mat) for a rank-1 vec and
	// rank-2 mat, writing a rank-1 destination.
	Gemv(dst, vec, mat *RawTensor, transMat bool, scale float64)

	// Ger computes the outer product dst = scale * col @ row for rank-1
	// operands, writing a rank-2 destination.
	Ger(dst, col, row *RawTensor, scale float64)

	// Metadata
	Name() string
	Device() Device
}

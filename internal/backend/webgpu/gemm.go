//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/zencoding/mshadow/internal/tensor"
)

const gemmWorkgroupSize = 16

// Gemm computes dst = scale * op(lhs) @ op(rhs) on the device.
// The effective extents are derived from the transpose flags exactly as on
// the CPU backend; the shader reads each operand through transposed
// indexing instead of materializing a transposed copy.
func (b *Backend) Gemm(dst, lhs, rhs *tensor.RawTensor, transLHS, transRHS bool, scale float64) {
	if lhs.Rank() != 2 || rhs.Rank() != 2 || dst.Rank() != 2 {
		panic(fmt.Sprintf("webgpu: gemm: rank-2 operands required, got dst %dD, lhs %dD, rhs %dD", dst.Rank(), lhs.Rank(), rhs.Rank()))
	}

	m, k := lhs.Shape()[0], lhs.Shape()[1]
	if transLHS {
		m, k = k, m
	}
	kAlt, n := rhs.Shape()[0], rhs.Shape()[1]
	if transRHS {
		kAlt, n = n, kAlt
	}

	if k != kAlt {
		panic(fmt.Sprintf("webgpu: gemm: inner extents differ: op(lhs) is %dx%d, op(rhs) is %dx%d", m, k, kAlt, n))
	}
	if !dst.Shape().Equal(tensor.Shape{m, n}) {
		panic(fmt.Sprintf("webgpu: gemm: destination shape %v, want [%d %d]", dst.Shape(), m, n))
	}

	b.runGemm(dst, lhs, rhs, m, n, k, transLHS, transRHS, scale)
}

// Gemv computes dst = scale * vec @ op(mat). The vector is treated as a
// 1 x K matrix and routed through the gemm kernel.
func (b *Backend) Gemv(dst, vec, mat *tensor.RawTensor, transMat bool, scale float64) {
	if dst.Rank() != 1 || vec.Rank() != 1 || mat.Rank() != 2 {
		panic(fmt.Sprintf("webgpu: gemv: want dst 1D, vec 1D, mat 2D, got %dD, %dD, %dD", dst.Rank(), vec.Rank(), mat.Rank()))
	}

	k, n := mat.Shape()[0], mat.Shape()[1]
	if transMat {
		k, n = n, k
	}

	if vec.Shape()[0] != k {
		panic(fmt.Sprintf("webgpu: gemv: vector length %d, op(mat) has %d rows", vec.Shape()[0], k))
	}
	if dst.Shape()[0] != n {
		panic(fmt.Sprintf("webgpu: gemv: destination length %d, op(mat) has %d columns", dst.Shape()[0], n))
	}

	b.runGemm(dst, vec, mat, 1, n, k, false, transMat, scale)
}

// Ger computes the outer product dst = scale * col @ row, routed through
// the gemm kernel with an inner extent of one.
func (b *Backend) Ger(dst, col, row *tensor.RawTensor, scale float64) {
	if dst.Rank() != 2 || col.Rank() != 1 || row.Rank() != 1 {
		panic(fmt.Sprintf("webgpu: ger: want dst 2D, col 1D, row 1D, got %dD, %dD, %dD", dst.Rank(), col.Rank(), row.Rank()))
	}

	m, n := col.Shape()[0], row.Shape()[0]
	if !dst.Shape().Equal(tensor.Shape{m, n}) {
		panic(fmt.Sprintf("webgpu: ger: destination shape %v, want [%d %d]", dst.Shape(), m, n))
	}

	b.runGemm(dst, col, row, m, n, 1, false, false, scale)
}

// runGemm uploads the operands, dispatches the gemm compute pass, and
// reads the result back into the destination buffer. Returns only after
// the readback completes.
func (b *Backend) runGemm(dst, lhs, rhs *tensor.RawTensor, m, n, k int, transLHS, transRHS bool, scale float64) {
	if dst.DType() != tensor.Float32 || lhs.DType() != tensor.Float32 || rhs.DType() != tensor.Float32 {
		panic(fmt.Sprintf("webgpu: only float32 is supported, got %s", dst.DType()))
	}

	shader := b.compileShader("gemm", gemmShader)
	pipeline := b.getOrCreatePipeline("gemm", shader)

	bufferLHS := b.createBuffer(lhs.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferLHS.Release()

	bufferRHS := b.createBuffer(rhs.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferRHS.Release()

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	resultSize := uint64(dst.ByteSize())
	bufferResult := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferResult.Release()

	// Params uniform: M, K, N, trans_a, trans_b (u32) + alpha (f32).
	params := make([]byte, 32)
	//nolint:gosec // G115: Safe conversions, extents are non-negative
	{
		binary.LittleEndian.PutUint32(params[0:4], uint32(m))
		binary.LittleEndian.PutUint32(params[4:8], uint32(k))
		binary.LittleEndian.PutUint32(params[8:12], uint32(n))
		binary.LittleEndian.PutUint32(params[12:16], boolToU32(transLHS))
		binary.LittleEndian.PutUint32(params[16:20], boolToU32(transRHS))
		binary.LittleEndian.PutUint32(params[20:24], math.Float32bits(float32(scale)))
	}
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferLHS, 0, uint64(lhs.ByteSize())),
		wgpu.BufferBindingEntry(1, bufferRHS, 0, uint64(rhs.ByteSize())),
		wgpu.BufferBindingEntry(2, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 32),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)

	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	//nolint:gosec // G115: Safe conversion, workgroup count is non-negative
	groupsX := uint32((n + gemmWorkgroupSize - 1) / gemmWorkgroupSize)
	//nolint:gosec // G115: Safe conversion, workgroup count is non-negative
	groupsY := uint32((m + gemmWorkgroupSize - 1) / gemmWorkgroupSize)
	computePass.DispatchWorkgroups(groupsX, groupsY, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	resultData, err := b.readBuffer(bufferResult, resultSize)
	if err != nil {
		panic(fmt.Sprintf("webgpu: gemm readback failed: %v", err))
	}

	copy(dst.Data(), resultData)
}

func boolToU32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

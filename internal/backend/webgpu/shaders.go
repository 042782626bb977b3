//go:build windows

package webgpu

// gemmShader computes C = alpha * op(A) @ op(B).
// op(A) is M x K and op(B) is K x N; the trans flags select whether each
// operand's storage is read transposed. A and B stay in their row-major
// storage layout; only the indexing changes.
const gemmShader = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    M: u32,        // rows of op(A) and C
    K: u32,        // cols of op(A), rows of op(B)
    N: u32,        // cols of op(B) and C
    trans_a: u32,  // 1 if A storage is read transposed
    trans_b: u32,  // 1 if B storage is read transposed
    alpha: f32,    // scale factor
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(16, 16)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let row = global_id.y;
    let col = global_id.x;

    if (row >= params.M || col >= params.N) {
        return;
    }

    var sum: f32 = 0.0;
    for (var k: u32 = 0u; k < params.K; k = k + 1u) {
        var a_idx: u32;
        if (params.trans_a == 1u) {
            a_idx = k * params.M + row;
        } else {
            a_idx = row * params.K + k;
        }
        var b_idx: u32;
        if (params.trans_b == 1u) {
            b_idx = col * params.K + k;
        } else {
            b_idx = k * params.N + col;
        }
        sum = sum + a[a_idx] * b[b_idx];
    }

    let c_idx = row * params.N + col;
    result[c_idx] = params.alpha * sum;
}
`

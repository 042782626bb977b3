package tensor

import (
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", raw.Rank())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
	if raw.Device() != CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw with zero dimension should fail")
	}
}

func TestRawAsFloat32(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32, CPU)
	data := raw.AsFloat32()
	if len(data) != 4 {
		t.Fatalf("AsFloat32() length = %d, want 4", len(data))
	}

	data[2] = 3.5
	if raw.AsFloat32()[2] != 3.5 {
		t.Error("AsFloat32 should be a zero-copy view")
	}
}

func TestRawAsFloat32WrongDType(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float64, CPU)
	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on a float64 tensor should panic")
		}
	}()
	raw.AsFloat32()
}

func TestRawClone(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	raw.AsFloat32()[0] = 7

	clone := raw.Clone()
	clone.AsFloat32()[0] = 9

	if raw.AsFloat32()[0] != 7 {
		t.Error("Clone should copy the buffer, not share it")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("Clone shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}

func TestRawRowStride(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{7}, 0},
		{Shape{3, 4}, 4},
		{Shape{2, 3, 5}, 5},
	}

	for _, tt := range tests {
		raw, _ := NewRaw(tt.shape, Float32, CPU)
		if got := raw.RowStride(); got != tt.want {
			t.Errorf("RowStride(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestDataTypeSize(t *testing.T) {
	if Float32.Size() != 4 {
		t.Errorf("Float32.Size() = %d, want 4", Float32.Size())
	}
	if Float64.Size() != 8 {
		t.Errorf("Float64.Size() = %d, want 8", Float64.Size())
	}
}

package tensor

import (
	"testing"
)

// Test helpers

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertEqualData[T Numeric](t *testing.T, expected, actual []T, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %d elements, got %d", msg, len(expected), len(actual))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("%s: element %d: expected %v, got %v", msg, i, expected[i], actual[i])
		}
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int8, 1},
		{Int16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Uint64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int, "int"},
		{Int32, "int32"},
		{Uint16, "uint16"},
		{DataType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("DataType(%d).String() = %q, want %q", int(tt.dtype), got, tt.str)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	type celsius float32

	if got := DataTypeOf[float64](); got != Float64 {
		t.Errorf("DataTypeOf[float64]() = %s", got)
	}
	if got := DataTypeOf[uint8](); got != Uint8 {
		t.Errorf("DataTypeOf[uint8]() = %s", got)
	}
	if got := DataTypeOf[celsius](); got != Float32 {
		t.Errorf("DataTypeOf[celsius]() = %s", got)
	}
	if !Float32.IsFloat() || Int32.IsFloat() {
		t.Error("IsFloat misclassifies float32/int32")
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{5}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		assertEqualData(t, tt.want, tt.shape.ComputeStrides(), "strides")
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Errorf("Clone shares storage: %v", s)
	}
}

func TestShapePermute(t *testing.T) {
	got, err := Shape{2, 3, 4}.Permute([]int{2, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	assertEqualShape(t, Shape{4, 2, 3}, got, "Permute")

	for _, axes := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		if _, err := (Shape{2, 3, 4}).Permute(axes); err == nil {
			t.Errorf("Permute(%v) accepted", axes)
		}
	}
}

// Tensor Tests

func TestFromSliceCopies(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3})
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 100
	if x.At(0, 0) != 1 {
		t.Errorf("FromSlice shares storage with its argument")
	}
	if x.At(1, 2) != 6 {
		t.Errorf("At(1, 2) = %d, want 6", x.At(1, 2))
	}
	if x.Rank() != 2 || x.Dim(1) != 3 || x.NumElements() != 6 {
		t.Errorf("unexpected geometry: rank %d, dims %v", x.Rank(), x.Shape())
	}
	assertEqualData(t, []int{3, 1}, x.Strides(), "strides")
}

func TestFromDataWraps(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	x, err := FromData(data, Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	data[3] = 40
	if x.At(1, 1) != 40 {
		t.Errorf("FromData copied its argument")
	}
}

func TestFromSliceErrors(t *testing.T) {
	if _, err := FromSlice([]float32{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("element count mismatch accepted")
	}
	if _, err := FromSlice([]float32{}, Shape{0}); err == nil {
		t.Error("zero dimension accepted")
	}
	if _, err := New[float32](Shape{3, -2}); err == nil {
		t.Error("New accepted a negative dimension")
	}
}

func TestAtSetPanics(t *testing.T) {
	x := Zeros[int64](Shape{2, 2})
	x.Set(7, 1, 0)
	if x.At(1, 0) != 7 {
		t.Errorf("Set/At round trip failed")
	}

	for _, index := range [][]int{{2, 0}, {0, -1}, {0}, {0, 0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%v) did not panic", index)
				}
			}()
			x.At(index...)
		}()
	}
}

func TestReshapeSharesStorage(t *testing.T) {
	x := Arange[int32](Shape{2, 3}, 0)
	v, err := x.Reshape(Shape{3, 2})
	if err != nil {
		t.Fatal(err)
	}
	assertEqualShape(t, Shape{3, 2}, v.Shape(), "Reshape")
	assertEqualShape(t, Shape{2, 3}, x.Shape(), "source shape")

	v.Set(42, 2, 1)
	if x.At(1, 2) != 42 {
		t.Errorf("Reshape did not share storage")
	}

	if _, err := x.Reshape(Shape{4, 2}); err == nil {
		t.Error("Reshape accepted a different element count")
	}
}

func TestCloneAndEqual(t *testing.T) {
	x := Arange[float32](Shape{2, 2}, 1)
	c := x.Clone()
	if !x.Equal(c) {
		t.Fatalf("Clone differs: %s vs %s", x, c)
	}
	c.Set(0, 0, 0)
	if x.At(0, 0) != 1 {
		t.Errorf("Clone shares storage")
	}
	if x.Equal(c) {
		t.Errorf("Equal ignores data")
	}

	reshaped, err := x.Reshape(Shape{4})
	if err != nil {
		t.Fatal(err)
	}
	if x.Equal(reshaped) {
		t.Errorf("Equal ignores shape")
	}
}

func TestTensorString(t *testing.T) {
	x := Arange[int32](Shape{2, 3}, 1)
	if got, want := x.String(), "[[1 2 3] [4 5 6]]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	v := MustFromSlice([]float64{1.5, -2}, Shape{2})
	if got, want := v.String(), "[1.5 -2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTensorDType(t *testing.T) {
	if got := Zeros[uint16](Shape{1}).DType(); got != Uint16 {
		t.Errorf("DType() = %s, want uint16", got)
	}
}

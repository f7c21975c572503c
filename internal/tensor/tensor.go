package tensor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Tensor is a dense, row-major, multi-dimensional array of element type T.
//
// Tensors returned by Reshape share storage with their source: a write through
// one is visible through the other. Everything else returns fresh storage.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	x.At(1, 2) // 6
type Tensor[T Numeric] struct {
	data   []T   // Elements in row-major order
	shape  Shape // Tensor dimensions
	stride []int // Memory strides (row-major)
}

// New creates a zero-filled tensor with the given shape.
func New[T Numeric](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	return &Tensor[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	t, err := FromData(data, shape)
	if err != nil {
		return nil, err
	}
	t.data = append([]T(nil), data...)
	return t, nil
}

// FromData wraps data as a tensor of the given shape without copying.
// The caller must not use data afterwards except through the tensor.
func FromData[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Tensor[T]{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor[T]) Strides() []int {
	return t.stride
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Dim returns the length of the given axis.
func (t *Tensor[T]) Dim(axis int) int {
	return t.shape[axis]
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the underlying elements in row-major order.
// WARNING: Direct access to underlying memory. Use with caution.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given multi-dimensional index.
// Panics if the index has the wrong rank or is out of range.
func (t *Tensor[T]) At(index ...int) T {
	return t.data[t.offset(index)]
}

// Set stores value at the given multi-dimensional index.
// Panics if the index has the wrong rank or is out of range.
func (t *Tensor[T]) Set(value T, index ...int) {
	t.data[t.offset(index)] = value
}

func (t *Tensor[T]) offset(index []int) int {
	if len(index) != len(t.shape) {
		panic(fmt.Sprintf("tensor: index %v has rank %d, tensor has rank %d", index, len(index), len(t.shape)))
	}
	off := 0
	for i, idx := range index {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %v out of range for shape %v", index, t.shape))
		}
		off += idx * t.stride[i]
	}
	return off
}

// Reshape returns a view of the tensor with a new shape.
// The view shares storage with t; no data is moved.
func (t *Tensor[T]) Reshape(shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "reshape")
	}
	if shape.NumElements() != len(t.data) {
		return nil, errors.Errorf("reshape: cannot view %v (%d elements) as %v (%d elements)",
			t.shape, len(t.data), shape, shape.NumElements())
	}
	return &Tensor[T]{
		data:   t.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{
		data:   append([]T(nil), t.data...),
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
	}
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String returns a nested-bracket rendering of the tensor.
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	t.format(&sb, 0, 0)
	return sb.String()
}

func (t *Tensor[T]) format(sb *strings.Builder, axis, off int) {
	if len(t.shape) == 0 {
		fmt.Fprint(sb, t.data[0])
		return
	}
	sb.WriteByte('[')
	for i := 0; i < t.shape[axis]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if axis == len(t.shape)-1 {
			fmt.Fprint(sb, t.data[off+i])
		} else {
			t.format(sb, axis+1, off+i*t.stride[axis])
		}
	}
	sb.WriteByte(']')
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/xconv/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for tensor element types.
// Any integer or floating point type is accepted.
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense, row-major, generic tensor.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
//	v := x.At(2, 1) // 6
type Tensor[T Numeric] = tensor.Tensor[T]

// New creates a zero-filled tensor with the given shape.
func New[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromData wraps data as a tensor without copying.
func FromData[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromData(data, shape)
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T Numeric](data []T, shape Shape) *Tensor[T] {
	return tensor.MustFromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros. Panics on an invalid shape.
func Zeros[T Numeric](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with value. Panics on an invalid shape.
func Full[T Numeric](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Arange creates a tensor holding start, start+1, ... in row-major order.
func Arange[T Numeric](shape Shape, start T) *Tensor[T] {
	return tensor.Arange(shape, start)
}

// DataTypeOf returns the DataType of the element type T.
func DataTypeOf[T Numeric]() DataType {
	return tensor.DataTypeOf[T]()
}

package tensor

// Zeros creates a tensor filled with zeros.
// Panics if the shape is invalid.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Numeric](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Arange creates a tensor whose elements are start, start+1, ... in row-major order.
//
// Example:
//
//	t := tensor.Arange[int32](Shape{3, 3}, 1) // [[1 2 3] [4 5 6] [7 8 9]]
func Arange[T Numeric](shape Shape, start T) *Tensor[T] {
	t := Zeros[T](shape)
	v := start
	for i := range t.data {
		t.data[i] = v
		v++
	}
	return t
}

// MustFromSlice is like FromSlice but panics on error.
// Intended for literals in tests and examples.
func MustFromSlice[T Numeric](data []T, shape Shape) *Tensor[T] {
	t, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

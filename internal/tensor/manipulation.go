package tensor

import "github.com/pkg/errors"

// Permute returns a copy of the tensor with its axes reordered.
// The result's axis i is the source's axis axes[i].
//
// Example:
//
//	// (height, width, channel) -> (channel, height, width)
//	chw, _ := hwc.Permute(2, 0, 1)
func (t *Tensor[T]) Permute(axes ...int) (*Tensor[T], error) {
	shape, err := t.shape.Permute(axes)
	if err != nil {
		return nil, errors.Wrap(err, "permute")
	}
	result := Zeros[T](shape)

	// Source stride for each destination axis.
	srcStrides := make([]int, len(axes))
	for i, axis := range axes {
		srcStrides[i] = t.stride[axis]
	}

	index := make([]int, len(shape))
	for dst := range result.data {
		src := 0
		for i, idx := range index {
			src += idx * srcStrides[i]
		}
		result.data[dst] = t.data[src]

		// Advance the row-major destination index.
		for i := len(index) - 1; i >= 0; i-- {
			index[i]++
			if index[i] < shape[i] {
				break
			}
			index[i] = 0
		}
	}
	return result, nil
}

package conv

import (
	"github.com/pkg/errors"

	"github.com/born-ml/xconv/internal/tensor"
)

// PromoteKernel1D expands a reduced kernel to the full (C_out, C_in, K_w) form
// expected by Convolve1D:
//
//	(K_w)       -> (out, out, K_w), applied per channel (diagonal)
//	(C_in, K_w) -> (out, C_in, K_w), replicated for every output channel
//	(C_out, C_in, K_w) is returned unchanged
//
// outChannels is ignored for rank-3 kernels and must be >= 1 otherwise.
func PromoteKernel1D[T tensor.Numeric](kernel *tensor.Tensor[T], outChannels int) (*tensor.Tensor[T], error) {
	const op = "promoteKernel1D"

	if kernel.Rank() == 3 {
		return kernel, nil
	}
	if kernel.Rank() != 1 && kernel.Rank() != 2 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: can't promote %d dimensional kernel", op, kernel.Rank())
	}
	if outChannels < 1 {
		return nil, errors.Wrapf(ErrInvalidOptions, "%s: need at least 1 output channel, got %d", op, outChannels)
	}

	src := kernel.Data()
	if kernel.Rank() == 1 {
		width := kernel.Dim(0)
		result := tensor.Zeros[T](tensor.Shape{outChannels, outChannels, width})
		dst := result.Data()
		for c := 0; c < outChannels; c++ {
			copy(dst[(c*outChannels+c)*width:], src)
		}
		return result, nil
	}

	result := tensor.Zeros[T](tensor.Shape{outChannels, kernel.Dim(0), kernel.Dim(1)})
	dst := result.Data()
	for o := 0; o < outChannels; o++ {
		copy(dst[o*len(src):], src)
	}
	return result, nil
}

// PromoteKernel2D expands a reduced kernel to the full (C_out, C_in, K_h, K_w)
// form expected by Convolve2D:
//
//	(K)             -> (out, out, K, K), outer product k ⊗ k per channel (diagonal)
//	(K_h, K_w)      -> (out, out, K_h, K_w), applied per channel (diagonal)
//	(C_in, K_h, K_w) -> (out, C_in, K_h, K_w), replicated for every output channel
//	(C_out, C_in, K_h, K_w) is returned unchanged
//
// outChannels is ignored for rank-4 kernels and must be >= 1 otherwise.
func PromoteKernel2D[T tensor.Numeric](kernel *tensor.Tensor[T], outChannels int) (*tensor.Tensor[T], error) {
	const op = "promoteKernel2D"

	if kernel.Rank() == 4 {
		return kernel, nil
	}
	if kernel.Rank() < 1 || kernel.Rank() > 3 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: can't promote %d dimensional kernel", op, kernel.Rank())
	}
	if outChannels < 1 {
		return nil, errors.Wrapf(ErrInvalidOptions, "%s: need at least 1 output channel, got %d", op, outChannels)
	}

	src := kernel.Data()
	switch kernel.Rank() {
	case 1:
		size := kernel.Dim(0)
		plane := make([]T, size*size)
		for h := 0; h < size; h++ {
			for w := 0; w < size; w++ {
				plane[h*size+w] = src[h] * src[w]
			}
		}
		return diagonalKernel2D(plane, outChannels, size, size), nil
	case 2:
		return diagonalKernel2D(src, outChannels, kernel.Dim(0), kernel.Dim(1)), nil
	default:
		result := tensor.Zeros[T](tensor.Shape{outChannels, kernel.Dim(0), kernel.Dim(1), kernel.Dim(2)})
		dst := result.Data()
		for o := 0; o < outChannels; o++ {
			copy(dst[o*len(src):], src)
		}
		return result, nil
	}
}

// diagonalKernel2D places plane on the (c, c) entries of an (out, out, h, w) kernel.
func diagonalKernel2D[T tensor.Numeric](plane []T, outChannels, height, width int) *tensor.Tensor[T] {
	result := tensor.Zeros[T](tensor.Shape{outChannels, outChannels, height, width})
	dst := result.Data()
	size := height * width
	for c := 0; c < outChannels; c++ {
		copy(dst[(c*outChannels+c)*size:], plane)
	}
	return result
}

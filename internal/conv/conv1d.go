package conv

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/xconv/internal/tensor"
)

// Convolve1D cross-correlates a rank-2 input with a rank-3 kernel.
//
// Input shape: (W, C) for ChannelLast, (C, W) for ChannelFirst
// Kernel shape: (C_out, C, K_w), regardless of the input layout
// Output shape: (W_out, C_out) for ChannelLast, (C_out, W_out) for ChannelFirst
//
// Algorithm: im2col
//  1. Validate options and shapes (no allocation on failure)
//  2. Compute the output width and the per-tap input coordinates
//  3. Materialize the patch, filling out-of-range taps per border treatment
//  4. Contract the kernel matrix with the patch matrix
//
// Errors wrap one of ErrInvalidOptions, ErrUnsupportedChannelLayout,
// ErrInvalidRank, ErrChannelMismatch or ErrKernelTooLarge.
func Convolve1D[T tensor.Numeric](input, kernel *tensor.Tensor[T], options KernelOptions) (*tensor.Tensor[T], error) {
	const op = "convolve1D"

	if err := options.validate(op); err != nil {
		return nil, err
	}
	if options.position == ChannelImplicit {
		return nil, errors.Wrapf(ErrUnsupportedChannelLayout,
			"%s: implicit channel option is not supported for explicit channels in input", op)
	}
	if input.Rank() != 2 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 2 dimensional (W x C or C x W) input, got shape %v", op, input.Shape())
	}
	if kernel.Rank() != 3 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 3 dimensional (C_out x C_in x K_w) kernel, got shape %v", op, kernel.Shape())
	}

	var channels, width int
	if options.position == ChannelLast {
		width, channels = input.Dim(0), input.Dim(1)
	} else {
		channels, width = input.Dim(0), input.Dim(1)
	}

	if channels != kernel.Dim(1) {
		return nil, errors.Wrapf(ErrChannelMismatch,
			"%s: input channels %d != kernel input channels %d", op, channels, kernel.Dim(1))
	}

	ax, err := newAxis(op, "width", width, kernel.Dim(2), options)
	if err != nil {
		return nil, err
	}

	outChannels := kernel.Dim(0)
	if klog.V(2).Enabled() {
		klog.Infof("%s: input=%v kernel=%v options=%s taps=[%d,%d) starts=[%d,%d) output width=%d",
			op, input.Shape(), kernel.Shape(), options, ax.tapMin, ax.tapMax, ax.first, ax.last, ax.output)
	}

	if options.position == ChannelFirst {
		patch := patch1DChannelFirst(input.Data(), channels, ax)
		return contractChannelFirst(kernel, patch, tensor.Shape{outChannels, ax.output})
	}
	patch := patch1DChannelLast(input.Data(), channels, ax)
	return contractChannelLast(kernel, patch, tensor.Shape{ax.output, outChannels})
}

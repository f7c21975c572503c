package conv

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/xconv/internal/tensor"
)

// Convolve2D cross-correlates a rank-3 input with a rank-4 kernel.
//
// Input shape: (H, W, C) for ChannelLast, (C, H, W) for ChannelFirst
// Kernel shape: (C_out, C, K_h, K_w), regardless of the input layout
// Output shape: (H_out, W_out, C_out) for ChannelLast, (C_out, H_out, W_out) for ChannelFirst
//
// optionsY configures the height axis and optionsX the width axis; both must
// use the same channel position.
//
// Errors wrap one of ErrInvalidOptions, ErrInconsistentChannelPosition,
// ErrUnsupportedChannelLayout, ErrInvalidRank, ErrChannelMismatch or
// ErrKernelTooLarge.
func Convolve2D[T tensor.Numeric](input, kernel *tensor.Tensor[T], optionsY, optionsX KernelOptions) (*tensor.Tensor[T], error) {
	const op = "convolve2D"

	if err := optionsY.validate(op); err != nil {
		return nil, err
	}
	if err := optionsX.validate(op); err != nil {
		return nil, err
	}
	if optionsY.position != optionsX.position {
		return nil, errors.Wrapf(ErrInconsistentChannelPosition,
			"%s: channel can't be on different positions for optionsY (%s) and optionsX (%s)",
			op, optionsY.position, optionsX.position)
	}
	position := optionsY.position
	if position == ChannelImplicit {
		return nil, errors.Wrapf(ErrUnsupportedChannelLayout,
			"%s: implicit channel option is not supported for explicit channels in input", op)
	}
	if input.Rank() != 3 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 3 dimensional (H x W x C or C x H x W) input, got shape %v", op, input.Shape())
	}
	if kernel.Rank() != 4 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 4 dimensional (C_out x C_in x K_h x K_w) kernel, got shape %v", op, kernel.Shape())
	}

	var channels, height, width int
	if position == ChannelFirst {
		channels, height, width = input.Dim(0), input.Dim(1), input.Dim(2)
	} else {
		height, width, channels = input.Dim(0), input.Dim(1), input.Dim(2)
	}

	if channels != kernel.Dim(1) {
		return nil, errors.Wrapf(ErrChannelMismatch,
			"%s: input channels %d != kernel input channels %d", op, channels, kernel.Dim(1))
	}

	ay, err := newAxis(op, "height", height, kernel.Dim(2), optionsY)
	if err != nil {
		return nil, err
	}
	ax, err := newAxis(op, "width", width, kernel.Dim(3), optionsX)
	if err != nil {
		return nil, err
	}

	outChannels := kernel.Dim(0)
	if klog.V(2).Enabled() {
		klog.Infof("%s: input=%v kernel=%v optionsY=%s optionsX=%s output=%dx%d",
			op, input.Shape(), kernel.Shape(), optionsY, optionsX, ay.output, ax.output)
	}

	if position == ChannelFirst {
		patch := patch2DChannelFirst(input.Data(), channels, ay, ax)
		return contractChannelFirst(kernel, patch, tensor.Shape{outChannels, ay.output, ax.output})
	}
	patch := patch2DChannelLast(input.Data(), channels, ay, ax)
	return contractChannelLast(kernel, patch, tensor.Shape{ay.output, ax.output, outChannels})
}

// Convolve2DOptions is Convolve2D with both axes bundled in an Options2D.
func Convolve2DOptions[T tensor.Numeric](input, kernel *tensor.Tensor[T], options Options2D) (*tensor.Tensor[T], error) {
	return Convolve2D(input, kernel, options.Y, options.X)
}

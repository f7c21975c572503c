package conv

import (
	"github.com/pkg/errors"

	"github.com/born-ml/xconv/internal/tensor"
)

// Convolve1DImplicit cross-correlates a rank-1 (W) input that carries no
// channel axis. options must use ChannelImplicit; the kernel must be
// (1, 1, K_w). The result has shape (W_out).
func Convolve1DImplicit[T tensor.Numeric](input, kernel *tensor.Tensor[T], options KernelOptions) (*tensor.Tensor[T], error) {
	const op = "convolve1DImplicit"

	if err := options.validate(op); err != nil {
		return nil, err
	}
	if options.position != ChannelImplicit {
		return nil, errors.Wrapf(ErrUnsupportedChannelLayout, "%s: expected implicit channels in options, got %s", op, options.position)
	}
	if input.Rank() != 1 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 1 dimensional (W) input, got shape %v", op, input.Shape())
	}
	if kernel.Rank() != 3 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 3 dimensional (C_out x C_in x K_w) kernel, got shape %v", op, kernel.Shape())
	}
	if kernel.Dim(0) != 1 {
		return nil, errors.Wrapf(ErrChannelMismatch, "%s: implicit output holds a single channel, kernel has %d output channels", op, kernel.Dim(0))
	}

	normalized, err := input.Reshape(tensor.Shape{input.Dim(0), 1})
	if err != nil {
		return nil, err
	}
	result, err := Convolve1D(normalized, kernel, options.WithChannelPosition(ChannelLast))
	if err != nil {
		return nil, err
	}
	return result.Reshape(tensor.Shape{result.Dim(0)})
}

// Convolve2DImplicit cross-correlates a rank-2 (H, W) input that carries no
// channel axis. options must use ChannelImplicit on both axes; the kernel must be
// (1, 1, K_h, K_w). The result has shape (H_out, W_out).
func Convolve2DImplicit[T tensor.Numeric](input, kernel *tensor.Tensor[T], options Options2D) (*tensor.Tensor[T], error) {
	const op = "convolve2DImplicit"

	if err := options.Y.validate(op); err != nil {
		return nil, err
	}
	if err := options.X.validate(op); err != nil {
		return nil, err
	}
	if options.Y.position != options.X.position {
		return nil, errors.Wrapf(ErrInconsistentChannelPosition,
			"%s: channel can't be on different positions for optionsY (%s) and optionsX (%s)",
			op, options.Y.position, options.X.position)
	}
	if options.Y.position != ChannelImplicit {
		return nil, errors.Wrapf(ErrUnsupportedChannelLayout, "%s: expected implicit channels in options, got %s", op, options.Y.position)
	}
	if input.Rank() != 2 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 2 dimensional (H x W) input, got shape %v", op, input.Shape())
	}
	if kernel.Rank() != 4 {
		return nil, errors.Wrapf(ErrInvalidRank, "%s: need 4 dimensional (C_out x C_in x K_h x K_w) kernel, got shape %v", op, kernel.Shape())
	}
	if kernel.Dim(0) != 1 {
		return nil, errors.Wrapf(ErrChannelMismatch, "%s: implicit output holds a single channel, kernel has %d output channels", op, kernel.Dim(0))
	}

	normalized, err := input.Reshape(tensor.Shape{input.Dim(0), input.Dim(1), 1})
	if err != nil {
		return nil, err
	}
	result, err := Convolve2DOptions(normalized, kernel, options.WithChannelPosition(ChannelLast))
	if err != nil {
		return nil, err
	}
	return result.Reshape(tensor.Shape{result.Dim(0), result.Dim(1)})
}

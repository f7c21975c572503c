// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package conv

import (
	internalconv "github.com/born-ml/xconv/internal/conv"
	"github.com/born-ml/xconv/internal/parallel"
	"github.com/born-ml/xconv/tensor"
)

// ChannelPosition tells where the channel axis sits in an input tensor.
type ChannelPosition = internalconv.ChannelPosition

// Channel positions.
const (
	ChannelFirst    ChannelPosition = internalconv.ChannelFirst
	ChannelLast     ChannelPosition = internalconv.ChannelLast
	ChannelImplicit ChannelPosition = internalconv.ChannelImplicit
)

// BorderKind selects how taps outside the input are filled.
type BorderKind = internalconv.BorderKind

// Border kinds.
const (
	Constant          BorderKind = internalconv.Constant
	Avoid             BorderKind = internalconv.Avoid
	Repeat            BorderKind = internalconv.Repeat
	SymmetricReflect  BorderKind = internalconv.SymmetricReflect
	AsymmetricReflect BorderKind = internalconv.AsymmetricReflect
	Wrap              BorderKind = internalconv.Wrap
)

// BorderTreatment describes one end of a spatial axis.
// The zero value is constant zero padding.
type BorderTreatment = internalconv.BorderTreatment

// KernelOptions configures one spatial axis (padding, stride, dilation,
// channel position and border treatments).
type KernelOptions = internalconv.KernelOptions

// Options2D bundles the height (Y) and width (X) axis options.
type Options2D = internalconv.Options2D

// BatchConfig controls the worker pool used by the batch entry points.
type BatchConfig = parallel.Config

// Validation errors, matchable with errors.Is.
var (
	ErrUnsupportedChannelLayout    = internalconv.ErrUnsupportedChannelLayout
	ErrInvalidRank                 = internalconv.ErrInvalidRank
	ErrChannelMismatch             = internalconv.ErrChannelMismatch
	ErrKernelTooLarge              = internalconv.ErrKernelTooLarge
	ErrInconsistentChannelPosition = internalconv.ErrInconsistentChannelPosition
	ErrInvalidOptions              = internalconv.ErrInvalidOptions
)

// DefaultKernelOptions returns options with no padding, unit stride and
// dilation, channel-last layout and zero borders.
func DefaultKernelOptions() KernelOptions {
	return internalconv.DefaultKernelOptions()
}

// NewKernelOptions creates options for one axis with symmetric zero padding.
func NewKernelOptions(padding, stride, dilation int, position ChannelPosition) (KernelOptions, error) {
	return internalconv.NewKernelOptions(padding, stride, dilation, position)
}

// MustKernelOptions is like NewKernelOptions but panics on error.
func MustKernelOptions(padding, stride, dilation int, position ChannelPosition) KernelOptions {
	return internalconv.MustKernelOptions(padding, stride, dilation, position)
}

// NewOptions2D creates 2-D options using the same settings on both axes.
func NewOptions2D(padding, stride, dilation int, position ChannelPosition) (Options2D, error) {
	return internalconv.NewOptions2D(padding, stride, dilation, position)
}

// ConstantBorder pads with value.
func ConstantBorder(value float64) BorderTreatment { return internalconv.ConstantBorder(value) }

// AvoidBorder disables padding on that end.
func AvoidBorder() BorderTreatment { return internalconv.AvoidBorder() }

// RepeatBorder clamps to the edge sample.
func RepeatBorder() BorderTreatment { return internalconv.RepeatBorder() }

// SymmetricReflectBorder mirrors the input, duplicating the edge sample.
func SymmetricReflectBorder() BorderTreatment { return internalconv.SymmetricReflectBorder() }

// AsymmetricReflectBorder mirrors the input around the edge sample.
func AsymmetricReflectBorder() BorderTreatment { return internalconv.AsymmetricReflectBorder() }

// WrapBorder continues the input periodically.
func WrapBorder() BorderTreatment { return internalconv.WrapBorder() }

// DefaultBatchConfig returns a worker pool sized to the CPU count.
func DefaultBatchConfig() BatchConfig {
	return parallel.DefaultConfig()
}

// OutputSize returns the number of output positions along one axis.
func OutputSize(inputSize, kernelSize int, options KernelOptions) int {
	return internalconv.OutputSize(inputSize, kernelSize, options)
}

// Convolve1D cross-correlates a (W, C) or (C, W) input with a (C_out, C_in, K_w) kernel.
func Convolve1D[T tensor.Numeric](input, kernel *tensor.Tensor[T], options KernelOptions) (*tensor.Tensor[T], error) {
	return internalconv.Convolve1D(input, kernel, options)
}

// Convolve2D cross-correlates a (H, W, C) or (C, H, W) input with a
// (C_out, C_in, K_h, K_w) kernel.
func Convolve2D[T tensor.Numeric](input, kernel *tensor.Tensor[T], optionsY, optionsX KernelOptions) (*tensor.Tensor[T], error) {
	return internalconv.Convolve2D(input, kernel, optionsY, optionsX)
}

// Convolve2DOptions is Convolve2D with both axes bundled in an Options2D.
func Convolve2DOptions[T tensor.Numeric](input, kernel *tensor.Tensor[T], options Options2D) (*tensor.Tensor[T], error) {
	return internalconv.Convolve2DOptions(input, kernel, options)
}

// Convolve1DImplicit cross-correlates a channel-less (W) input.
func Convolve1DImplicit[T tensor.Numeric](input, kernel *tensor.Tensor[T], options KernelOptions) (*tensor.Tensor[T], error) {
	return internalconv.Convolve1DImplicit(input, kernel, options)
}

// Convolve2DImplicit cross-correlates a channel-less (H, W) input.
func Convolve2DImplicit[T tensor.Numeric](input, kernel *tensor.Tensor[T], options Options2D) (*tensor.Tensor[T], error) {
	return internalconv.Convolve2DImplicit(input, kernel, options)
}

// Convolve1DBatch applies Convolve1D to each input, possibly concurrently.
func Convolve1DBatch[T tensor.Numeric](inputs []*tensor.Tensor[T], kernel *tensor.Tensor[T], options KernelOptions, cfg BatchConfig) ([]*tensor.Tensor[T], error) {
	return internalconv.Convolve1DBatch(inputs, kernel, options, cfg)
}

// Convolve2DBatch applies Convolve2DOptions to each input, possibly concurrently.
func Convolve2DBatch[T tensor.Numeric](inputs []*tensor.Tensor[T], kernel *tensor.Tensor[T], options Options2D, cfg BatchConfig) ([]*tensor.Tensor[T], error) {
	return internalconv.Convolve2DBatch(inputs, kernel, options, cfg)
}

// PromoteKernel1D expands a rank-1 or rank-2 kernel to (C_out, C_in, K_w).
func PromoteKernel1D[T tensor.Numeric](kernel *tensor.Tensor[T], outChannels int) (*tensor.Tensor[T], error) {
	return internalconv.PromoteKernel1D(kernel, outChannels)
}

// PromoteKernel2D expands a rank-1, rank-2 or rank-3 kernel to (C_out, C_in, K_h, K_w).
func PromoteKernel2D[T tensor.Numeric](kernel *tensor.Tensor[T], outChannels int) (*tensor.Tensor[T], error) {
	return internalconv.PromoteKernel2D(kernel, outChannels)
}

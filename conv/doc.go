// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package conv provides direct 1-D and 2-D cross-correlation over multi-channel tensors.
//
// This is the straightforward, exact path: every call materializes all sliding
// window patches (im2col) and reduces the convolution to one matrix product.
// It is meant as ground truth for validating faster convolution routines.
//
// # Features
//
//   - Channel-first (C, ...spatial) and channel-last (...spatial, C) inputs
//   - Per-axis padding, stride and dilation
//   - Border treatments: constant, avoid, repeat, reflect and wrap
//   - Any integer or float element type
//
// # Usage
//
//	import (
//	    "github.com/born-ml/xconv/conv"
//	    "github.com/born-ml/xconv/tensor"
//	)
//
//	func main() {
//	    input := tensor.MustFromSlice([]int32{1, 2, 3, 4, 5}, tensor.Shape{5, 1})   // (W, C)
//	    kernel := tensor.MustFromSlice([]int32{1, 0, -1}, tensor.Shape{1, 1, 3})   // (C_out, C_in, K_w)
//
//	    opts := conv.MustKernelOptions(0, 1, 1, conv.ChannelLast)
//	    out, err := conv.Convolve1D(input, kernel, opts) // [[-2] [-2] [-2]]
//	}
//
// # Kernel Anchoring
//
// Odd kernels are centered: taps run over [-k/2, k/2]. Even kernels are
// anchored at their first tap: taps run over [0, k). Both conventions match
// mainstream convolution primitives, so the output of a k-tap kernel at
// position n always starts reading at input n*stride - paddingBegin.
//
// # Errors
//
// All validation happens before any tensor access. Errors wrap one of the
// Err* sentinels and can be matched with errors.Is.
//
// # Concurrency
//
// All functions are pure. Calls may run concurrently as long as callers do not
// mutate input tensors while a call is in flight.
package conv

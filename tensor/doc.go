// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensor type used by the xconv convolution API.
//
// # Overview
//
// Tensor[T] is a dense, row-major, multi-dimensional array. It provides:
//   - Generic element types via the Numeric constraint (all Go integer and float types)
//   - Multi-dimensional indexing with At and Set
//   - Zero-copy Reshape views
//   - Copying axis permutation with Permute
//
// # Basic Usage
//
//	import "github.com/born-ml/xconv/tensor"
//
//	func main() {
//	    // (height, width, channel) image
//	    img := tensor.Arange[int32](tensor.Shape{4, 4, 3}, 0)
//
//	    // Same data as (channel, height, width)
//	    chw, _ := img.Permute(2, 0, 1)
//	    _ = chw.At(1, 0, 0) // img.At(0, 0, 1)
//	}
//
// # Memory Layout
//
// Elements are stored contiguously in row-major order and exposed through
// Data(). Reshape returns a view sharing that storage, every other operation
// allocates.
package tensor

package conv

import (
	"math/rand"

	"github.com/born-ml/xconv/internal/tensor"
)

// Direct cross-correlation used as an independent reference in tests.
// It only knows constant zero borders and the textbook indexing
// input = n*stride - paddingBegin + j*dilation, j in [0, k).

type refAxis struct {
	size, kernel, padding, stride, dilation int
}

func (r refAxis) output() int {
	return (r.size+2*r.padding-r.dilation*(r.kernel-1)-1)/r.stride + 1
}

func (r refAxis) coord(n, j int) (int, bool) {
	x := n*r.stride - r.padding + j*r.dilation
	return x, x >= 0 && x < r.size
}

// reference1D convolves a channel-first (C, W) input.
func reference1D(input, kernel *tensor.Tensor[int64], r refAxis) *tensor.Tensor[int64] {
	outChannels, channels := kernel.Dim(0), kernel.Dim(1)
	out := tensor.Zeros[int64](tensor.Shape{outChannels, r.output()})
	for o := 0; o < outChannels; o++ {
		for n := 0; n < r.output(); n++ {
			var sum int64
			for c := 0; c < channels; c++ {
				for j := 0; j < r.kernel; j++ {
					if x, ok := r.coord(n, j); ok {
						sum += kernel.At(o, c, j) * input.At(c, x)
					}
				}
			}
			out.Set(sum, o, n)
		}
	}
	return out
}

// reference2D convolves a channel-first (C, H, W) input.
func reference2D(input, kernel *tensor.Tensor[int64], ry, rx refAxis) *tensor.Tensor[int64] {
	outChannels, channels := kernel.Dim(0), kernel.Dim(1)
	out := tensor.Zeros[int64](tensor.Shape{outChannels, ry.output(), rx.output()})
	for o := 0; o < outChannels; o++ {
		for ny := 0; ny < ry.output(); ny++ {
			for nx := 0; nx < rx.output(); nx++ {
				var sum int64
				for c := 0; c < channels; c++ {
					for jy := 0; jy < ry.kernel; jy++ {
						y, okY := ry.coord(ny, jy)
						if !okY {
							continue
						}
						for jx := 0; jx < rx.kernel; jx++ {
							if x, okX := rx.coord(nx, jx); okX {
								sum += kernel.At(o, c, jy, jx) * input.At(c, y, x)
							}
						}
					}
				}
				out.Set(sum, o, ny, nx)
			}
		}
	}
	return out
}

// randomTensor fills a tensor with small integers in [-5, 5].
func randomTensor(rng *rand.Rand, shape tensor.Shape) *tensor.Tensor[int64] {
	t := tensor.Zeros[int64](shape)
	data := t.Data()
	for i := range data {
		data[i] = int64(rng.Intn(11) - 5)
	}
	return t
}

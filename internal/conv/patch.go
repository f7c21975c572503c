package conv

import "github.com/born-ml/xconv/internal/tensor"

// Patch extraction (im2col).
//
// The patch element order is chosen so that viewing it as a matrix is a pure
// relabeling of the shape:
//
//	channel-first: [C, K..., O...] -> (C*prod(K), prod(O))
//	channel-last:  [O..., C, K...] -> (prod(O), C*prod(K))
//
// Taps outside the input take the value dictated by the axis border treatment
// (zero by default).

// patch1DChannelFirst builds the [C, K, O] patch of a (C, W) input.
func patch1DChannelFirst[T tensor.Numeric](input []T, channels int, ax axis) []T {
	patch := make([]T, channels*ax.kernel*ax.output)

	for c := 0; c < channels; c++ {
		row := input[c*ax.size : (c+1)*ax.size]
		for tap := ax.tapMin; tap < ax.tapMax; tap++ {
			dst := patch[(c*ax.kernel+ax.patchTap(tap))*ax.output:]
			for n := 0; n < ax.output; n++ {
				x, fill, ok := ax.locate(ax.coord(n, tap))
				if ok {
					dst[n] = row[x]
				} else {
					dst[n] = T(fill)
				}
			}
		}
	}
	return patch
}

// patch1DChannelLast builds the [O, C, K] patch of a (W, C) input.
func patch1DChannelLast[T tensor.Numeric](input []T, channels int, ax axis) []T {
	patch := make([]T, ax.output*channels*ax.kernel)

	for n := 0; n < ax.output; n++ {
		dst := patch[n*channels*ax.kernel:]
		for tap := ax.tapMin; tap < ax.tapMax; tap++ {
			k := ax.patchTap(tap)
			x, fill, ok := ax.locate(ax.coord(n, tap))
			for c := 0; c < channels; c++ {
				if ok {
					dst[c*ax.kernel+k] = input[x*channels+c]
				} else {
					dst[c*ax.kernel+k] = T(fill)
				}
			}
		}
	}
	return patch
}

// patch2DChannelFirst builds the [C, KH, KW, OH, OW] patch of a (C, H, W) input.
func patch2DChannelFirst[T tensor.Numeric](input []T, channels int, ay, ax axis) []T {
	outputs := ay.output * ax.output
	patch := make([]T, channels*ay.kernel*ax.kernel*outputs)
	plane := ay.size * ax.size

	for c := 0; c < channels; c++ {
		src := input[c*plane : (c+1)*plane]
		for tapY := ay.tapMin; tapY < ay.tapMax; tapY++ {
			for tapX := ax.tapMin; tapX < ax.tapMax; tapX++ {
				k := (c*ay.kernel+ay.patchTap(tapY))*ax.kernel + ax.patchTap(tapX)
				dst := patch[k*outputs:]

				for outY := 0; outY < ay.output; outY++ {
					y, fillY, okY := ay.locate(ay.coord(outY, tapY))
					for outX := 0; outX < ax.output; outX++ {
						dst[outY*ax.output+outX] = sample2D(src, ax.size, 1, 0, y, fillY, okY, ax, outX, tapX)
					}
				}
			}
		}
	}
	return patch
}

// patch2DChannelLast builds the [OH, OW, C, KH, KW] patch of a (H, W, C) input.
func patch2DChannelLast[T tensor.Numeric](input []T, channels int, ay, ax axis) []T {
	taps := ay.kernel * ax.kernel
	patch := make([]T, ay.output*ax.output*channels*taps)

	for outY := 0; outY < ay.output; outY++ {
		for outX := 0; outX < ax.output; outX++ {
			dst := patch[(outY*ax.output+outX)*channels*taps:]

			for tapY := ay.tapMin; tapY < ay.tapMax; tapY++ {
				y, fillY, okY := ay.locate(ay.coord(outY, tapY))
				for tapX := ax.tapMin; tapX < ax.tapMax; tapX++ {
					k := ay.patchTap(tapY)*ax.kernel + ax.patchTap(tapX)
					for c := 0; c < channels; c++ {
						dst[c*taps+k] = sample2D(input, ax.size*channels, channels, c, y, fillY, okY, ax, outX, tapX)
					}
				}
			}
		}
	}
	return patch
}

// sample2D reads one patch cell. The row is resolved first: a row on a constant
// border yields the row fill regardless of the column.
// rowStride and colStride locate (y, x) in src; c is the channel offset.
func sample2D[T tensor.Numeric](src []T, rowStride, colStride, c, y int, fillY float64, okY bool, ax axis, outX, tapX int) T {
	if !okY {
		return T(fillY)
	}
	x, fillX, okX := ax.locate(ax.coord(outX, tapX))
	if !okX {
		return T(fillX)
	}
	return src[y*rowStride+x*colStride+c]
}

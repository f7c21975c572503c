package conv

import "github.com/pkg/errors"

// OutputSize returns the number of output positions along one axis:
//
//	floor((inputSize + paddingTotal - dilation*(kernelSize-1) - 1) / stride + 1)
//
// The result is only meaningful when the dilated kernel fits into the padded
// input; otherwise it may be zero or negative and must be rejected by the caller.
func OutputSize(inputSize, kernelSize int, options KernelOptions) int {
	span := inputSize + options.PaddingTotal() - options.dilation*(kernelSize-1) - 1
	return floorDiv(span, options.stride) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// axis holds the per-axis index arithmetic that maps (output position, tap)
// to an input coordinate.
//
// Taps of an odd kernel run over [-k/2, k/2]; taps of an even kernel run over
// [0, k). Output n at tap t reads input coordinate starts[n] + t*dilation.
// starts steps through [first, last) by stride, where first already folds in
// the begin padding and the tap shift.
type axis struct {
	size     int // Input extent
	kernel   int // Kernel extent
	tapMin   int // First tap (inclusive)
	tapMax   int // Last tap (exclusive)
	stride   int
	dilation int
	first    int   // Input coordinate of output 0 at tap 0
	last     int   // Exclusive bound of the stride-stepped coordinate range
	starts   []int // Input coordinate of each output position at tap 0
	output   int   // Number of output positions
	begin    BorderTreatment
	end      BorderTreatment
}

// newAxis computes the axis geometry, rejecting kernels whose dilated span
// exceeds the padded input.
func newAxis(op, name string, inputSize, kernelSize int, o KernelOptions) (axis, error) {
	if inputSize+o.PaddingTotal() < (kernelSize-1)*o.dilation+1 {
		return axis{}, errors.Wrapf(ErrKernelTooLarge,
			"%s: kernel %s %d (dilation %d) is greater than padded input %s %d",
			op, name, kernelSize, o.dilation, name, inputSize+o.PaddingTotal())
	}

	a := axis{
		size:     inputSize,
		kernel:   kernelSize,
		stride:   o.stride,
		dilation: o.dilation,
		begin:    o.begin,
		end:      o.end,
		output:   OutputSize(inputSize, kernelSize, o),
	}
	radius := kernelSize / 2
	if kernelSize%2 == 0 {
		a.tapMin, a.tapMax = 0, kernelSize
		a.first = -o.PaddingBegin()
		a.last = inputSize + o.PaddingEnd() - o.dilation*(kernelSize-1)
	} else {
		a.tapMin, a.tapMax = -radius, radius+1
		a.first = -o.PaddingBegin() + o.dilation*radius
		a.last = inputSize + o.PaddingEnd() - o.dilation*radius
	}

	// len(starts) == output whenever the kernel fits.
	a.starts = make([]int, 0, a.output)
	for x := a.first; x < a.last; x += a.stride {
		a.starts = append(a.starts, x)
	}
	return a, nil
}

// coord returns the input coordinate read by output position n at tap t.
func (a axis) coord(n, tap int) int {
	return a.starts[n] + tap*a.dilation
}

// patchTap returns the zero-based patch index of tap t.
func (a axis) patchTap(tap int) int {
	return tap - a.tapMin
}

// locate maps an input coordinate to an index in [0, size).
// ok is false when the coordinate falls on a constant border; value then holds
// the fill value.
func (a axis) locate(coord int) (index int, value float64, ok bool) {
	if coord >= 0 && coord < a.size {
		return coord, 0, true
	}
	b := a.end
	if coord < 0 {
		b = a.begin
	}
	index = b.fold(coord, a.size)
	if index < 0 {
		return -1, b.value, false
	}
	return index, 0, true
}

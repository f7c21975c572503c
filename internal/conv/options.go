package conv

import (
	"fmt"

	"github.com/pkg/errors"
)

// KernelOptions configures one spatial axis of a convolution.
//
// KernelOptions is an immutable value: the With* methods return modified copies.
// The zero value is not usable (its stride is 0); start from
// DefaultKernelOptions or NewKernelOptions.
type KernelOptions struct {
	padding  int
	stride   int
	dilation int
	position ChannelPosition
	begin    BorderTreatment
	end      BorderTreatment
}

// DefaultKernelOptions returns options with no padding, unit stride and
// dilation, channel-last layout and constant zero borders.
func DefaultKernelOptions() KernelOptions {
	return KernelOptions{
		padding:  0,
		stride:   1,
		dilation: 1,
		position: ChannelLast,
	}
}

// NewKernelOptions creates options for one spatial axis with symmetric zero padding.
//
// Returns an error wrapping ErrInvalidOptions if padding < 0, stride < 1,
// dilation < 1 or position is unknown.
func NewKernelOptions(padding, stride, dilation int, position ChannelPosition) (KernelOptions, error) {
	o := KernelOptions{
		padding:  padding,
		stride:   stride,
		dilation: dilation,
		position: position,
	}
	if err := o.validate("NewKernelOptions"); err != nil {
		return KernelOptions{}, err
	}
	return o, nil
}

// MustKernelOptions is like NewKernelOptions but panics on error.
func MustKernelOptions(padding, stride, dilation int, position ChannelPosition) KernelOptions {
	o, err := NewKernelOptions(padding, stride, dilation, position)
	if err != nil {
		panic(err)
	}
	return o
}

// Padding returns the configured padding, before border treatments are applied.
func (o KernelOptions) Padding() int { return o.padding }

// Stride returns the step between consecutive output positions.
func (o KernelOptions) Stride() int { return o.stride }

// Dilation returns the spacing between consecutive kernel taps.
func (o KernelOptions) Dilation() int { return o.dilation }

// ChannelPosition returns the channel layout of the input.
func (o KernelOptions) ChannelPosition() ChannelPosition { return o.position }

// BorderBegin returns the treatment of the low end of the axis.
func (o KernelOptions) BorderBegin() BorderTreatment { return o.begin }

// BorderEnd returns the treatment of the high end of the axis.
func (o KernelOptions) BorderEnd() BorderTreatment { return o.end }

// PaddingBegin returns the effective padding before the first sample.
// It is 0 when the begin border is Avoid.
func (o KernelOptions) PaddingBegin() int { return effectivePadding(o.padding, o.begin) }

// PaddingEnd returns the effective padding after the last sample.
// It is 0 when the end border is Avoid.
func (o KernelOptions) PaddingEnd() int { return effectivePadding(o.padding, o.end) }

// PaddingTotal returns PaddingBegin() + PaddingEnd().
func (o KernelOptions) PaddingTotal() int { return o.PaddingBegin() + o.PaddingEnd() }

func effectivePadding(padding int, b BorderTreatment) int {
	if b.kind == Avoid {
		return 0
	}
	return padding
}

// WithChannelPosition returns a copy with the given channel position.
func (o KernelOptions) WithChannelPosition(position ChannelPosition) KernelOptions {
	o.position = position
	return o
}

// WithBorderTreatment returns a copy using treatment on both ends.
func (o KernelOptions) WithBorderTreatment(treatment BorderTreatment) KernelOptions {
	return o.WithBorderTreatments(treatment, treatment)
}

// WithBorderTreatments returns a copy with separate begin and end treatments.
func (o KernelOptions) WithBorderTreatments(begin, end BorderTreatment) KernelOptions {
	o.begin = begin
	o.end = end
	return o
}

// String implements fmt.Stringer.
func (o KernelOptions) String() string {
	return fmt.Sprintf("{padding (begin, end, total)=(%d, %d, %d), stride=%d, dilation=%d, channelPosition=%s, borderBegin=%s, borderEnd=%s}",
		o.PaddingBegin(), o.PaddingEnd(), o.PaddingTotal(), o.stride, o.dilation, o.position, o.begin, o.end)
}

func (o KernelOptions) validate(op string) error {
	switch {
	case o.padding < 0:
		return errors.Wrapf(ErrInvalidOptions, "%s: padding must be >= 0, got %d", op, o.padding)
	case o.stride < 1:
		return errors.Wrapf(ErrInvalidOptions, "%s: stride must be >= 1, got %d", op, o.stride)
	case o.dilation < 1:
		return errors.Wrapf(ErrInvalidOptions, "%s: dilation must be >= 1, got %d", op, o.dilation)
	case !o.position.valid():
		return errors.Wrapf(ErrInvalidOptions, "%s: unknown channel position %d", op, int(o.position))
	case o.begin.kind < Constant || o.begin.kind > Wrap, o.end.kind < Constant || o.end.kind > Wrap:
		return errors.Wrapf(ErrInvalidOptions, "%s: unknown border treatment (%s, %s)", op, o.begin, o.end)
	}
	return nil
}

// Options2D bundles the options of the two spatial axes of a 2-D convolution.
type Options2D struct {
	Y KernelOptions // Height axis
	X KernelOptions // Width axis
}

// NewOptions2D creates 2-D options using the same settings on both axes.
func NewOptions2D(padding, stride, dilation int, position ChannelPosition) (Options2D, error) {
	o, err := NewKernelOptions(padding, stride, dilation, position)
	if err != nil {
		return Options2D{}, err
	}
	return Options2D{Y: o, X: o}, nil
}

// WithChannelPosition returns a copy with position set on both axes.
func (o Options2D) WithChannelPosition(position ChannelPosition) Options2D {
	return Options2D{Y: o.Y.WithChannelPosition(position), X: o.X.WithChannelPosition(position)}
}

// WithBorderTreatment returns a copy using treatment on all four borders.
func (o Options2D) WithBorderTreatment(treatment BorderTreatment) Options2D {
	return Options2D{Y: o.Y.WithBorderTreatment(treatment), X: o.X.WithBorderTreatment(treatment)}
}

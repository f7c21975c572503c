// Package conv implements direct (explicit) 1-D and 2-D cross-correlation over
// multi-channel tensors using patch materialization (im2col) and a single
// dense matrix product.
package conv

// ChannelPosition tells where the channel axis sits in an input tensor.
type ChannelPosition int

// Channel positions.
const (
	// ChannelFirst lays out inputs as (channel, ...spatial).
	ChannelFirst ChannelPosition = iota
	// ChannelLast lays out inputs as (...spatial, channel).
	ChannelLast
	// ChannelImplicit means the input has no channel axis (single channel).
	ChannelImplicit
)

// String returns a human-readable channel position name.
func (p ChannelPosition) String() string {
	switch p {
	case ChannelFirst:
		return "ChannelFirst"
	case ChannelLast:
		return "ChannelLast"
	case ChannelImplicit:
		return "ChannelImplicit"
	default:
		return "Unknown"
	}
}

func (p ChannelPosition) valid() bool {
	return p == ChannelFirst || p == ChannelLast || p == ChannelImplicit
}

package conv

import "github.com/pkg/errors"

// Validation errors. Every rejection returned by this package wraps exactly one
// of these, so callers can match with errors.Is.
var (
	ErrUnsupportedChannelLayout    = errors.New("unsupported channel layout")
	ErrInvalidRank                 = errors.New("invalid rank")
	ErrChannelMismatch             = errors.New("channel mismatch")
	ErrKernelTooLarge              = errors.New("kernel larger than padded input")
	ErrInconsistentChannelPosition = errors.New("inconsistent channel position")
	ErrInvalidOptions              = errors.New("invalid kernel options")
)

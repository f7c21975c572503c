package conv

import "fmt"

// BorderKind selects how taps that fall outside the input are filled.
type BorderKind int

// Border kinds.
const (
	// Constant fills out-of-range taps with a fixed value (zero padding by default).
	Constant BorderKind = iota
	// Avoid drops the padding on that end entirely.
	Avoid
	// Repeat clamps to the nearest edge sample: ...a a | a b c | c c...
	Repeat
	// SymmetricReflect mirrors including the edge sample: ...b a | a b c | c b...
	SymmetricReflect
	// AsymmetricReflect mirrors around the edge sample: ...c b | a b c | b a...
	AsymmetricReflect
	// Wrap continues the input periodically: ...b c | a b c | a b...
	Wrap
)

// String returns the border kind name.
func (k BorderKind) String() string {
	switch k {
	case Constant:
		return "Constant"
	case Avoid:
		return "Avoid"
	case Repeat:
		return "Repeat"
	case SymmetricReflect:
		return "SymmetricReflect"
	case AsymmetricReflect:
		return "AsymmetricReflect"
	case Wrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// BorderTreatment describes one end of a spatial axis.
// The zero value is constant zero padding.
type BorderTreatment struct {
	kind  BorderKind
	value float64
}

// ConstantBorder pads with value. The value is converted to the element type of
// the convolved tensors, so fractional values truncate for integer inputs.
func ConstantBorder(value float64) BorderTreatment {
	return BorderTreatment{kind: Constant, value: value}
}

// AvoidBorder disables padding on that end.
func AvoidBorder() BorderTreatment { return BorderTreatment{kind: Avoid} }

// RepeatBorder clamps to the edge sample.
func RepeatBorder() BorderTreatment { return BorderTreatment{kind: Repeat} }

// SymmetricReflectBorder mirrors the input, duplicating the edge sample.
func SymmetricReflectBorder() BorderTreatment { return BorderTreatment{kind: SymmetricReflect} }

// AsymmetricReflectBorder mirrors the input around the edge sample.
func AsymmetricReflectBorder() BorderTreatment { return BorderTreatment{kind: AsymmetricReflect} }

// WrapBorder continues the input periodically.
func WrapBorder() BorderTreatment { return BorderTreatment{kind: Wrap} }

// Kind returns the border kind.
func (b BorderTreatment) Kind() BorderKind { return b.kind }

// Value returns the fill value. It is only meaningful for Constant.
func (b BorderTreatment) Value() float64 { return b.value }

// String returns a compact description, e.g. "Constant(0)".
func (b BorderTreatment) String() string {
	if b.kind == Constant {
		return fmt.Sprintf("Constant(%g)", b.value)
	}
	return b.kind.String()
}

// fold maps an out-of-range coordinate onto [0, size).
// It returns -1 for Constant, meaning the tap takes the constant value.
func (b BorderTreatment) fold(index, size int) int {
	switch b.kind {
	case Constant:
		return -1
	case Repeat:
		return min(max(index, 0), size-1)
	case Wrap:
		return mod(index, size)
	case SymmetricReflect:
		m := mod(index, 2*size)
		if m >= size {
			m = 2*size - 1 - m
		}
		return m
	case AsymmetricReflect:
		if size == 1 {
			return 0
		}
		period := 2*size - 2
		m := mod(index, period)
		if m >= size {
			m = period - m
		}
		return m
	default:
		// Avoid zeroes the padding on its end, so no tap can land there.
		panic(fmt.Sprintf("conv: border %s cannot resolve index %d (size %d)", b, index, size))
	}
}

// mod is the floored modulus: the result is always in [0, n).
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

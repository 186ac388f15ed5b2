package tuple

import "errors"

// Sentinel errors surfaced by tuple operations. Operations wrap them with
// contextual detail; match with errors.Is or the helpers below.
var (
	// ErrInvalidVector reports an operand that is not a valid vector tuple.
	ErrInvalidVector = errors.New("tuple: invalid vector tuple")

	// ErrShapeMismatch reports binary operands that are not both non-empty
	// and of equal length.
	ErrShapeMismatch = errors.New("tuple: shape mismatch")

	// ErrDimension reports a cross product on operands that are not
	// 3-dimensional.
	ErrDimension = errors.New("tuple: dimension error")

	// ErrEmptyMean reports a mean over no components.
	ErrEmptyMean = errors.New("tuple: empty mean")
)

// IsInvalidVectorError checks if err reports an invalid vector tuple.
func IsInvalidVectorError(err error) bool {
	return errors.Is(err, ErrInvalidVector)
}

// IsShapeMismatchError checks if err reports a shape mismatch.
func IsShapeMismatchError(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

// IsDimensionError checks if err reports a cross-product dimension error.
func IsDimensionError(err error) bool {
	return errors.Is(err, ErrDimension)
}

// IsEmptyMeanError checks if err reports a mean over no components.
func IsEmptyMeanError(err error) bool {
	return errors.Is(err, ErrEmptyMean)
}

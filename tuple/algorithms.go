package tuple

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dot returns the dot product of t1 and t2.
func Dot(t1, t2 Tuple) (float64, error) {
	if err := ValidatePair(t1, t2); err != nil {
		return 0, err
	}
	return floats.Dot(components(t1), components(t2)), nil
}

// Cross returns the cross product of two 3-dimensional tuples, in t1's
// concrete shape. Operands of any other length fail with ErrDimension.
func Cross(t1, t2 Tuple) (Tuple, error) {
	if err := ValidatePair(t1, t2); err != nil {
		return nil, err
	}
	if t1.Len() != 3 {
		return nil, fmt.Errorf("%w: cross product needs 3 components, got %d", ErrDimension, t1.Len())
	}
	a, b := components(t1), components(t2)
	i := a[1]*b[2] - b[1]*a[2]
	j := -(a[0]*b[2] - b[0]*a[2])
	k := a[0]*b[1] - b[0]*a[1]
	return t1.From([]float64{i, j, k})
}

// Magnitude returns the Euclidean norm of t.
func Magnitude(t Tuple) (float64, error) {
	if err := Validate(t); err != nil {
		return 0, err
	}
	return floats.Norm(components(t), 2), nil
}

// Normalize returns the unit vector of t, in t's concrete shape.
//
// Normalizing the zero vector divides 0 by 0 per component and therefore
// yields a tuple of NaN values rather than an error.
func Normalize(t Tuple) (Tuple, error) {
	mag, err := Magnitude(t)
	if err != nil {
		return nil, err
	}
	return DivideScalar(t, mag)
}

// Mean returns the arithmetic mean of t's components. With ignoreEmpty set,
// components equal to zero and NaN components (the empty sentinel) are
// excluded from both the sum and the count; when nothing remains the mean is
// undefined and fails with ErrEmptyMean.
func Mean(t Tuple, ignoreEmpty bool) (float64, error) {
	if err := Validate(t); err != nil {
		return 0, err
	}
	vals := components(t)
	if ignoreEmpty {
		kept := vals[:0]
		for _, v := range vals {
			if v == 0 || math.IsNaN(v) {
				continue
			}
			kept = append(kept, v)
		}
		vals = kept
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("%w: no components to average", ErrEmptyMean)
	}
	return stat.Mean(vals, nil), nil
}

// Angle returns the angle between t1 and t2 in radians.
//
// When either operand has zero magnitude the angle is geometrically
// undefined; this returns π/4 for compatibility with existing callers
// instead of failing. Known quirk, kept deliberately.
//
// The cosine argument is clipped to [-1, 1] so floating-point rounding
// cannot push it outside the domain of Acos.
func Angle(t1, t2 Tuple) (float64, error) {
	if err := ValidatePair(t1, t2); err != nil {
		return 0, err
	}
	a, b := components(t1), components(t2)
	denom := floats.Norm(a, 2) * floats.Norm(b, 2)
	if denom == 0 {
		return math.Pi / 4, nil
	}
	return math.Acos(clip(floats.Dot(a, b) / denom)), nil
}

// AngleDegrees returns Angle converted to degrees, including the
// zero-magnitude fallback (45 degrees).
func AngleDegrees(t1, t2 Tuple) (float64, error) {
	rad, err := Angle(t1, t2)
	if err != nil {
		return 0, err
	}
	return rad * 180 / math.Pi, nil
}

// clip saturates x to [-1, 1]; NaN passes through.
func clip(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

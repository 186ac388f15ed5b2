package tuple

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Add returns t1 + t2 elementwise, in t1's concrete shape.
func Add(t1, t2 Tuple) (Tuple, error) {
	return elementwise(t1, t2, floats.AddTo)
}

// Subtract returns t1 - t2 elementwise, in t1's concrete shape.
func Subtract(t1, t2 Tuple) (Tuple, error) {
	return elementwise(t1, t2, floats.SubTo)
}

// Multiply returns t1 * t2 elementwise, in t1's concrete shape.
func Multiply(t1, t2 Tuple) (Tuple, error) {
	return elementwise(t1, t2, floats.MulTo)
}

// Divide returns t1 / t2 elementwise, in t1's concrete shape. Division
// follows IEEE-754 convention rather than failing: 0/0 yields NaN and x/0
// yields infinity with the sign of the quotient.
func Divide(t1, t2 Tuple) (Tuple, error) {
	return elementwise(t1, t2, floats.DivTo)
}

func elementwise(t1, t2 Tuple, op func(dst, s, t []float64) []float64) (Tuple, error) {
	if err := ValidatePair(t1, t2); err != nil {
		return nil, err
	}
	dst := make([]float64, t1.Len())
	op(dst, components(t1), components(t2))
	return t1.From(dst)
}

// AddScalar returns t with k added to every component, in t's concrete
// shape.
func AddScalar(t Tuple, k float64) (Tuple, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	dst := components(t)
	floats.AddConst(k, dst)
	return t.From(dst)
}

// SubtractScalar returns t with k subtracted from every component, in t's
// concrete shape.
func SubtractScalar(t Tuple, k float64) (Tuple, error) {
	return AddScalar(t, -k)
}

// MultiplyScalar returns t scaled by k, in t's concrete shape.
func MultiplyScalar(t Tuple, k float64) (Tuple, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	dst := make([]float64, t.Len())
	floats.ScaleTo(dst, k, components(t))
	return t.From(dst)
}

// DivideScalar returns t divided componentwise by k, in t's concrete shape.
// The IEEE-754 zero-denominator convention from Divide applies here too.
func DivideScalar(t Tuple, k float64) (Tuple, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	dst := components(t)
	for i := range dst {
		dst[i] /= k
	}
	return t.From(dst)
}

// Round returns t with every component rounded to precision decimal digits
// using round-half-to-even, in t's concrete shape.
func Round(t Tuple, precision int) (Tuple, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	dst := components(t)
	for i := range dst {
		dst[i] = scalar.RoundEven(dst[i], precision)
	}
	return t.From(dst)
}

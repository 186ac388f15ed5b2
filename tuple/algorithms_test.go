package tuple

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDot(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(4, -5, 6)

	got, err := Dot(a, b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if got != 12 {
		t.Fatalf("Dot(a,b) = %v, want 12", got)
	}

	// Commutativity.
	rev, err := Dot(b, a)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if rev != got {
		t.Fatalf("Dot(b,a) = %v, want %v", rev, got)
	}

	if _, err := Dot(Of(1, 2), Of(1, 2, 3)); !IsShapeMismatchError(err) {
		t.Fatalf("Dot(len 2, len 3) error = %v, want ErrShapeMismatch", err)
	}
}

func TestDot_InvalidInput(t *testing.T) {
	if _, err := FromValues(1, "a"); !IsInvalidVectorError(err) {
		t.Fatalf("FromValues(1, \"a\") error = %v, want ErrInvalidVector", err)
	}
	if _, err := Dot(nil, Of(1, 2)); !IsInvalidVectorError(err) {
		t.Fatalf("Dot(nil, _) error = %v, want ErrInvalidVector", err)
	}
}

func TestCross(t *testing.T) {
	got, err := Cross(Of(1, 0, 0), Of(0, 1, 0))
	if err != nil {
		t.Fatalf("Cross failed: %v", err)
	}
	for i, want := range []float64{0, 0, 1} {
		if got.At(i) != want {
			t.Fatalf("Cross[%d] = %v, want %v", i, got.At(i), want)
		}
	}

	if _, err := Cross(Of(1, 2), Of(3, 4)); !IsDimensionError(err) {
		t.Fatalf("Cross(len 2) error = %v, want ErrDimension", err)
	}
}

func TestCross_AntiCommutative(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(-4, 5, 0.5)

	ab, err := Cross(a, b)
	if err != nil {
		t.Fatalf("Cross(a,b) failed: %v", err)
	}
	ba, err := Cross(b, a)
	if err != nil {
		t.Fatalf("Cross(b,a) failed: %v", err)
	}
	neg, err := MultiplyScalar(ba, -1)
	if err != nil {
		t.Fatalf("MultiplyScalar failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbs(ab.At(i), neg.At(i), 1e-12) {
			t.Fatalf("Cross(a,b)[%d] = %v, want %v", i, ab.At(i), neg.At(i))
		}
	}

	// The cross product is orthogonal to both operands.
	d, err := Dot(a, ab)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !scalar.EqualWithinAbs(d, 0, 1e-12) {
		t.Fatalf("Dot(a, Cross(a,b)) = %v, want 0", d)
	}
}

func TestCross_PreservesLabeledShape(t *testing.T) {
	l, err := NewLabeled([]string{"x", "y", "z"}, []float64{1, 0, 0})
	if err != nil {
		t.Fatalf("NewLabeled failed: %v", err)
	}
	got, err := Cross(l, Of(0, 1, 0))
	if err != nil {
		t.Fatalf("Cross failed: %v", err)
	}
	out, ok := got.(*Labeled)
	if !ok {
		t.Fatalf("Cross(labeled, plain) returned %T, want *Labeled", got)
	}
	if v, _ := out.Field("z"); v != 1 {
		t.Fatalf("Field(z) = %v, want 1", v)
	}
}

func TestMagnitude(t *testing.T) {
	got, err := Magnitude(Of(3, 4))
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}
	if got != 5 {
		t.Fatalf("Magnitude(3,4) = %v, want 5", got)
	}

	got, err = Magnitude(Of(0, 0, 0))
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}
	if got != 0 {
		t.Fatalf("Magnitude(zero) = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	n, err := Normalize(Of(3, 4))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	mag, err := Magnitude(n)
	if err != nil {
		t.Fatalf("Magnitude failed: %v", err)
	}
	if !scalar.EqualWithinAbs(mag, 1, 1e-12) {
		t.Fatalf("Magnitude(Normalize(3,4)) = %v, want 1", mag)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	// Zero magnitude reuses the 0/0 -> NaN division policy, not an error.
	n, err := Normalize(Of(0, 0))
	if err != nil {
		t.Fatalf("Normalize(zero) failed: %v", err)
	}
	for i := 0; i < n.Len(); i++ {
		if !math.IsNaN(n.At(i)) {
			t.Fatalf("Normalize(zero)[%d] = %v, want NaN", i, n.At(i))
		}
	}
}

func TestMean(t *testing.T) {
	got, err := Mean(Of(1, 2, 3), false)
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("Mean(1,2,3) = %v, want 2", got)
	}
}

func TestMean_IgnoreEmpty(t *testing.T) {
	// Zeros and the NaN empty sentinel are excluded from sum and count.
	got, err := Mean(Of(1, 2, 0, math.NaN()), true)
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if got != 1.5 {
		t.Fatalf("Mean ignoring empties = %v, want 1.5", got)
	}

	if _, err := Mean(Of(0, 0), true); !IsEmptyMeanError(err) {
		t.Fatalf("Mean(all zero, ignore) error = %v, want ErrEmptyMean", err)
	}
	if _, err := Mean(Of(), false); !IsEmptyMeanError(err) {
		t.Fatalf("Mean(empty) error = %v, want ErrEmptyMean", err)
	}
}

func TestAngle(t *testing.T) {
	got, err := Angle(Of(1, 0), Of(0, 1))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if !scalar.EqualWithinAbs(got, math.Pi/2, 1e-12) {
		t.Fatalf("Angle(orthogonal) = %v, want pi/2", got)
	}

	deg, err := AngleDegrees(Of(1, 0), Of(0, 1))
	if err != nil {
		t.Fatalf("AngleDegrees failed: %v", err)
	}
	if !scalar.EqualWithinAbs(deg, 90, 1e-9) {
		t.Fatalf("AngleDegrees(orthogonal) = %v, want 90", deg)
	}

	// Parallel vectors: clipping keeps the cosine in Acos's domain even if
	// rounding pushes dot/denom past 1.
	got, err = Angle(Of(1, 0), Of(1, 0))
	if err != nil {
		t.Fatalf("Angle failed: %v", err)
	}
	if !scalar.EqualWithinAbs(got, 0, 1e-12) {
		t.Fatalf("Angle(parallel) = %v, want 0", got)
	}
}

func TestAngle_ZeroMagnitudeFallback(t *testing.T) {
	got, err := Angle(Of(0, 0), Of(1, 0))
	if err != nil {
		t.Fatalf("Angle(zero, x) failed: %v", err)
	}
	if got != math.Pi/4 {
		t.Fatalf("Angle(zero, x) = %v, want pi/4 fallback", got)
	}

	deg, err := AngleDegrees(Of(0, 0), Of(1, 0))
	if err != nil {
		t.Fatalf("AngleDegrees(zero, x) failed: %v", err)
	}
	if !scalar.EqualWithinAbs(deg, 45, 1e-12) {
		t.Fatalf("AngleDegrees(zero, x) = %v, want 45", deg)
	}
}

package tuple

import "fmt"

// IsValid reports whether t qualifies as a vector tuple: a non-nil plain
// sequence of numbers, or a labeled shape whose field names are non-empty,
// unique, and match its length.
func IsValid(t Tuple) bool {
	return Validate(t) == nil
}

// Validate gates a single operand. It fails with ErrInvalidVector when t is
// not a valid vector tuple and has no effect otherwise.
func Validate(t Tuple) error {
	if t == nil {
		return fmt.Errorf("%w: nil tuple", ErrInvalidVector)
	}
	if ls, ok := t.(LabeledShape); ok {
		if err := checkFieldNames(ls.FieldNames(), t.Len()); err != nil {
			return err
		}
	}
	return nil
}

// SameShape reports whether a and b are comparable for elementwise work:
// both non-empty and of equal length.
func SameShape(a, b Tuple) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Len() > 0 && b.Len() > 0 && a.Len() == b.Len()
}

// ValidatePair gates a binary operation: both operands must be valid vector
// tuples of the same shape. Validation failures surface before any shape
// check.
func ValidatePair(t1, t2 Tuple) error {
	if err := Validate(t1); err != nil {
		return err
	}
	if err := Validate(t2); err != nil {
		return err
	}
	if !SameShape(t1, t2) {
		return fmt.Errorf("%w: lengths %d and %d", ErrShapeMismatch, t1.Len(), t2.Len())
	}
	return nil
}

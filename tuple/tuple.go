package tuple

import "fmt"

// Tuple is a fixed-length ordered sequence of real components treated as a
// one-dimensional vector. Positional order is authoritative for all vector
// operations; implementations never mutate their components after
// construction.
type Tuple interface {
	// Len returns the number of components.
	Len() int

	// At returns the component at index i. It panics if i is out of range.
	At(i int) float64

	// From builds a new tuple of the same concrete shape as the receiver
	// from the given components, in index order. Labeled shapes reject a
	// component count that does not match their field count.
	From(components []float64) (Tuple, error)
}

// LabeledShape is the capability marker for tuple shapes whose components
// are additionally addressable by field name. Concrete types opt in by
// implementing it; validation checks the declared names against Len.
type LabeledShape interface {
	// FieldNames returns the ordered field names, one per component.
	FieldNames() []string
}

// Plain is the canonical unlabeled tuple shape.
type Plain []float64

// Of builds a Plain tuple from the given components.
func Of(components ...float64) Plain {
	out := make(Plain, len(components))
	copy(out, components)
	return out
}

// FromValues converts loosely-typed numeric values into a Plain tuple. It
// accepts Go's integer and floating-point kinds and fails with
// ErrInvalidVector for anything else.
func FromValues(values ...any) (Plain, error) {
	out := make(Plain, len(values))
	for i, v := range values {
		switch n := v.(type) {
		case float64:
			out[i] = n
		case float32:
			out[i] = float64(n)
		case int:
			out[i] = float64(n)
		case int8:
			out[i] = float64(n)
		case int16:
			out[i] = float64(n)
		case int32:
			out[i] = float64(n)
		case int64:
			out[i] = float64(n)
		case uint:
			out[i] = float64(n)
		case uint8:
			out[i] = float64(n)
		case uint16:
			out[i] = float64(n)
		case uint32:
			out[i] = float64(n)
		case uint64:
			out[i] = float64(n)
		default:
			return nil, fmt.Errorf("%w: component %d has non-numeric type %T", ErrInvalidVector, i, v)
		}
	}
	return out, nil
}

// Len returns the number of components.
func (p Plain) Len() int { return len(p) }

// At returns the component at index i.
func (p Plain) At(i int) float64 { return p[i] }

// From builds a new Plain tuple from the given components.
func (p Plain) From(components []float64) (Tuple, error) {
	return Of(components...), nil
}

// Labeled is a tuple whose components additionally carry ordered field
// names. Names are addressable via Field, but positional order stays
// authoritative for all vector operations.
type Labeled struct {
	names      []string
	components []float64
}

// NewLabeled builds a labeled tuple. Field names must be non-empty, unique,
// and match the component count; violations fail with ErrInvalidVector.
func NewLabeled(names []string, components []float64) (*Labeled, error) {
	if err := checkFieldNames(names, len(components)); err != nil {
		return nil, err
	}
	return &Labeled{
		names:      append([]string(nil), names...),
		components: append([]float64(nil), components...),
	}, nil
}

func checkFieldNames(names []string, arity int) error {
	if len(names) != arity {
		return fmt.Errorf("%w: %d field names for %d components", ErrInvalidVector, len(names), arity)
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrInvalidVector)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate field name %q", ErrInvalidVector, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Len returns the number of components.
func (l *Labeled) Len() int {
	if l == nil {
		return 0
	}
	return len(l.components)
}

// At returns the component at index i.
func (l *Labeled) At(i int) float64 { return l.components[i] }

// FieldNames returns a copy of the ordered field names.
func (l *Labeled) FieldNames() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.names...)
}

// Field returns the component stored under name and whether the name exists.
func (l *Labeled) Field(name string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	for i, n := range l.names {
		if n == name {
			return l.components[i], true
		}
	}
	return 0, false
}

// From builds a new Labeled tuple with the receiver's field names and the
// given components, assigned positionally.
func (l *Labeled) From(components []float64) (Tuple, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil labeled tuple", ErrInvalidVector)
	}
	return NewLabeled(l.names, components)
}

// components copies t's values into a fresh slice for in-place arithmetic.
func components(t Tuple) []float64 {
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

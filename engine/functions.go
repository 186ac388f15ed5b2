package engine

import (
	"database/sql"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"

	"github.com/vectuple/vectuple/tuple"
)

// RegisterTupleFunctions registers vec_dot, vec_magnitude and vec_angle with
// the driver so they are available on new connections opened after this call.
// Note: existing open connections will not see new functions.
//
// The functions operate on BLOBs in the store.EncodeComponents format;
// vec_angle returns radians and inherits tuple.Angle's zero-magnitude
// fallback of π/4.
func RegisterTupleFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_dot", 2, vecDotImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_magnitude", 1, vecMagnitudeImpl)
	_ = sqlite.RegisterDeterministicScalarFunction("vec_angle", 2, vecAngleImpl)
	return nil
}

func asTuple(arg driver.Value) (tuple.Tuple, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		values, err := decodeComponents(v)
		if err != nil {
			return nil, err
		}
		return tuple.Of(values...), nil
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for tuple; want BLOB", arg)
	}
}

func vecDotImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_dot: expected 2 arguments, got %d", len(args))
	}
	a, err := asTuple(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asTuple(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return tuple.Dot(a, b)
}

func vecMagnitudeImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("vec_magnitude: expected 1 argument, got %d", len(args))
	}
	t, err := asTuple(args[0])
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return tuple.Magnitude(t)
}

func vecAngleImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec_angle: expected 2 arguments, got %d", len(args))
	}
	a, err := asTuple(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asTuple(args[1])
	if err != nil {
		return nil, err
	}
	if a == nil || b == nil {
		return nil, nil
	}
	return tuple.Angle(a, b)
}

// Local minimal decode helper mirroring store.DecodeComponents, kept here to
// avoid an import cycle with the store package's tests.
func decodeComponents(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("engine: invalid components blob length %d", len(b))
	}
	n := len(b) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out, nil
}

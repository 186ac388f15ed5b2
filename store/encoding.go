package store

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeComponents encodes tuple components into a BLOB representation
// suitable for storage in SQLite. The encoding is a simple little-endian
// sequence of IEEE 754 float64 values without a length prefix; the length is
// derived from the BLOB size on decode. NaN and infinity round-trip
// bit-exactly.
func EncodeComponents(components []float64) ([]byte, error) {
	if len(components) == 0 {
		return nil, nil
	}
	b := make([]byte, len(components)*8)
	for i, v := range components {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b, nil
}

// DecodeComponents decodes a BLOB produced by EncodeComponents back into a
// slice of float64 values.
func DecodeComponents(b []byte) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("store: invalid components blob length %d (not multiple of 8)", len(b))
	}
	n := len(b) / 8
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return out, nil
}

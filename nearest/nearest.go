package nearest

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/vec/search"

	"github.com/vectuple/vectuple/tuple"
)

// Index is a simple brute-force index ranking candidates by their angle to
// a query tuple. Components are held as float32 so magnitudes and cosine
// distances go through the search kernels.
type Index struct {
	names []string
	vecs  [][]float32
	dim   int
	mags  []float32
}

// Build loads names and tuples and precomputes magnitudes. All tuples must
// be valid and share one length.
func (ix *Index) Build(names []string, tuples []tuple.Tuple) error {
	if len(names) != len(tuples) {
		return fmt.Errorf("nearest: names and tuples length mismatch: %d != %d", len(names), len(tuples))
	}
	if len(tuples) == 0 {
		ix.names, ix.vecs, ix.mags, ix.dim = nil, nil, nil, 0
		return nil
	}

	dim := tuples[0].Len()
	vecs := make([][]float32, len(tuples))
	mags := make([]float32, len(tuples))
	for j, t := range tuples {
		if err := tuple.Validate(t); err != nil {
			return err
		}
		if t.Len() != dim {
			return fmt.Errorf("%w: tuple %q has length %d, index length %d",
				tuple.ErrShapeMismatch, names[j], t.Len(), dim)
		}
		v := toFloat32(t)
		vecs[j] = v
		mags[j] = search.Float32s(v).Magnitude()
	}

	ix.names = append([]string(nil), names...)
	ix.vecs = vecs
	ix.dim = dim
	ix.mags = mags
	return nil
}

// Len returns the number of indexed tuples.
func (ix *Index) Len() int { return len(ix.vecs) }

// Query returns up to k names ranked by ascending angle to q, with the
// angles in radians. Zero-magnitude operands fall back to the same π/4
// convention as tuple.Angle.
func (ix *Index) Query(q tuple.Tuple, k int) ([]string, []float64, error) {
	if err := tuple.Validate(q); err != nil {
		return nil, nil, err
	}
	if ix.dim == 0 || len(ix.vecs) == 0 {
		return nil, nil, nil
	}
	if q.Len() != ix.dim {
		return nil, nil, fmt.Errorf("%w: query length %d, index length %d",
			tuple.ErrShapeMismatch, q.Len(), ix.dim)
	}

	qv := toFloat32(q)
	qm := search.Float32s(qv).Magnitude()

	type scored struct {
		idx   int
		angle float64
	}
	scoreds := make([]scored, len(ix.vecs))
	for j := range ix.vecs {
		scoreds[j] = scored{idx: j, angle: ix.angleTo(qv, qm, j)}
	}
	sort.Slice(scoreds, func(a, b int) bool { return scoreds[a].angle < scoreds[b].angle })

	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outNames := make([]string, k)
	outAngles := make([]float64, k)
	for n := 0; n < k; n++ {
		outNames[n] = ix.names[scoreds[n].idx]
		outAngles[n] = scoreds[n].angle
	}
	return outNames, outAngles, nil
}

func (ix *Index) angleTo(qv []float32, qm float32, j int) float64 {
	if qm == 0 || ix.mags[j] == 0 {
		return math.Pi / 4
	}
	dist := search.Float32s(qv).CosineDistanceWithMagnitudesNeon(ix.vecs[j], qm, ix.mags[j])
	cos := 1 - float64(dist)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

func toFloat32(t tuple.Tuple) []float32 {
	out := make([]float32, t.Len())
	for i := range out {
		out[i] = float32(t.At(i))
	}
	return out
}

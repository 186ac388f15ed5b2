// Package nearest provides a brute-force nearest-neighbour search over a
// set of named vector tuples, ranked by the angle between each candidate
// and the query. Magnitudes and cosine distances run through the vectorised
// kernels in github.com/viant/vec/search.
package nearest

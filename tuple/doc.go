// Package tuple treats fixed-length ordered sequences of numbers as
// one-dimensional mathematical vectors. It includes:
//   - Plain and Labeled tuple shapes and their validation
//   - Elementwise arithmetic with shape-preserving results
//   - Vector algorithms: dot, cross, magnitude, normalize, mean, angle
//
// Every operation is pure: inputs are never mutated and results are freshly
// allocated, so all functions are safe for concurrent use.
package tuple

// Package store persists named vector tuples in SQLite. It includes:
//   - Store: durable storage keyed by tuple name
//   - Schema helpers for the tuples table
//   - Component BLOB encoding (little-endian IEEE-754 float64)
//
// Labeled tuples round-trip their field names through a JSON column, so Load
// rebuilds the same concrete shape that Save received.
package store

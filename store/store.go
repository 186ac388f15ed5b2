package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vectuple/vectuple/tuple"
)

// ErrNotFound reports a lookup for a tuple name that is not stored.
var ErrNotFound = errors.New("store: tuple not found")

// Record pairs a stored tuple with its name.
type Record struct {
	Name  string
	Tuple tuple.Tuple
}

// Store persists named vector tuples in a SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a SQLite-backed Store and ensures the tuples schema exists in
// the provided database.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Save validates t and inserts or updates it under name.
func (s *Store) Save(ctx context.Context, name string, t tuple.Tuple) error {
	if name == "" {
		return fmt.Errorf("store: tuple name must be set")
	}
	if err := tuple.Validate(t); err != nil {
		return err
	}

	values := make([]float64, t.Len())
	for i := range values {
		values[i] = t.At(i)
	}
	blob, err := EncodeComponents(values)
	if err != nil {
		return err
	}

	var fields any
	if ls, ok := t.(tuple.LabeledShape); ok {
		encoded, err := json.Marshal(ls.FieldNames())
		if err != nil {
			return err
		}
		fields = string(encoded)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO tuples(name, fields, components)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  fields = excluded.fields,
  components = excluded.components`, name, fields, blob)
	return err
}

// Load returns the stored tuple with the given name, rebuilding its concrete
// shape: Plain when no field names were stored, Labeled otherwise. A missing
// name fails with ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (tuple.Tuple, error) {
	var fields sql.NullString
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT fields, components FROM tuples WHERE name = ?`, name).Scan(&fields, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(name, fields, blob)
}

// Names returns the stored tuple names in lexical order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM tuples ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// All returns every stored tuple in lexical name order.
func (s *Store) All(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, fields, components FROM tuples ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var name string
		var fields sql.NullString
		var blob []byte
		if err := rows.Scan(&name, &fields, &blob); err != nil {
			return nil, err
		}
		t, err := decodeRecord(name, fields, blob)
		if err != nil {
			return nil, err
		}
		out = append(out, Record{Name: name, Tuple: t})
	}
	return out, rows.Err()
}

// Remove deletes the tuple with the given name. Removing an absent name is
// not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tuples WHERE name = ?`, name)
	return err
}

func decodeRecord(name string, fields sql.NullString, blob []byte) (tuple.Tuple, error) {
	values, err := DecodeComponents(blob)
	if err != nil {
		return nil, err
	}
	if !fields.Valid {
		return tuple.Of(values...), nil
	}
	var names []string
	if err := json.Unmarshal([]byte(fields.String), &names); err != nil {
		return nil, fmt.Errorf("store: invalid fields column for %s: %w", name, err)
	}
	return tuple.NewLabeled(names, values)
}

package store

import (
	"database/sql"
)

const tuplesSchema = `
CREATE TABLE IF NOT EXISTS tuples (
    name TEXT PRIMARY KEY,
    fields TEXT,
    components BLOB
);
`

// EnsureSchema creates the tuples table in the provided database if it does
// not already exist. A NULL fields column marks a plain tuple; labeled
// tuples store their field names as a JSON array.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(tuplesSchema)
	return err
}

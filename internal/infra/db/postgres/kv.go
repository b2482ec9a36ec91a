package postgres

import (
	"context"
	"fmt"
)

// KV implements the kv.Store contract over a single table. Records are
// insert-only; keys embed creation timestamps so collisions do not
// happen in practice and an accidental duplicate is rejected rather
// than overwritten.
type KV struct {
	db *DB
}

func NewKV(db *DB) *KV { return &KV{db: db} }

// EnsureSchema creates the backing table when it does not exist yet.
func (s *KV) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS saved_quotes (
			key   text PRIMARY KEY,
			value text NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("saved_quotes schema: %w", err)
	}
	return nil
}

func (s *KV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.Pool.Exec(ctx,
		`INSERT INTO saved_quotes (key, value) VALUES ($1, $2)`, key, value)
	if err != nil {
		return fmt.Errorf("saved_quotes insert: %w", err)
	}
	return nil
}

func (s *KV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT key FROM saved_quotes`)
	if err != nil {
		return nil, fmt.Errorf("saved_quotes keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("saved_quotes keys: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("saved_quotes keys: %w", err)
	}
	return keys, nil
}

func (s *KV) GetMulti(ctx context.Context, keys []string) (map[string]string, error) {
	rows, err := s.db.Pool.Query(ctx,
		`SELECT key, value FROM saved_quotes WHERE key = ANY($1)`, keys)
	if err != nil {
		return nil, fmt.Errorf("saved_quotes get: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("saved_quotes get: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("saved_quotes get: %w", err)
	}
	return out, nil
}

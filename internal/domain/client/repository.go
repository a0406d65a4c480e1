package client

import "context"

// Reader is the read side used by lookups.
type Reader interface {
	Generation() Generation

	// Get returns ErrNotFound when no record matches the key.
	Get(ctx context.Context, key Key) (*Record, error)

	// List returns the records matching any of the codes. cd is ignored by
	// the legacy generation.
	List(ctx context.Context, cd string, codes []string) ([]Record, error)
}

// BatchResult summarises one upsert batch.
type BatchResult struct {
	Executed int
	Failed   int
	// Errors holds one entry per failed row, keyed by identity.
	Errors map[Key]error
}

// Writer is the write side used by the importer.
type Writer interface {
	Generation() Generation

	// EnsureIndexes creates the identity index, replacing a same-named
	// index that lacks the unique flag.
	EnsureIndexes(ctx context.Context) error

	// Upsert writes every field of the records, keeping created_at of rows
	// that already exist.
	Upsert(ctx context.Context, records []Record) (BatchResult, error)

	Count(ctx context.Context) (int64, error)
}

type Repository interface {
	Reader
	Writer
}

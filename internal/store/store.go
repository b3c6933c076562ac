// Package store persists processed CVs as (text, metadata) documents.
// The durable backend is Postgres; when it cannot be initialized the process
// degrades to an in-memory store that does not survive a restart.
package store

import (
	"context"
	"errors"
)

// Document is one stored CV.
type Document struct {
	ID       string            `json:"id"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
}

// ErrNotFound is returned by GetByID for an unknown id.
var ErrNotFound = errors.New("document not found")

// Store is the document store contract. Add failures surface as errors since
// callers must know ingestion did not happen; read and delete failures degrade
// to empty results and false flags.
type Store interface {
	// Add persists a document and returns its fresh, globally unique id.
	Add(ctx context.Context, text string, metadata map[string]string) (string, error)
	GetByID(ctx context.Context, id string) (*Document, error)
	// GetAll returns every stored document in insertion order.
	GetAll(ctx context.Context) ([]Document, error)
	Count(ctx context.Context) (int, error)
	// Delete removes one document, reporting whether a document was removed.
	Delete(ctx context.Context, id string) bool
	// Clear removes every document. Clearing an empty store succeeds.
	Clear(ctx context.Context) bool
	Close() error
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

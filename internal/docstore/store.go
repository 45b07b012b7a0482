// Package docstore provides hierarchical, path-keyed document storage with
// atomic multi-document transactions.
package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Store is the storage port shared by every service. Documents are JSON
// records keyed by slash-separated paths (collection/.../id).
type Store interface {
	// Get reads the document at path into out. Returns ErrNotFound if no
	// document exists there.
	Get(ctx context.Context, path string, out any) error
	// Set writes doc at path, overwriting any existing document.
	Set(ctx context.Context, path string, doc any) error
	// Delete removes the document at path. Deleting an absent path is not
	// an error.
	Delete(ctx context.Context, path string) error
	// RunTransaction executes fn against a transactional view of the
	// store. Either every write issued through the Tx commits, or none do.
	// Implementations retry fn when a concurrent commit invalidates one of
	// its reads, so fn must be safe to re-run.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error
}

// Tx is the view passed to RunTransaction callbacks. Reads observe writes
// made earlier in the same transaction.
type Tx interface {
	Get(path string, out any) error
	Set(path string, doc any) error
	Delete(path string) error
}

package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store used by tests and database-free local runs.
// Holding the mutex for the whole of RunTransaction makes transactions
// trivially serializable.
type MemStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]json.RawMessage)}
}

func (s *MemStore) Get(ctx context.Context, path string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(path, out)
}

func (s *MemStore) Set(ctx context.Context, path string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = raw
	return nil
}

func (s *MemStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
	return nil
}

func (s *MemStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:   s,
		writes:  make(map[string]json.RawMessage),
		deletes: make(map[string]bool),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for path, raw := range tx.writes {
		s.docs[path] = raw
	}
	for path := range tx.deletes {
		delete(s.docs, path)
	}
	return nil
}

func (s *MemStore) getLocked(path string, out any) error {
	raw, ok := s.docs[path]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

// memTx stages writes and deletes, applying them only if the callback
// succeeds. Reads observe earlier staged writes.
type memTx struct {
	store   *MemStore
	writes  map[string]json.RawMessage
	deletes map[string]bool
}

func (t *memTx) Get(path string, out any) error {
	if raw, ok := t.writes[path]; ok {
		return json.Unmarshal(raw, out)
	}
	if t.deletes[path] {
		return ErrNotFound
	}
	return t.store.getLocked(path, out)
}

func (t *memTx) Set(path string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	delete(t.deletes, path)
	t.writes[path] = raw
	return nil
}

func (t *memTx) Delete(path string) error {
	delete(t.writes, path)
	t.deletes[path] = true
	return nil
}

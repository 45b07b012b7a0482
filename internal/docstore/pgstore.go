package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// txAttempts bounds retries of transactions aborted by serialization
// conflicts.
const txAttempts = 3

// PGStore keeps every document in a single documents table, path as primary
// key and the record as JSONB. Transactions run at serializable isolation,
// which gives the optimistic-conflict behavior the services rely on: a
// transaction whose reads were invalidated by a concurrent commit aborts
// with SQLSTATE 40001 and is retried.
type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

// EnsureSchema creates the documents table if it does not exist.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			path TEXT PRIMARY KEY,
			doc  JSONB NOT NULL
		)
	`)
	return err
}

func (s *PGStore) Get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var raw []byte
	err := s.db.QueryRow(ctx, `SELECT doc FROM documents WHERE path=$1`, path).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *PGStore) Set(ctx context.Context, path string, doc any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (path, doc) VALUES ($1,$2)
		ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc
	`, path, raw)
	return err
}

func (s *PGStore) Delete(ctx context.Context, path string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM documents WHERE path=$1`, path)
	return err
}

func (s *PGStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	var err error
	for attempt := 0; attempt < txAttempts; attempt++ {
		err = s.runOnce(ctx, fn)
		if isSerializationFailure(err) {
			continue
		}
		return err
	}
	return err
}

func (s *PGStore) runOnce(ctx context.Context, fn func(tx Tx) error) error {
	pgtx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() { _ = pgtx.Rollback(ctx) }()

	if err := fn(&pgTx{ctx: ctx, tx: pgtx}); err != nil {
		return err
	}
	return pgtx.Commit(ctx)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

type pgTx struct {
	ctx context.Context
	tx  pgx.Tx
}

func (t *pgTx) Get(path string, out any) error {
	var raw []byte
	err := t.tx.QueryRow(t.ctx, `SELECT doc FROM documents WHERE path=$1`, path).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (t *pgTx) Set(path string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(t.ctx, `
		INSERT INTO documents (path, doc) VALUES ($1,$2)
		ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc
	`, path, raw)
	return err
}

func (t *pgTx) Delete(path string) error {
	_, err := t.tx.Exec(t.ctx, `DELETE FROM documents WHERE path=$1`, path)
	return err
}

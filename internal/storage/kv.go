package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the primitive key-value surface shared by KV and Tx.
// Values are JSON-encoded (or string-encoded integers for raw counters).
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// KV reads and writes the kv_store table.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	return kvGet(ctx, k.db, key)
}

func (k *KV) Set(ctx context.Context, key string, value string) error {
	return kvSet(ctx, k.db, key, value)
}

// Update runs fn inside a SQL transaction. Every read-modify-write in the
// stats engine goes through here so that two activity events firing in
// quick succession cannot lose each other's writes.
func (k *KV) Update(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := k.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(&Tx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

// Tx exposes the same Get/Set surface scoped to one transaction.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Get(ctx context.Context, key string) (string, bool, error) {
	return kvGet(ctx, t.tx, key)
}

func (t *Tx) Set(ctx context.Context, key string, value string) error {
	return kvSet(ctx, t.tx, key, value)
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func kvGet(ctx context.Context, q querier, key string) (string, bool, error) {
	row := q.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return value, true, nil
}

func kvSet(ctx context.Context, q querier, key string, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

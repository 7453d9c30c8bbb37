package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/team-voting/internal/repository/document"
	"github.com/bagdasarian/team-voting/migrations"
)

var _ document.Backend = (*Backend)(nil)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Schema одинаково работает в Postgres и SQLite.
// payload хранится как TEXT, чтобы поврежденный документ читался так же, как в файле.
var Schema = migrations.InitUp

// Backend хранит документы в таблице documents, по одной строке на документ
type Backend struct {
	executor DBExecutor
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{executor: db}
}

func NewBackendWithTx(tx *sql.Tx) *Backend {
	return &Backend{executor: tx}
}

// CreateSchema можно вызывать повторно
func (b *Backend) CreateSchema(ctx context.Context) error {
	if _, err := b.executor.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (b *Backend) Read(ctx context.Context, kind document.Kind) ([]byte, error) {
	query := `
		SELECT payload
		FROM documents
		WHERE kind = $1
	`

	var payload string
	err := b.executor.QueryRowContext(ctx, query, string(kind)).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotExist
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (b *Backend) Write(ctx context.Context, kind document.Kind, data []byte) error {
	query := `
		INSERT INTO documents (kind, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (kind) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`

	_, err := b.executor.ExecContext(ctx, query, string(kind), string(data), time.Now().UTC())
	return err
}

// Package duckdb implements the catalog repositories on an embedded DuckDB
// database, for local use without a Postgres server.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"explorer/internal/domain"
	"explorer/internal/domain/repositories"

	_ "github.com/marcboeker/go-duckdb"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	DB     *sql.DB
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Prefix  string
	Folders string
	Files   string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Prefix:  prefix,
		Folders: prefix + "folders",
		Files:   prefix + "files",
	}
}

// OpenDB opens the database file at path. An empty path opens an in-memory database.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %q: %w", path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping duckdb %q: %w", path, err)
	}

	return db, nil
}

// GetExecutor returns the transaction stored in ctx, or db when there is none
func GetExecutor(ctx context.Context, db *sql.DB) DBTX {
	if tx, ok := repositories.GetTx[*sql.Tx](ctx); ok && tx != nil {
		return tx
	}
	return db
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}

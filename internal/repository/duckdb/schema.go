package duckdb

import (
	"context"
	"database/sql"
	"log/slog"

	"explorer/internal/domain/repositories/catalog"
)

// SchemaManager creates and drops the prefixed catalog tables
type SchemaManager struct {
	db     *sql.DB
	tables *TableNames
	logger *slog.Logger
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(config *RepositoryConfig) catalog.SchemaManager {
	return &SchemaManager{db: config.DB, tables: config.Tables, logger: config.Logger}
}

// EnsureSchema creates tables and indexes if they don't exist.
// IDs are assigned by the repository, so the tables carry no defaults for them.
func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + m.tables.Folders + ` (
			id VARCHAR PRIMARY KEY,
			name VARCHAR NOT NULL,
			parent_id VARCHAR,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + m.tables.Files + ` (
			id VARCHAR PRIMARY KEY,
			name VARCHAR NOT NULL,
			folder_id VARCHAR NOT NULL,
			size BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + m.tables.Prefix + `folders_parent ON ` + m.tables.Folders + `(parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + m.tables.Prefix + `files_folder ON ` + m.tables.Files + `(folder_id)`,
	}

	executor := GetExecutor(ctx, m.db)
	for _, stmt := range statements {
		if _, err := executor.ExecContext(ctx, stmt); err != nil {
			return storageError("ensure schema", err)
		}
	}

	m.logger.Debug("schema ready", "folders", m.tables.Folders, "files", m.tables.Files)
	return nil
}

// DropAll drops the catalog tables, files first
func (m *SchemaManager) DropAll(ctx context.Context) error {
	executor := GetExecutor(ctx, m.db)
	for _, table := range []string{m.tables.Files, m.tables.Folders} {
		if _, err := executor.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return storageError("drop table "+table, err)
		}
		m.logger.Info("dropped table", "table", table)
	}
	return nil
}

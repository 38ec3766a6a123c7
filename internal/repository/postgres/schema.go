package postgres

import (
	"context"
	"log/slog"

	"explorer/internal/domain/repositories/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaManager creates and drops the prefixed catalog tables
type SchemaManager struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(config *RepositoryConfig) catalog.SchemaManager {
	return &SchemaManager{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// EnsureSchema creates tables and indexes if they don't exist.
// Folder IDs are TEXT so that any client-supplied identifier can be looked up
// without a cast error; parent_id carries no foreign key.
func (m *SchemaManager) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ` + m.tables.Folders + ` (
			id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
			name TEXT NOT NULL,
			parent_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ` + m.tables.Files + ` (
			id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
			name TEXT NOT NULL,
			folder_id TEXT NOT NULL REFERENCES ` + m.tables.Folders + `(id) ON DELETE CASCADE,
			size BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_` + m.tables.Prefix + `folders_parent_name ON ` + m.tables.Folders + `(parent_id, name)`,
		`CREATE INDEX IF NOT EXISTS idx_` + m.tables.Prefix + `folders_name ON ` + m.tables.Folders + `(name)`,
		`CREATE INDEX IF NOT EXISTS idx_` + m.tables.Prefix + `files_folder_name ON ` + m.tables.Files + `(folder_id, name)`,
	}

	for _, stmt := range statements {
		if _, err := GetExecutor(ctx, m.pool).Exec(ctx, stmt); err != nil {
			return StorageError("ensure schema", err)
		}
	}

	m.logger.Debug("schema ready", "folders", m.tables.Folders, "files", m.tables.Files)
	return nil
}

// DropAll drops the catalog tables, files first
func (m *SchemaManager) DropAll(ctx context.Context) error {
	for _, table := range []string{m.tables.Files, m.tables.Folders} {
		if _, err := GetExecutor(ctx, m.pool).Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return StorageError("drop table "+table, err)
		}
		m.logger.Info("dropped table", "table", table)
	}
	return nil
}

// Package repository selects and wires the catalog store adapter.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"explorer/internal/config"
	"explorer/internal/domain/repositories"
	catalogRepo "explorer/internal/domain/repositories/catalog"
	"explorer/internal/repository/duckdb"
	"explorer/internal/repository/postgres"
	pgCatalog "explorer/internal/repository/postgres/catalog"
)

// Store bundles the repositories of one backing database
type Store struct {
	Driver  string
	Folders catalogRepo.FolderRepository
	Seeds   catalogRepo.SeedRepository
	Schema  catalogRepo.SchemaManager
	Tx      repositories.TransactionManager

	close func()
}

// Close releases the underlying connection pool
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the store selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.StoreDriverDuckDB:
		return openDuckDB(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", config.StoreDriverPostgres)
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	folders := pgCatalog.NewFolderRepository(repoConfig)

	logger.Info("connected to postgres", "table_prefix", cfg.TablePrefix)

	return &Store{
		Driver:  config.StoreDriverPostgres,
		Folders: folders,
		Seeds:   folders,
		Schema:  postgres.NewSchemaManager(repoConfig),
		Tx:      postgres.NewTransactionManager(repoConfig),
		close:   pool.Close,
	}, nil
}

func openDuckDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	db, err := duckdb.OpenDB(ctx, cfg.DuckDBPath)
	if err != nil {
		return nil, err
	}

	repoConfig := &duckdb.RepositoryConfig{
		DB:     db,
		Tables: duckdb.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	folders := duckdb.NewFolderRepository(repoConfig)

	logger.Info("opened duckdb", "path", cfg.DuckDBPath, "table_prefix", cfg.TablePrefix)

	return &Store{
		Driver:  config.StoreDriverDuckDB,
		Folders: folders,
		Seeds:   folders,
		Schema:  duckdb.NewSchemaManager(repoConfig),
		Tx:      duckdb.NewTransactionManager(repoConfig),
		close: func() {
			if err := db.Close(); err != nil {
				logger.Error("close duckdb", "error", err)
			}
		},
	}, nil
}

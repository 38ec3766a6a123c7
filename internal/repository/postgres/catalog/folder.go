package catalog

import (
	"context"
	"fmt"
	"log/slog"

	models "explorer/internal/domain/models/catalog"
	catalogRepo "explorer/internal/domain/repositories/catalog"
	"explorer/internal/repository/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	folderColumns = "id, name, parent_id, created_at, updated_at"
	fileColumns   = "id, name, folder_id, size, created_at, updated_at"
)

// PostgresFolderRepository implements FolderRepository and SeedRepository
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *postgres.TableNames
	logger *slog.Logger
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *postgres.RepositoryConfig) *PostgresFolderRepository {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

var (
	_ catalogRepo.FolderRepository = (*PostgresFolderRepository)(nil)
	_ catalogRepo.SeedRepository   = (*PostgresFolderRepository)(nil)
)

// GetAllWithFiles retrieves every folder with its files attached.
// Folders without files get an empty (non-nil) slice.
func (r *PostgresFolderRepository) GetAllWithFiles(ctx context.Context) ([]models.Folder, error) {
	folders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY name ASC
	`, fileColumns, r.tables.Files)

	files, err := r.queryFiles(ctx, "get all files", query)
	if err != nil {
		return nil, err
	}

	byFolder := make(map[string][]models.File, len(folders))
	for _, file := range files {
		byFolder[file.FolderID] = append(byFolder[file.FolderID], file)
	}

	for i := range folders {
		folders[i].Files = byFolder[folders[i].ID]
		if folders[i].Files == nil {
			folders[i].Files = []models.File{}
		}
	}

	return folders, nil
}

// GetAll retrieves every folder (flat list, no files)
func (r *PostgresFolderRepository) GetAll(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY name ASC
	`, folderColumns, r.tables.Folders)

	return r.queryFolders(ctx, "get all folders", query)
}

// ListChildren lists immediate child folders; nil parentID lists roots
func (r *PostgresFolderRepository) ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error) {
	if parentID == nil {
		query := fmt.Sprintf(`
			SELECT %s
			FROM %s
			WHERE parent_id IS NULL
			ORDER BY name ASC
		`, folderColumns, r.tables.Folders)
		return r.queryFolders(ctx, "list root folders", query)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE parent_id = $1
		ORDER BY name ASC
	`, folderColumns, r.tables.Folders)
	return r.queryFolders(ctx, "list folder children", query, *parentID)
}

// GetByID retrieves a folder by ID, returning nil when it does not exist
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, folderColumns, r.tables.Folders)

	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, id)
	if err != nil {
		return nil, postgres.StorageError("get folder", err)
	}

	folder, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Folder])
	if err != nil {
		if postgres.IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, postgres.StorageError("get folder", err)
	}

	return &folder, nil
}

// Create inserts a folder; the store assigns ID and timestamps
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, parent_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, r.tables.Folders)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		folder.Name,
		folder.ParentID,
	).Scan(&folder.ID, &folder.CreatedAt, &folder.UpdatedAt)
	if err != nil {
		return postgres.StorageError("create folder", err)
	}

	return nil
}

// Search finds folders whose name contains query (case-sensitive, wildcards
// matched literally), ordered by name and capped at limit
func (r *PostgresFolderRepository) Search(ctx context.Context, query string, limit int) ([]models.Folder, error) {
	sql := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE name LIKE '%%' || $1 || '%%' ESCAPE '\'
		ORDER BY name ASC
		LIMIT $2
	`, folderColumns, r.tables.Folders)

	return r.queryFolders(ctx, "search folders", sql, postgres.EscapeLikePattern(query), limit)
}

// ListFiles lists the files owned by a folder
func (r *PostgresFolderRepository) ListFiles(ctx context.Context, folderID string) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE folder_id = $1
		ORDER BY name ASC
	`, fileColumns, r.tables.Files)

	return r.queryFiles(ctx, "list files", query, folderID)
}

// CreateFile inserts a file; the store assigns ID and timestamps
func (r *PostgresFolderRepository) CreateFile(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, folder_id, size)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Files)

	err := postgres.GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		file.Name,
		file.FolderID,
		file.Size,
	).Scan(&file.ID, &file.CreatedAt, &file.UpdatedAt)
	if err != nil {
		return postgres.StorageError("create file", err)
	}

	return nil
}

// ClearAll deletes every file and folder, keeping the schema
func (r *PostgresFolderRepository) ClearAll(ctx context.Context) error {
	executor := postgres.GetExecutor(ctx, r.pool)

	if _, err := executor.Exec(ctx, "DELETE FROM "+r.tables.Files); err != nil {
		return postgres.StorageError("clear files", err)
	}
	if _, err := executor.Exec(ctx, "DELETE FROM "+r.tables.Folders); err != nil {
		return postgres.StorageError("clear folders", err)
	}

	return nil
}

// queryFolders runs a folder SELECT and always returns a non-nil slice on success
func (r *PostgresFolderRepository) queryFolders(ctx context.Context, op, query string, args ...any) ([]models.Folder, error) {
	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.StorageError(op, err)
	}

	folders, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Folder])
	if err != nil {
		return nil, postgres.StorageError(op, err)
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	return folders, nil
}

func (r *PostgresFolderRepository) queryFiles(ctx context.Context, op, query string, args ...any) ([]models.File, error) {
	rows, err := postgres.GetExecutor(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.StorageError(op, err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.File])
	if err != nil {
		return nil, postgres.StorageError(op, err)
	}
	if files == nil {
		files = []models.File{}
	}

	return files, nil
}

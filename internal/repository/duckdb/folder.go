package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	models "explorer/internal/domain/models/catalog"
	catalogRepo "explorer/internal/domain/repositories/catalog"

	"github.com/google/uuid"
)

const (
	folderColumns = "id, name, parent_id, created_at, updated_at"
	fileColumns   = "id, name, folder_id, size, created_at, updated_at"
)

// FolderRepository implements the catalog repositories on DuckDB
type FolderRepository struct {
	db     *sql.DB
	tables *TableNames
	logger *slog.Logger
	now    func() time.Time
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) *FolderRepository {
	return &FolderRepository{
		db:     config.DB,
		tables: config.Tables,
		logger: config.Logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

var (
	_ catalogRepo.FolderRepository = (*FolderRepository)(nil)
	_ catalogRepo.SeedRepository   = (*FolderRepository)(nil)
)

// GetAllWithFiles retrieves every folder with its files attached
func (r *FolderRepository) GetAllWithFiles(ctx context.Context) ([]models.Folder, error) {
	folders, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	files, err := r.queryFiles(ctx, "get all files",
		fmt.Sprintf("SELECT %s FROM %s ORDER BY name ASC", fileColumns, r.tables.Files))
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
func (r *FolderRepository) GetAll(ctx context.Context) ([]models.Folder, error) {
	return r.queryFolders(ctx, "get all folders",
		fmt.Sprintf("SELECT %s FROM %s ORDER BY name ASC", folderColumns, r.tables.Folders))
}

// ListChildren lists immediate child folders; nil parentID lists roots
func (r *FolderRepository) ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error) {
	if parentID == nil {
		return r.queryFolders(ctx, "list root folders",
			fmt.Sprintf("SELECT %s FROM %s WHERE parent_id IS NULL ORDER BY name ASC", folderColumns, r.tables.Folders))
	}

	return r.queryFolders(ctx, "list folder children",
		fmt.Sprintf("SELECT %s FROM %s WHERE parent_id = ? ORDER BY name ASC", folderColumns, r.tables.Folders),
		*parentID)
}

// GetByID retrieves a folder by ID, returning nil when it does not exist
func (r *FolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", folderColumns, r.tables.Folders)

	folder, err := scanFolder(GetExecutor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError("get folder", err)
	}

	return &folder, nil
}

// Create inserts a folder with a generated UUID and the current time
func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	now := r.now()
	id := uuid.NewString()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?)`, r.tables.Folders, folderColumns)
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, id, folder.Name, nullString(folder.ParentID), now, now)
	if err != nil {
		return storageError("create folder", err)
	}

	folder.ID = id
	folder.CreatedAt = now
	folder.UpdatedAt = now
	return nil
}

// Search finds folders whose name contains query (case-sensitive), ordered by name
func (r *FolderRepository) Search(ctx context.Context, query string, limit int) ([]models.Folder, error) {
	return r.queryFolders(ctx, "search folders",
		fmt.Sprintf("SELECT %s FROM %s WHERE contains(name, ?) ORDER BY name ASC LIMIT ?", folderColumns, r.tables.Folders),
		query, limit)
}

// ListFiles lists the files owned by a folder
func (r *FolderRepository) ListFiles(ctx context.Context, folderID string) ([]models.File, error) {
	return r.queryFiles(ctx, "list files",
		fmt.Sprintf("SELECT %s FROM %s WHERE folder_id = ? ORDER BY name ASC", fileColumns, r.tables.Files),
		folderID)
}

// CreateFile inserts a file with a generated UUID and the current time
func (r *FolderRepository) CreateFile(ctx context.Context, file *models.File) error {
	now := r.now()
	id := uuid.NewString()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)`, r.tables.Files, fileColumns)
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, id, file.Name, file.FolderID, file.Size, now, now)
	if err != nil {
		return storageError("create file", err)
	}

	file.ID = id
	file.CreatedAt = now
	file.UpdatedAt = now
	return nil
}

// ClearAll deletes every file and folder, keeping the schema
func (r *FolderRepository) ClearAll(ctx context.Context) error {
	executor := GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "DELETE FROM "+r.tables.Files); err != nil {
		return storageError("clear files", err)
	}
	if _, err := executor.ExecContext(ctx, "DELETE FROM "+r.tables.Folders); err != nil {
		return storageError("clear folders", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var (
		folder   models.Folder
		parentID sql.NullString
	)
	err := row.Scan(&folder.ID, &folder.Name, &parentID, &folder.CreatedAt, &folder.UpdatedAt)
	if err != nil {
		return models.Folder{}, err
	}
	if parentID.Valid {
		folder.ParentID = &parentID.String
	}
	return folder, nil
}

func (r *FolderRepository) queryFolders(ctx context.Context, op, query string, args ...any) ([]models.Folder, error) {
	rows, err := GetExecutor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	folders := []models.Folder{}
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, storageError(op, err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}

	return folders, nil
}

func (r *FolderRepository) queryFiles(ctx context.Context, op, query string, args ...any) ([]models.File, error) {
	rows, err := GetExecutor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(op, err)
	}
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		var file models.File
		if err := rows.Scan(&file.ID, &file.Name, &file.FolderID, &file.Size, &file.CreatedAt, &file.UpdatedAt); err != nil {
			return nil, storageError(op, err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(op, err)
	}

	return files, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

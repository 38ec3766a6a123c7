package catalog

import (
	"context"

	"explorer/internal/domain/models/catalog"
)

// FolderRepository defines data access operations for the folder catalog.
// Every multi-row read is ordered by name ascending. Absent records are
// reported as empty results, never as errors; I/O failures wrap
// domain.ErrStorage.
type FolderRepository interface {
	// GetAllWithFiles retrieves every folder (flat list) with its files attached
	GetAllWithFiles(ctx context.Context) ([]catalog.Folder, error)

	// ListChildren lists immediate child folders (nil parentID = roots)
	ListChildren(ctx context.Context, parentID *string) ([]catalog.Folder, error)

	// GetByID retrieves a folder by ID, returning nil when it does not exist
	GetByID(ctx context.Context, id string) (*catalog.Folder, error)

	// Create inserts a folder and fills in its assigned ID and timestamps
	Create(ctx context.Context, folder *catalog.Folder) error

	// Search finds folders whose name contains query, up to limit results
	Search(ctx context.Context, query string, limit int) ([]catalog.Folder, error)

	// ListFiles lists the files owned by a folder
	ListFiles(ctx context.Context, folderID string) ([]catalog.File, error)

	// GetAll retrieves every folder (flat list, no files)
	GetAll(ctx context.Context) ([]catalog.Folder, error)
}

// SeedRepository holds the write operations used only by fixture loading.
type SeedRepository interface {
	// ClearAll deletes every file and folder
	ClearAll(ctx context.Context) error

	// CreateFile inserts a file and fills in its assigned ID and timestamps
	CreateFile(ctx context.Context, file *catalog.File) error
}

// SchemaManager creates and drops the catalog tables.
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
	DropAll(ctx context.Context) error
}

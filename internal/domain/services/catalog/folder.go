package catalog

import "context"

// FolderService handles folder catalog business logic.
// Every operation returns DTOs, never raw entities.
type FolderService interface {
	// CreateFolder validates and persists a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*FolderResponse, error)

	// GetFolderTree materializes the whole catalog as a nested forest
	GetFolderTree(ctx context.Context) ([]*FolderTreeResponse, error)

	// GetDirectChildren lists the immediate children of a folder (nil = roots)
	GetDirectChildren(ctx context.Context, parentID *string) ([]FolderResponse, error)

	// GetFolderDetails lists a folder's child folders and files
	GetFolderDetails(ctx context.Context, folderID string) (*FolderDetailsResponse, error)

	// SearchFolders finds folders whose name contains the trimmed query
	SearchFolders(ctx context.Context, query string) ([]FolderResponse, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"` // null or empty for root
}

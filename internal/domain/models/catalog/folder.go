package catalog

import "time"

// Folder is a named node in the hierarchy. A nil ParentID marks a root folder.
type Folder struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	ParentID  *string   `db:"parent_id"` // NULL = root level
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Files is only populated by reads that attach files eagerly.
	// nil means no file data was loaded; an empty slice means none exist.
	Files []File `db:"-"`
}

// IsRoot returns true if the folder is at the root level.
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}

// File is a leaf record owned by exactly one folder.
type File struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	FolderID  string    `db:"folder_id"`
	Size      int64     `db:"size"` // may exceed 2^53; never round-trip through float64
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

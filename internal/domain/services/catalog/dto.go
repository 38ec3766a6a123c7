package catalog

// FolderResponse is the wire shape of a folder.
// Timestamps are ISO-8601 strings in UTC with millisecond precision.
type FolderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ParentID  *string `json:"parentId"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FileResponse is the wire shape of a file. Size is a decimal string so
// values beyond 2^53 survive JSON consumers that parse numbers as doubles.
type FileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FolderID  string `json:"folderId"`
	Size      string `json:"size"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FolderTreeResponse is a folder with its nested children.
// Files is omitted when the source node carried no file data and is
// rendered as [] when it carried an empty file list.
type FolderTreeResponse struct {
	FolderResponse
	Children []*FolderTreeResponse `json:"children"`
	Files    []FileResponse        `json:"files,omitzero"`
}

// FolderDetailsResponse holds a folder's direct contents
type FolderDetailsResponse struct {
	Folders []FolderResponse `json:"folders"`
	Files   []FileResponse   `json:"files"`
}

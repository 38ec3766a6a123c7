package catalog

import (
	"strconv"
	"time"

	models "explorer/internal/domain/models/catalog"
	svc "explorer/internal/domain/services/catalog"
)

// timestampLayout renders ISO-8601 with millisecond precision, e.g.
// 2024-03-01T09:30:00.000Z
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// MapFolder converts a folder entity to its wire shape
func MapFolder(folder *models.Folder) svc.FolderResponse {
	return svc.FolderResponse{
		ID:        folder.ID,
		Name:      folder.Name,
		ParentID:  folder.ParentID,
		CreatedAt: formatTimestamp(folder.CreatedAt),
		UpdatedAt: formatTimestamp(folder.UpdatedAt),
	}
}

// MapFolders converts a folder list, always returning a non-nil slice
func MapFolders(folders []models.Folder) []svc.FolderResponse {
	out := make([]svc.FolderResponse, 0, len(folders))
	for i := range folders {
		out = append(out, MapFolder(&folders[i]))
	}
	return out
}

// MapFile converts a file entity to its wire shape
func MapFile(file *models.File) svc.FileResponse {
	return svc.FileResponse{
		ID:        file.ID,
		Name:      file.Name,
		FolderID:  file.FolderID,
		Size:      strconv.FormatInt(file.Size, 10),
		CreatedAt: formatTimestamp(file.CreatedAt),
		UpdatedAt: formatTimestamp(file.UpdatedAt),
	}
}

// MapFiles converts a file list, always returning a non-nil slice
func MapFiles(files []models.File) []svc.FileResponse {
	out := make([]svc.FileResponse, 0, len(files))
	for i := range files {
		out = append(out, MapFile(&files[i]))
	}
	return out
}

// MapForest converts a materialized forest to nested DTOs starting at its roots
func MapForest(forest *models.Forest) []*svc.FolderTreeResponse {
	return mapTreeNodes(forest, forest.Roots())
}

func mapTreeNodes(forest *models.Forest, nodes []*models.TreeNode) []*svc.FolderTreeResponse {
	out := make([]*svc.FolderTreeResponse, 0, len(nodes))
	for _, node := range nodes {
		dto := &svc.FolderTreeResponse{
			FolderResponse: svc.FolderResponse{
				ID:        node.ID,
				Name:      node.Name,
				ParentID:  node.ParentID,
				CreatedAt: formatTimestamp(node.CreatedAt),
				UpdatedAt: formatTimestamp(node.UpdatedAt),
			},
			Children: mapTreeNodes(forest, forest.Children(node)),
		}
		if node.Files != nil {
			dto.Files = MapFiles(node.Files)
		}
		out = append(out, dto)
	}
	return out
}

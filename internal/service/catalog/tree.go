package catalog

import (
	models "explorer/internal/domain/models/catalog"
)

// BuildForest turns a flat folder sequence into a forest using a two-pass
// algorithm. Sibling order follows input order, so callers that pass folders
// sorted by name get alphabetically ordered siblings.
//
// Records whose parent is missing from the input (orphans) and records that
// name themselves as parent are excluded from the output and reported on the
// returned Forest. Neither case is an error.
func BuildForest(folders []models.Folder) *models.Forest {
	forest := &models.Forest{
		RootIDs: make([]string, 0),
		Nodes:   make(map[string]*models.TreeNode, len(folders)),
	}

	// First pass: create all folder nodes.
	// IDs are unique in the store; a repeated ID keeps its first record.
	for _, folder := range folders {
		if _, exists := forest.Nodes[folder.ID]; exists {
			continue
		}
		forest.Nodes[folder.ID] = &models.TreeNode{
			ID:        folder.ID,
			Name:      folder.Name,
			ParentID:  folder.ParentID,
			CreatedAt: folder.CreatedAt,
			UpdatedAt: folder.UpdatedAt,
			ChildIDs:  make([]string, 0),
			Files:     folder.Files,
		}
	}

	// Second pass: link children to parents in input order
	linked := make(map[string]bool, len(folders))
	for _, folder := range folders {
		if linked[folder.ID] {
			continue
		}
		linked[folder.ID] = true

		switch {
		case folder.IsRoot():
			forest.RootIDs = append(forest.RootIDs, folder.ID)
		case *folder.ParentID == folder.ID:
			forest.SelfParented = append(forest.SelfParented, folder.ID)
		default:
			parent, ok := forest.Nodes[*folder.ParentID]
			if !ok {
				forest.Orphans = append(forest.Orphans, folder.ID)
				continue
			}
			parent.ChildIDs = append(parent.ChildIDs, folder.ID)
		}
	}

	return forest
}

package seed

import (
	"context"
	"fmt"
	"log/slog"

	models "explorer/internal/domain/models/catalog"
	"explorer/internal/domain/repositories"
	catalogRepo "explorer/internal/domain/repositories/catalog"
)

// Stats reports what a seeding run created
type Stats struct {
	Folders int
	Files   int
}

// Seeder writes fixtures through the seed repository
type Seeder struct {
	seeds     catalogRepo.SeedRepository
	folders   catalogRepo.FolderRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(
	seeds catalogRepo.SeedRepository,
	folders catalogRepo.FolderRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		seeds:     seeds,
		folders:   folders,
		txManager: txManager,
		logger:    logger,
	}
}

// Clear removes all files and folders
func (s *Seeder) Clear(ctx context.Context) error {
	return s.seeds.ClearAll(ctx)
}

// Apply replaces the catalog contents with the fixture in one transaction.
// Parents are created before their children.
func (s *Seeder) Apply(ctx context.Context, fixture *Fixture) (Stats, error) {
	var stats Stats

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		stats = Stats{}

		if err := s.seeds.ClearAll(txCtx); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}

		return s.createNodes(txCtx, fixture.Folders, nil, &stats)
	})
	if err != nil {
		return Stats{}, err
	}

	s.logger.Info("fixture applied", "folders", stats.Folders, "files", stats.Files)
	return stats, nil
}

// CountFolders returns the number of folders currently stored
func (s *Seeder) CountFolders(ctx context.Context) (int, error) {
	folders, err := s.folders.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(folders), nil
}

func (s *Seeder) createNodes(ctx context.Context, nodes []FolderNode, parentID *string, stats *Stats) error {
	for _, node := range nodes {
		folder := &models.Folder{Name: node.Name, ParentID: parentID}
		if err := s.folders.Create(ctx, folder); err != nil {
			return fmt.Errorf("create folder %q: %w", node.Name, err)
		}
		stats.Folders++
		s.logger.Debug("seeded folder", "id", folder.ID, "name", folder.Name)

		for _, fileNode := range node.Files {
			file := &models.File{Name: fileNode.Name, FolderID: folder.ID, Size: fileNode.Size}
			if err := s.seeds.CreateFile(ctx, file); err != nil {
				return fmt.Errorf("create file %q: %w", fileNode.Name, err)
			}
			stats.Files++
		}

		if err := s.createNodes(ctx, node.Folders, &folder.ID, stats); err != nil {
			return err
		}
	}
	return nil
}

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"explorer/internal/config"
	"explorer/internal/domain"
	models "explorer/internal/domain/models/catalog"
	catalogRepo "explorer/internal/domain/repositories/catalog"
	catalogSvc "explorer/internal/domain/services/catalog"

	"golang.org/x/sync/errgroup"
)

// Options tunes optional folder rules
type Options struct {
	// VerifyParentExists makes CreateFolder reject a parentId that does not
	// reference an existing folder. Off by default: parents are passed through.
	VerifyParentExists bool
}

type folderService struct {
	folderRepo catalogRepo.FolderRepository
	opts       Options
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo catalogRepo.FolderRepository,
	opts Options,
	logger *slog.Logger,
) catalogSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		opts:       opts,
		logger:     logger,
	}
}

// CreateFolder validates the name and persists it exactly as supplied
func (s *folderService) CreateFolder(ctx context.Context, req *catalogSvc.CreateFolderRequest) (*catalogSvc.FolderResponse, error) {
	if err := validateFolderName(req.Name); err != nil {
		return nil, err
	}

	// Normalize empty string to nil for root-level folders
	parentID := req.ParentID
	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	if parentID != nil && s.opts.VerifyParentExists {
		parent, err := s.folderRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, &domain.ValidationError{Message: msgParentNotFound}
		}
	}

	folder := &models.Folder{
		Name:     req.Name,
		ParentID: parentID,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	dto := MapFolder(folder)
	return &dto, nil
}

// GetFolderTree builds the nested folder tree with files attached
func (s *folderService) GetFolderTree(ctx context.Context) ([]*catalogSvc.FolderTreeResponse, error) {
	folders, err := s.folderRepo.GetAllWithFiles(ctx)
	if err != nil {
		return nil, err
	}

	forest := BuildForest(folders)

	if forest.HasAnomalies() {
		s.logger.Warn("folder records excluded from tree",
			"orphans", forest.Orphans,
			"self_parented", forest.SelfParented,
		)
	}

	s.logger.Debug("folder tree built",
		"folder_count", len(folders),
		"root_count", len(forest.RootIDs),
	)

	return MapForest(forest), nil
}

// GetDirectChildren lists immediate children without building a tree
func (s *folderService) GetDirectChildren(ctx context.Context, parentID *string) ([]catalogSvc.FolderResponse, error) {
	children, err := s.folderRepo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	return MapFolders(children), nil
}

// GetFolderDetails fetches child folders and files concurrently and joins
// both before composing the result. Either failure fails the whole call.
// The folder itself is not looked up: an unknown ID yields two empty lists.
func (s *folderService) GetFolderDetails(ctx context.Context, folderID string) (*catalogSvc.FolderDetailsResponse, error) {
	var (
		g       errgroup.Group
		folders []models.Folder
		files   []models.File
	)

	g.Go(func() error {
		var err error
		folders, err = s.folderRepo.ListChildren(ctx, &folderID)
		return err
	})
	g.Go(func() error {
		var err error
		files, err = s.folderRepo.ListFiles(ctx, folderID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &catalogSvc.FolderDetailsResponse{
		Folders: MapFolders(folders),
		Files:   MapFiles(files),
	}, nil
}

// SearchFolders trims the query and searches folder names by substring.
// A blank query returns an empty list without touching the store.
func (s *folderService) SearchFolders(ctx context.Context, query string) ([]catalogSvc.FolderResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []catalogSvc.FolderResponse{}, nil
	}

	folders, err := s.folderRepo.Search(ctx, query, config.MaxSearchResults)
	if err != nil {
		s.logger.Error("folder search failed", "query", query, "error", err)
		return nil, &domain.SearchError{Err: fmt.Errorf("search %q: %w", query, err)}
	}

	return MapFolders(folders), nil
}

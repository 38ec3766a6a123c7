package catalog

import (
	"context"
	"sync"
	"time"

	models "explorer/internal/domain/models/catalog"
)

// mockFolderRepo is a test implementation of FolderRepository.
// Each method delegates to an optional func field and counts its calls.
type mockFolderRepo struct {
	getAllWithFilesFn func(ctx context.Context) ([]models.Folder, error)
	listChildrenFn    func(ctx context.Context, parentID *string) ([]models.Folder, error)
	getByIDFn         func(ctx context.Context, id string) (*models.Folder, error)
	createFn          func(ctx context.Context, folder *models.Folder) error
	searchFn          func(ctx context.Context, query string, limit int) ([]models.Folder, error)
	listFilesFn       func(ctx context.Context, folderID string) ([]models.File, error)

	mu    sync.Mutex
	calls map[string]int
}

func newMockFolderRepo() *mockFolderRepo {
	return &mockFolderRepo{calls: make(map[string]int)}
}

func (m *mockFolderRepo) record(method string) {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
}

func (m *mockFolderRepo) callCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *mockFolderRepo) GetAllWithFiles(ctx context.Context) ([]models.Folder, error) {
	m.record("GetAllWithFiles")
	if m.getAllWithFilesFn != nil {
		return m.getAllWithFilesFn(ctx)
	}
	return nil, nil
}

func (m *mockFolderRepo) ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error) {
	m.record("ListChildren")
	if m.listChildrenFn != nil {
		return m.listChildrenFn(ctx, parentID)
	}
	return nil, nil
}

func (m *mockFolderRepo) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	m.record("GetByID")
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	m.record("Create")
	if m.createFn != nil {
		return m.createFn(ctx, folder)
	}
	return nil
}

func (m *mockFolderRepo) Search(ctx context.Context, query string, limit int) ([]models.Folder, error) {
	m.record("Search")
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockFolderRepo) ListFiles(ctx context.Context, folderID string) ([]models.File, error) {
	m.record("ListFiles")
	if m.listFilesFn != nil {
		return m.listFilesFn(ctx, folderID)
	}
	return nil, nil
}

func (m *mockFolderRepo) GetAll(ctx context.Context) ([]models.Folder, error) {
	m.record("GetAll")
	return nil, nil
}

var testTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func folder(id, name string, parentID *string) models.Folder {
	return models.Folder{
		ID:        id,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

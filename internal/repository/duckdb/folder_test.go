package duckdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"explorer/internal/domain"
	models "explorer/internal/domain/models/catalog"
)

func newTestRepo(t *testing.T) (*FolderRepository, *RepositoryConfig) {
	t.Helper()

	ctx := context.Background()
	db, err := OpenDB(ctx, "")
	if err != nil {
		t.Fatalf("open in-memory duckdb: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	config := &RepositoryConfig{
		DB:     db,
		Tables: NewTableNames("test_"),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if err := NewSchemaManager(config).EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	return NewFolderRepository(config), config
}

func mustCreateFolder(t *testing.T, repo *FolderRepository, name string, parentID *string) *models.Folder {
	t.Helper()
	folder := &models.Folder{Name: name, ParentID: parentID}
	if err := repo.Create(context.Background(), folder); err != nil {
		t.Fatalf("create folder %q: %v", name, err)
	}
	return folder
}

func mustCreateFile(t *testing.T, repo *FolderRepository, name, folderID string, size int64) *models.File {
	t.Helper()
	file := &models.File{Name: name, FolderID: folderID, Size: size}
	if err := repo.CreateFile(context.Background(), file); err != nil {
		t.Fatalf("create file %q: %v", name, err)
	}
	return file
}

func names(folders []models.Folder) string {
	out := make([]string, len(folders))
	for i, f := range folders {
		out[i] = f.Name
	}
	return strings.Join(out, ",")
}

func TestFolderRepository_CreateAndGetByID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	docs := mustCreateFolder(t, repo, "Documents", nil)
	if docs.ID == "" || docs.CreatedAt.IsZero() || docs.UpdatedAt.IsZero() {
		t.Fatalf("expected assigned ID and timestamps, got %+v", docs)
	}

	got, err := repo.GetByID(ctx, docs.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "Documents" || got.ParentID != nil {
		t.Fatalf("GetByID = %+v, want root Documents", got)
	}
	if !got.CreatedAt.Equal(docs.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, docs.CreatedAt)
	}

	missing, err := repo.GetByID(ctx, "not-a-uuid")
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing folder, got %+v", missing)
	}
}

func TestFolderRepository_ListChildren(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	docs := mustCreateFolder(t, repo, "Documents", nil)
	mustCreateFolder(t, repo, "Pictures", nil)
	mustCreateFolder(t, repo, "Work", &docs.ID)
	mustCreateFolder(t, repo, "Personal", &docs.ID)

	roots, err := repo.ListChildren(ctx, nil)
	if err != nil {
		t.Fatalf("ListChildren(nil): %v", err)
	}
	if got := names(roots); got != "Documents,Pictures" {
		t.Errorf("roots = %s, want Documents,Pictures", got)
	}

	children, err := repo.ListChildren(ctx, &docs.ID)
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if got := names(children); got != "Personal,Work" {
		t.Errorf("children = %s, want Personal,Work", got)
	}
	for _, child := range children {
		if child.ParentID == nil || *child.ParentID != docs.ID {
			t.Errorf("%s: ParentID = %v, want %s", child.Name, child.ParentID, docs.ID)
		}
	}

	none, err := repo.ListChildren(ctx, strPtr("unknown"))
	if err != nil {
		t.Fatalf("ListChildren(unknown): %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", none)
	}
}

func TestFolderRepository_GetAllWithFiles(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	docs := mustCreateFolder(t, repo, "Documents", nil)
	empty := mustCreateFolder(t, repo, "Empty", nil)
	mustCreateFile(t, repo, "b.txt", docs.ID, 20)
	mustCreateFile(t, repo, "a.txt", docs.ID, 9007199254740993)

	folders, err := repo.GetAllWithFiles(ctx)
	if err != nil {
		t.Fatalf("GetAllWithFiles: %v", err)
	}
	if got := names(folders); got != "Documents,Empty" {
		t.Fatalf("folders = %s", got)
	}

	files := folders[0].Files
	if len(files) != 2 || files[0].Name != "a.txt" || files[1].Name != "b.txt" {
		t.Fatalf("Documents files = %+v, want a.txt,b.txt", files)
	}
	if files[0].Size != 9007199254740993 {
		t.Errorf("Size = %d, want 9007199254740993", files[0].Size)
	}
	if folders[1].ID != empty.ID || folders[1].Files == nil || len(folders[1].Files) != 0 {
		t.Errorf("Empty files = %#v, want non-nil empty slice", folders[1].Files)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	for _, f := range all {
		if f.Files != nil {
			t.Errorf("GetAll should not attach files, got %+v", f.Files)
		}
	}
}

func TestFolderRepository_ListFiles(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	docs := mustCreateFolder(t, repo, "Documents", nil)
	mustCreateFile(t, repo, "notes.txt", docs.ID, 8192)

	files, err := repo.ListFiles(ctx, docs.ID)
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 1 || files[0].Name != "notes.txt" || files[0].FolderID != docs.ID {
		t.Errorf("files = %+v", files)
	}

	none, err := repo.ListFiles(ctx, "missing")
	if err != nil {
		t.Fatalf("ListFiles(missing): %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", none)
	}
}

func TestFolderRepository_Search(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Work", "Homework", "work-old", "100% done", "Pictures"} {
		mustCreateFolder(t, repo, name, nil)
	}

	tests := []struct {
		query string
		limit int
		want  string
	}{
		{query: "Work", limit: 100, want: "Work"},
		{query: "work", limit: 100, want: "Homework,work-old"},
		{query: "%", limit: 100, want: "100% done"},
		{query: "or", limit: 1, want: "Homework"},
		{query: "nothing", limit: 100, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := repo.Search(ctx, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if names(got) != tt.want {
				t.Errorf("Search(%q) = %s, want %s", tt.query, names(got), tt.want)
			}
		})
	}
}

func TestFolderRepository_ClearAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	docs := mustCreateFolder(t, repo, "Documents", nil)
	mustCreateFile(t, repo, "a.txt", docs.ID, 1)

	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	folders, err := repo.GetAllWithFiles(ctx)
	if err != nil {
		t.Fatalf("GetAllWithFiles: %v", err)
	}
	if len(folders) != 0 {
		t.Errorf("expected no folders, got %d", len(folders))
	}
}

func TestTransactionManager_ExecTx(t *testing.T) {
	repo, config := newTestRepo(t)
	ctx := context.Background()
	txManager := NewTransactionManager(config)
	errBoom := errors.New("boom")

	err := txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, &models.Folder{Name: "Rolled back"}); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("ExecTx error = %v, want boom", err)
	}

	err = txManager.ExecTx(ctx, func(txCtx context.Context) error {
		return repo.Create(txCtx, &models.Folder{Name: "Committed"})
	})
	if err != nil {
		t.Fatalf("ExecTx: %v", err)
	}

	folders, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if got := names(folders); got != "Committed" {
		t.Errorf("folders = %s, want Committed", got)
	}
}

func TestFolderRepository_StorageErrors(t *testing.T) {
	repo, config := newTestRepo(t)
	ctx := context.Background()

	if err := NewSchemaManager(config).DropAll(ctx); err != nil {
		t.Fatalf("DropAll: %v", err)
	}

	_, err := repo.GetAll(ctx)
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("expected ErrStorage after dropping tables, got %v", err)
	}
}

func strPtr(s string) *string { return &s }

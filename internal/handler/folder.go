package handler

import (
	"log/slog"
	"net/http"

	catalogSvc "explorer/internal/domain/services/catalog"
	"explorer/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService catalogSvc.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService catalogSvc.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// RegisterRoutes mounts the folder routes under /api/v1/folders
func (h *FolderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/folders/tree", h.GetTree)
	mux.HandleFunc("GET /api/v1/folders/children", h.GetChildren)
	mux.HandleFunc("GET /api/v1/folders/search", h.SearchFolders)
	mux.HandleFunc("GET /api/v1/folders/{id}/details", h.GetDetails)
	mux.HandleFunc("POST /api/v1/folders", h.CreateFolder)
}

// GetTree returns the complete nested folder tree
// GET /api/v1/folders/tree
func (h *FolderHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.folderService.GetFolderTree(r.Context())
	if err != nil {
		handleError(w, h.logger, err, "Failed to fetch folder tree")
		return
	}

	httputil.RespondData(w, http.StatusOK, tree)
}

// GetChildren lists the direct children of a folder, or the roots when
// parentId is absent or empty
// GET /api/v1/folders/children?parentId=
func (h *FolderHandler) GetChildren(w http.ResponseWriter, r *http.Request) {
	parentID := httputil.OptionalQuery(r, "parentId")

	children, err := h.folderService.GetDirectChildren(r.Context(), parentID)
	if err != nil {
		handleError(w, h.logger, err, "Failed to fetch folder children")
		return
	}

	httputil.RespondData(w, http.StatusOK, children)
}

// GetDetails returns the child folders and files of a folder
// GET /api/v1/folders/{id}/details
func (h *FolderHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.folderService.GetFolderDetails(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, h.logger, err, "Failed to fetch folder details")
		return
	}

	httputil.RespondData(w, http.StatusOK, details)
}

// CreateFolder creates a folder
// POST /api/v1/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req catalogSvc.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		h.logger.Debug("invalid create folder body", "error", err)
		httputil.RespondError(w, http.StatusBadRequest, msgValidation)
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err, "Failed to create folder")
		return
	}

	httputil.RespondData(w, http.StatusCreated, folder)
}

// SearchFolders finds folders whose name contains q
// GET /api/v1/folders/search?q=
func (h *FolderHandler) SearchFolders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		httputil.RespondError(w, http.StatusBadRequest, msgValidation)
		return
	}

	folders, err := h.folderService.SearchFolders(r.Context(), query)
	if err != nil {
		handleError(w, h.logger, err, "Failed to search folders")
		return
	}

	httputil.RespondData(w, http.StatusOK, folders)
}

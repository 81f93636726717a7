package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dashboard/backend/internal/model"
	"dashboard/backend/internal/service"
)

type DocumentHandler struct {
	service service.DocumentService
}

type navigateRequest struct {
	FolderID *string `json:"folderId"`
	Name     string  `json:"name"`
}

type createFolderRequest struct {
	Name string `json:"name"`
}

type entryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	ParentID  *string `json:"parentId"`
	Size      *string `json:"size,omitempty"`
	UpdatedAt string  `json:"updatedAt"`
}

type breadcrumbResponse struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

type listingResponse struct {
	CurrentFolderID *string              `json:"currentFolderId"`
	Entries         []entryResponse      `json:"entries"`
	Breadcrumbs     []breadcrumbResponse `json:"breadcrumbs"`
}

func NewDocumentHandler(service service.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/documents", h.Current)
	g.GET("/documents/children", h.Children)
	g.GET("/documents/breadcrumbs", h.Breadcrumbs)
	g.POST("/documents/navigate", h.Navigate)
	g.POST("/documents/folders", h.CreateFolder)
	g.DELETE("/documents/:id", h.Delete)
}

// Current godoc
// @Summary      Current folder listing
// @Tags         documents
// @Produce      json
// @Success      200  {object}  listingResponse
// @Router       /documents [get]
func (h *DocumentHandler) Current(c echo.Context) error {
	listing, err := h.service.Current(c.Request().Context(), sessionID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, listingResponse{
		CurrentFolderID: idPtrToString(listing.CurrentFolderID),
		Entries:         toEntryResponses(listing.Entries),
		Breadcrumbs:     toBreadcrumbResponses(listing.Breadcrumbs),
	})
}

// Children godoc
// @Summary      List the entries of a folder
// @Tags         documents
// @Produce      json
// @Param        folderId  query     string  false  "Folder id, empty for the root"
// @Success      200       {array}   entryResponse
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /documents/children [get]
func (h *DocumentHandler) Children(c echo.Context) error {
	folderID, err := parseOptionalID(c.QueryParam("folderId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	entries, err := h.service.Children(c.Request().Context(), sessionID(c), folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEntryResponses(entries))
}

// Breadcrumbs godoc
// @Summary      Breadcrumb trail of the current folder
// @Tags         documents
// @Produce      json
// @Success      200  {array}  breadcrumbResponse
// @Router       /documents/breadcrumbs [get]
func (h *DocumentHandler) Breadcrumbs(c echo.Context) error {
	crumbs, err := h.service.Breadcrumbs(c.Request().Context(), sessionID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toBreadcrumbResponses(crumbs))
}

// Navigate godoc
// @Summary      Open a folder or jump back along the trail
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body      navigateRequest  true  "Target folder, null folderId for the root"
// @Success      200   {array}   breadcrumbResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /documents/navigate [post]
func (h *DocumentHandler) Navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var raw string
	if req.FolderID != nil {
		raw = *req.FolderID
	}
	folderID, err := parseOptionalID(raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	crumbs, err := h.service.Navigate(c.Request().Context(), sessionID(c), folderID, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toBreadcrumbResponses(crumbs))
}

// CreateFolder godoc
// @Summary      Create a folder inside the current folder
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body      createFolderRequest  true  "Folder name"
// @Success      201   {object}  entryResponse
// @Failure      400   {object}  errorResponse
// @Router       /documents/folders [post]
func (h *DocumentHandler) CreateFolder(c echo.Context) error {
	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	entry, err := h.service.CreateFolder(c.Request().Context(), sessionID(c), req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toEntryResponse(entry))
}

// Delete godoc
// @Summary      Delete an entry and everything nested beneath it
// @Tags         documents
// @Param        id   path  string  true  "Entry id"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Router       /documents/{id} [delete]
func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Delete(c.Request().Context(), sessionID(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toEntryResponse(entry model.Entry) entryResponse {
	return entryResponse{
		ID:        itoa(entry.ID),
		Name:      entry.Name,
		Type:      model.KindName(entry.Kind),
		ParentID:  idPtrToString(entry.ParentID),
		Size:      model.KindSize(entry.Kind),
		UpdatedAt: entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toEntryResponses(entries []model.Entry) []entryResponse {
	response := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, toEntryResponse(entry))
	}
	return response
}

func toBreadcrumbResponses(crumbs []model.Breadcrumb) []breadcrumbResponse {
	response := make([]breadcrumbResponse, 0, len(crumbs))
	for _, crumb := range crumbs {
		response = append(response, breadcrumbResponse{ID: idPtrToString(crumb.ID), Name: crumb.Name})
	}
	return response
}

package handler_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dashboard/backend/internal/handler"
	"dashboard/backend/internal/model"
	"dashboard/backend/internal/service"
	"dashboard/backend/internal/service/mock"
)

var updatedAt = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func int64Ptr(v int64) *int64 { return &v }

func TestDocumentHandler_Current_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/documents", nil)
	c, rec := newTestContext(e, req)
	withSession(c, "s1")

	mockService.EXPECT().
		Current(gomock.Any(), "s1").
		Return(service.Listing{
			CurrentFolderID: int64Ptr(1),
			Entries: []model.Entry{
				{ID: 5, Name: "Apple.pdf", Kind: model.FileKind{Type: model.FileTypePDF, Size: "2.4 MB"}, ParentID: int64Ptr(1), UpdatedAt: updatedAt},
			},
			Breadcrumbs: []model.Breadcrumb{{Name: "Documents"}, {ID: int64Ptr(1), Name: "Contracts"}},
		}, nil)

	err := h.Current(c)
	require.NoError(t, err)

	var resp handler.ListingResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "1", *resp.CurrentFolderID)
	require.Len(t, resp.Entries, 1)
	require.Equal(t, "5", resp.Entries[0].ID)
	require.Equal(t, "pdf", resp.Entries[0].Type)
	require.Equal(t, "2.4 MB", *resp.Entries[0].Size)
	require.Equal(t, "1", *resp.Entries[0].ParentID)
	require.Equal(t, "2024-01-15T12:00:00Z", resp.Entries[0].UpdatedAt)
	require.Len(t, resp.Breadcrumbs, 2)
	require.Nil(t, resp.Breadcrumbs[0].ID)
	require.Equal(t, "Documents", resp.Breadcrumbs[0].Name)
}

func TestDocumentHandler_Current_RootRendersNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents", nil))
	withSession(c, "s1")

	mockService.EXPECT().
		Current(gomock.Any(), "s1").
		Return(service.Listing{Breadcrumbs: []model.Breadcrumb{{Name: "Documents"}}}, nil)

	require.NoError(t, h.Current(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"currentFolderId":null,"entries":[],"breadcrumbs":[{"id":null,"name":"Documents"}]}`, rec.Body.String())
}

func TestDocumentHandler_Children_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents/children?folderId=2", nil))
	withSession(c, "s1")

	mockService.EXPECT().
		Children(gomock.Any(), "s1", int64Ptr(2)).
		Return([]model.Entry{
			{ID: 8, Name: "Monthly Report", Kind: model.FolderKind{}, ParentID: int64Ptr(2), UpdatedAt: updatedAt},
		}, nil)

	require.NoError(t, h.Children(c))

	var resp []handler.EntryResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, "folder", resp[0].Type)
	require.Nil(t, resp[0].Size)
}

func TestDocumentHandler_Children_Root(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents/children", nil))
	withSession(c, "s1")

	mockService.EXPECT().
		Children(gomock.Any(), "s1", (*int64)(nil)).
		Return([]model.Entry{}, nil)

	require.NoError(t, h.Children(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestDocumentHandler_Children_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents/children?folderId=abc", nil))

	require.NoError(t, h.Children(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_Children_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents/children?folderId=77", nil))
	withSession(c, "s1")

	mockService.EXPECT().
		Children(gomock.Any(), "s1", int64Ptr(77)).
		Return(nil, service.ErrNotFound)

	require.NoError(t, h.Children(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusNotFound, &resp)
	require.Equal(t, "resource not found", resp["error"])
}

func TestDocumentHandler_Breadcrumbs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents/breadcrumbs", nil))
	withSession(c, "s1")

	mockService.EXPECT().
		Breadcrumbs(gomock.Any(), "s1").
		Return([]model.Breadcrumb{{Name: "Documents"}, {ID: int64Ptr(2), Name: "Finance"}}, nil)

	require.NoError(t, h.Breadcrumbs(c))

	var resp []handler.BreadcrumbResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 2)
	require.Equal(t, "2", *resp[1].ID)
	require.Equal(t, "Finance", resp[1].Name)
}

func TestDocumentHandler_Navigate_Folder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodPost, "/documents/navigate", map[string]interface{}{
		"folderId": "2",
		"name":     "Finance",
	})
	c, rec := newTestContext(e, req)
	withSession(c, "s1")

	mockService.EXPECT().
		Navigate(gomock.Any(), "s1", int64Ptr(2), "Finance").
		Return([]model.Breadcrumb{{Name: "Documents"}, {ID: int64Ptr(2), Name: "Finance"}}, nil)

	require.NoError(t, h.Navigate(c))

	var resp []handler.BreadcrumbResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 2)
}

func TestDocumentHandler_Navigate_Root(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	req := newJSONRequestRaw(http.MethodPost, "/documents/navigate", `{"folderId":null,"name":"Documents"}`)
	c, rec := newTestContext(e, req)
	withSession(c, "s1")

	mockService.EXPECT().
		Navigate(gomock.Any(), "s1", (*int64)(nil), "Documents").
		Return([]model.Breadcrumb{{Name: "Documents"}}, nil)

	require.NoError(t, h.Navigate(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDocumentHandler_Navigate_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)
	e := newTestEcho()

	for _, body := range []string{`{"folderId":`, `{"folderId":"x1"}`} {
		c, rec := newTestContext(e, newJSONRequestRaw(http.MethodPost, "/documents/navigate", body))
		require.NoError(t, h.Navigate(c))
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestDocumentHandler_Navigate_FileRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/documents/navigate", map[string]interface{}{"folderId": "5"}))
	withSession(c, "s1")

	mockService.EXPECT().
		Navigate(gomock.Any(), "s1", int64Ptr(5), "").
		Return(nil, service.ErrInvalid)

	require.NoError(t, h.Navigate(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_CreateFolder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/documents/folders", map[string]interface{}{"name": "Reports"}))
	withSession(c, "s1")

	mockService.EXPECT().
		CreateFolder(gomock.Any(), "s1", "Reports").
		Return(model.Entry{ID: 1744000000000000001, Name: "Reports", Kind: model.FolderKind{}, UpdatedAt: updatedAt}, nil)

	require.NoError(t, h.CreateFolder(c))

	var resp handler.EntryResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, "1744000000000000001", resp.ID)
	require.Equal(t, "Reports", resp.Name)
	require.Equal(t, "folder", resp.Type)
	require.Nil(t, resp.ParentID)
}

func TestDocumentHandler_CreateFolder_BlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/documents/folders", map[string]interface{}{"name": "   "}))
	withSession(c, "s1")

	mockService.EXPECT().
		CreateFolder(gomock.Any(), "s1", "   ").
		Return(model.Entry{}, service.ErrInvalid)

	require.NoError(t, h.CreateFolder(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "invalid request", resp["error"])
}

func TestDocumentHandler_CreateFolder_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/documents/folders", map[string]interface{}{"name": "Reports"}))
	withSession(c, "s1")

	mockService.EXPECT().
		CreateFolder(gomock.Any(), "s1", "Reports").
		Return(model.Entry{}, errors.New("disk full"))

	require.NoError(t, h.CreateFolder(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDocumentHandler_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/documents/123", nil))
	setPathParams(c, map[string]string{"id": "123"})
	withSession(c, "s1")

	mockService.EXPECT().
		Delete(gomock.Any(), "s1", int64(123)).
		Return(nil)

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDocumentHandler_Delete_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/documents/abc", nil))
	setPathParams(c, map[string]string{"id": "abc"})

	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentHandler_MissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockDocumentService(ctrl)
	h := handler.NewDocumentHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/documents/breadcrumbs", nil))

	mockService.EXPECT().
		Breadcrumbs(gomock.Any(), "").
		Return(nil, service.ErrInvalid)

	require.NoError(t, h.Breadcrumbs(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

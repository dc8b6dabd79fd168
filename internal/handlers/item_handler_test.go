package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"curio/internal/auth"
	"curio/internal/models"
	"curio/internal/repository"
	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(userID uint, in services.ItemInput) (*models.Item, error) {
	args := m.Called(userID, in)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) GetItemForCaller(id uint, caller *auth.Claims) (*models.Item, error) {
	args := m.Called(id, caller)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) UpdateItem(id, userID uint, in services.ItemInput) (*models.Item, error) {
	args := m.Called(id, userID, in)
	item, _ := args.Get(0).(*models.Item)
	return item, args.Error(1)
}

func (m *MockItemService) DeleteItem(id, userID uint) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *MockItemService) ListItems(userID uint, filter repository.ItemFilter, req services.PageRequest) (services.Page[models.Item], error) {
	args := m.Called(userID, filter, req)
	return args.Get(0).(services.Page[models.Item]), args.Error(1)
}

func (m *MockItemService) ListChildren(id uint, caller *auth.Claims, req services.PageRequest) (services.Page[models.Item], error) {
	args := m.Called(id, caller, req)
	return args.Get(0).(services.Page[models.Item]), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) CreatePresignedUpload(userID uint, name, mime string, size int64) (*services.PresignedUpload, error) {
	args := m.Called(userID, name, mime, size)
	presigned, _ := args.Get(0).(*services.PresignedUpload)
	return presigned, args.Error(1)
}

func (m *MockFileService) StoreUpload(key string, exp int64, sig string, body io.Reader) (*models.StoredFile, error) {
	args := m.Called(key, exp, sig, body)
	file, _ := args.Get(0).(*models.StoredFile)
	return file, args.Error(1)
}

func (m *MockFileService) OpenDownload(key string, exp int64, sig string) (string, *models.StoredFile, error) {
	args := m.Called(key, exp, sig)
	file, _ := args.Get(1).(*models.StoredFile)
	return args.String(0), file, args.Error(2)
}

func (m *MockFileService) SignDownloadURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockFileService) ResolveImageRefs(refs []string) []string {
	args := m.Called(refs)
	resolved, _ := args.Get(0).([]string)
	return resolved
}

func newItemTestApp(service services.ItemService, fileService services.FileService, caller *auth.Claims) (*fiber.App, *ItemHandler) {
	app := fiber.New()
	if caller != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(claimsLocal, caller)
			return c.Next()
		})
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	handler := NewItemHandler(service, fileService, services.LogService{Log: log})
	return app, handler
}

func TestItemHandler_CreateItem(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app, handler := newItemTestApp(mockService, mockFiles, &auth.Claims{UserID: 7})

	app.Post("/items", handler.CreateItem)

	input := services.ItemInput{Title: "Camera", Visibility: models.VisibilityPrivate}
	item := &models.Item{BaseModel: models.BaseModel{ID: 1}, UserID: 7, Title: "Camera", Visibility: models.VisibilityPrivate}
	mockService.On("CreateItem", uint(7), input).Return(item, nil)
	mockFiles.On("ResolveImageRefs", []string{}).Return([]string{})

	reqBodyJSON, err := json.Marshal(map[string]interface{}{
		"title":      "Camera",
		"visibility": "private",
	})
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(reqBodyJSON))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Camera", body["title"])
	mockService.AssertExpectations(t)
}

func TestItemHandler_CreateItemValidationError(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app, handler := newItemTestApp(mockService, mockFiles, &auth.Claims{UserID: 7})

	app.Post("/items", handler.CreateItem)

	mockService.On("CreateItem", uint(7), mock.Anything).Return(nil, services.ErrValidation)

	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader([]byte(`{"title":""}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItemHandler_GetItemByIDPublic(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app, handler := newItemTestApp(mockService, mockFiles, nil)

	app.Get("/items/:id", handler.GetItemByID)

	item := &models.Item{BaseModel: models.BaseModel{ID: 1}, UserID: 7, Title: "Open", Visibility: models.VisibilityPublic}
	mockService.On("GetItemForCaller", uint(1), (*auth.Claims)(nil)).Return(item, nil)
	mockFiles.On("ResolveImageRefs", []string{}).Return([]string{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestItemHandler_GetItemByIDErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"anonymous on private", services.ErrUnauthorized, http.StatusUnauthorized},
		{"not whitelisted", services.ErrForbidden, http.StatusForbidden},
		{"missing", services.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(MockItemService)
			mockFiles := new(MockFileService)
			app, handler := newItemTestApp(mockService, mockFiles, nil)

			app.Get("/items/:id", handler.GetItemByID)
			mockService.On("GetItemForCaller", uint(1), (*auth.Claims)(nil)).Return(nil, tc.err)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/1", nil))
			assert.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestItemHandler_GetItemByIDBadID(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app, handler := newItemTestApp(mockService, mockFiles, nil)

	app.Get("/items/:id", handler.GetItemByID)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/banana", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItemHandler_DeleteItem(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app, handler := newItemTestApp(mockService, mockFiles, &auth.Claims{UserID: 7})

	app.Delete("/items/:id", handler.DeleteItem)

	mockService.On("DeleteItem", uint(1), uint(7)).Return(nil)
	mockService.On("DeleteItem", uint(2), uint(7)).Return(services.ErrNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/items/1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/items/2", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestItemHandler_ListItems(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app, handler := newItemTestApp(mockService, mockFiles, &auth.Claims{UserID: 7})

	app.Get("/items", handler.ListItems)

	page := services.Page[models.Item]{
		Items: []models.Item{
			{BaseModel: models.BaseModel{ID: 2}, UserID: 7, Title: "B", Visibility: models.VisibilityPrivate},
			{BaseModel: models.BaseModel{ID: 1}, UserID: 7, Title: "A", Visibility: models.VisibilityPrivate},
		},
		HasNextPage: true,
		NextCursor:  services.EncodeCursor(1),
	}
	mockService.On("ListItems", uint(7), repository.ItemFilter{}, services.PageRequest{Limit: 2}).Return(page, nil)
	mockFiles.On("ResolveImageRefs", []string{}).Return([]string{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items?limit=2", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["has_next_page"])
	assert.Len(t, body["items"], 2)
	mockService.AssertExpectations(t)
}

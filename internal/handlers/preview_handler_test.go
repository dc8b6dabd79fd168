package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curio/internal/auth"
	"curio/internal/config"
	"curio/internal/models"
	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newPreviewTestApp(service services.ItemService, fileService services.FileService) *fiber.App {
	app := fiber.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	configuration := &config.Configuration{
		Server: config.ServerConfig{AppClipID: "com.example.curio"},
	}
	handler := NewPreviewHandler(service, fileService, configuration, services.LogService{Log: log})
	app.Get("/preview/:id", handler.Show)
	return app
}

func TestPreviewHandler_ShowPublicItem(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app := newPreviewTestApp(mockService, mockFiles)

	item := &models.Item{
		BaseModel:   models.BaseModel{ID: 1},
		UserID:      7,
		Title:       "Vintage <Camera>",
		Description: "A keeper",
		Visibility:  models.VisibilityPublic,
	}
	mockService.On("GetItemForCaller", uint(1), (*auth.Claims)(nil)).Return(item, nil)
	mockFiles.On("ResolveImageRefs", []string{}).Return([]string{"https://example.com/signed.jpg"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/preview/1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	page := string(body)
	assert.Contains(t, page, "Vintage &lt;Camera&gt;")
	assert.Contains(t, page, `og:image" content="https://example.com/signed.jpg"`)
	assert.Contains(t, page, "app-id=com.example.curio")
	assert.NotContains(t, page, "<Camera>")
}

func TestPreviewHandler_PrivateItemRenders404Page(t *testing.T) {
	for _, svcErr := range []error{services.ErrUnauthorized, services.ErrForbidden, services.ErrNotFound} {
		mockService := new(MockItemService)
		mockFiles := new(MockFileService)
		app := newPreviewTestApp(mockService, mockFiles)

		mockService.On("GetItemForCaller", uint(1), (*auth.Claims)(nil)).Return(nil, svcErr)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/preview/1", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "does not exist or is private"))
	}
}

func TestPreviewHandler_MalformedTokenFallsBackToAnonymous(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app := fiber.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	configuration := &config.Configuration{Auth: config.AuthConfig{Secret: "test-secret"}}
	handler := NewPreviewHandler(mockService, mockFiles, configuration, services.LogService{Log: log})
	app.Get("/preview/:id", LenientAuth(configuration), handler.Show)

	item := &models.Item{BaseModel: models.BaseModel{ID: 1}, UserID: 7, Title: "Open", Visibility: models.VisibilityPublic}
	mockService.On("GetItemForCaller", uint(1), (*auth.Claims)(nil)).Return(item, nil)
	mockFiles.On("ResolveImageRefs", []string{}).Return([]string{})

	req := httptest.NewRequest(http.MethodGet, "/preview/1", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-token")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	mockService.AssertExpectations(t)
}

func TestPreviewHandler_BadID(t *testing.T) {
	mockService := new(MockItemService)
	mockFiles := new(MockFileService)
	app := newPreviewTestApp(mockService, mockFiles)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/preview/banana", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

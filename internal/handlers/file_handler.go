package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FileHandler struct {
	service services.FileService
	log     *logrus.Logger
}

func NewFileHandler(service services.FileService, logService services.LogService) *FileHandler {
	return &FileHandler{service: service, log: logService.Log}
}

type presignRequest struct {
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

// Presign registers an upload and returns time-limited upload/download
// URLs for it.
func (h *FileHandler) Presign(c *fiber.Ctx) error {
	var req presignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	presigned, err := h.service.CreatePresignedUpload(CallerClaims(c).UserID, req.Name, req.Mime, req.Size)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(presigned)
}

// Upload accepts the object bytes on a signed URL.
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	key := c.Params("key")
	exp, sig, err := signatureFromQuery(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid signature parameters"})
	}
	file, err := h.service.StoreUpload(key, exp, sig, bytes.NewReader(c.Body()))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(file)
}

// Download serves the object bytes on a signed URL.
func (h *FileHandler) Download(c *fiber.Ctx) error {
	key := c.Params("key")
	exp, sig, err := signatureFromQuery(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid signature parameters"})
	}
	path, file, err := h.service.OpenDownload(key, exp, sig)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if file.Mime != "" {
		c.Set(fiber.HeaderContentType, file.Mime)
	}
	return c.SendFile(path)
}

func signatureFromQuery(c *fiber.Ctx) (int64, string, error) {
	exp, err := strconv.ParseInt(c.Query("exp", ""), 10, 64)
	if err != nil {
		return 0, "", err
	}
	return exp, c.Query("sig", ""), nil
}

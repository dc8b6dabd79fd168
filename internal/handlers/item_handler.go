package handlers

import (
	"net/http"

	"curio/internal/mapper"
	"curio/internal/repository"
	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ItemHandler struct {
	service     services.ItemService
	fileService services.FileService
	log         *logrus.Logger
}

func NewItemHandler(
	service services.ItemService,
	fileService services.FileService,
	logService services.LogService,
) *ItemHandler {
	return &ItemHandler{
		service:     service,
		fileService: fileService,
		log:         logService.Log,
	}
}

type itemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CategoryID  *uint    `json:"category_id"`
	LocationID  *uint    `json:"location_id"`
	AuthorID    *uint    `json:"author_id"`
	ParentID    *uint    `json:"parent_id"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Visibility  string   `json:"visibility"`
	Images      []string `json:"images"`
}

func (r itemRequest) toInput() services.ItemInput {
	return services.ItemInput{
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		LocationID:  r.LocationID,
		AuthorID:    r.AuthorID,
		ParentID:    r.ParentID,
		Price:       r.Price,
		Currency:    r.Currency,
		Visibility:  r.Visibility,
		Images:      r.Images,
	}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}
	item, err := h.service.CreateItem(CallerClaims(c).UserID, req.toInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	itemDTO, err := mapper.ToItemDTO(item, h.fileService.ResolveImageRefs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(http.StatusCreated).JSON(itemDTO)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	item, err := h.service.GetItemForCaller(id, CallerClaims(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	itemDTO, err := mapper.ToItemDTO(item, h.fileService.ResolveImageRefs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(itemDTO)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	item, err := h.service.UpdateItem(id, CallerClaims(c).UserID, req.toInput())
	if err != nil {
		return respondError(c, h.log, err)
	}
	itemDTO, err := mapper.ToItemDTO(item, h.fileService.ResolveImageRefs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(itemDTO)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	if err := h.service.DeleteItem(id, CallerClaims(c).UserID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	filter, err := itemFilterFromQuery(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid filter"})
	}
	page, err := h.service.ListItems(CallerClaims(c).UserID, filter, pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	dtoPage, err := mapper.ToItemPage(page, h.fileService.ResolveImageRefs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dtoPage)
}

func (h *ItemHandler) ListChildren(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badID(c, "item ID")
	}
	page, err := h.service.ListChildren(id, CallerClaims(c), pageRequest(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	dtoPage, err := mapper.ToItemPage(page, h.fileService.ResolveImageRefs)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dtoPage)
}

func itemFilterFromQuery(c *fiber.Ctx) (repository.ItemFilter, error) {
	var filter repository.ItemFilter
	var err error
	if filter.CategoryID, err = queryUintPtr(c, "category_id"); err != nil {
		return filter, err
	}
	if filter.LocationID, err = queryUintPtr(c, "location_id"); err != nil {
		return filter, err
	}
	if filter.AuthorID, err = queryUintPtr(c, "author_id"); err != nil {
		return filter, err
	}
	if filter.ParentID, err = queryUintPtr(c, "parent_id"); err != nil {
		return filter, err
	}
	filter.RootOnly = c.Query("root", "") == "true"
	filter.Visibility = c.Query("visibility", "")
	return filter, nil
}

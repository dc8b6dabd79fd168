package routers

import (
	"curio/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(api fiber.Router, server *cmd.Server, requireAuth, optionalAuth fiber.Handler) {
	itemHandler := server.ItemHandler
	api.Get("/items", requireAuth, itemHandler.ListItems)
	api.Post("/items", requireAuth, itemHandler.CreateItem)
	api.Get("/items/:id", optionalAuth, itemHandler.GetItemByID)
	api.Put("/items/:id", requireAuth, itemHandler.UpdateItem)
	api.Delete("/items/:id", requireAuth, itemHandler.DeleteItem)
	api.Get("/items/:id/children", optionalAuth, itemHandler.ListChildren)

	whitelistHandler := server.WhitelistHandler
	api.Get("/items/:id/whitelist", requireAuth, whitelistHandler.List)
	api.Post("/items/:id/whitelist", requireAuth, whitelistHandler.Add)
	api.Delete("/items/:id/whitelist", requireAuth, whitelistHandler.Remove)

	contentHandler := server.ContentHandler
	api.Post("/items/:id/contents", requireAuth, contentHandler.Create)
	api.Get("/items/:id/contents", requireAuth, contentHandler.ListByItem)
	api.Put("/contents/:id", requireAuth, contentHandler.Update)
	api.Delete("/contents/:id", requireAuth, contentHandler.Delete)
}

package routers

import (
	"curio/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupTaxonomyRouter(api fiber.Router, server *cmd.Server, requireAuth fiber.Handler) {
	categoryHandler := server.CategoryHandler
	api.Get("/categories", requireAuth, categoryHandler.List)
	api.Post("/categories", requireAuth, categoryHandler.Create)
	api.Get("/categories/:id", requireAuth, categoryHandler.Get)
	api.Put("/categories/:id", requireAuth, categoryHandler.Update)
	api.Delete("/categories/:id", requireAuth, categoryHandler.Delete)

	locationHandler := server.LocationHandler
	api.Get("/locations", requireAuth, locationHandler.List)
	api.Post("/locations", requireAuth, locationHandler.Create)
	api.Get("/locations/:id", requireAuth, locationHandler.Get)
	api.Put("/locations/:id", requireAuth, locationHandler.Update)
	api.Delete("/locations/:id", requireAuth, locationHandler.Delete)

	authorHandler := server.AuthorHandler
	api.Get("/authors", requireAuth, authorHandler.List)
	api.Post("/authors", requireAuth, authorHandler.Create)
	api.Get("/authors/:id", requireAuth, authorHandler.Get)
	api.Put("/authors/:id", requireAuth, authorHandler.Update)
	api.Delete("/authors/:id", requireAuth, authorHandler.Delete)
}

package routers

import (
	"curio/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPositionRouter(api fiber.Router, server *cmd.Server, requireAuth fiber.Handler) {
	positionHandler := server.PositionHandler
	api.Get("/position-schemas", requireAuth, positionHandler.ListSchemas)
	api.Post("/position-schemas", requireAuth, positionHandler.CreateSchema)
	api.Get("/position-schemas/:id", requireAuth, positionHandler.GetSchema)
	api.Put("/position-schemas/:id", requireAuth, positionHandler.UpdateSchema)
	api.Delete("/position-schemas/:id", requireAuth, positionHandler.DeleteSchema)

	api.Post("/items/:id/positions", requireAuth, positionHandler.CreatePosition)
	api.Get("/items/:id/positions", requireAuth, positionHandler.ListPositions)
	api.Put("/positions/:id", requireAuth, positionHandler.UpdatePosition)
	api.Delete("/positions/:id", requireAuth, positionHandler.DeletePosition)
}

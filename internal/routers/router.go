package routers

import (
	"curio/cmd"
	"curio/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	requireAuth := handlers.RequireAuth(server.Configuration)
	optionalAuth := handlers.OptionalAuth(server.Configuration)

	api := app.Group("/api/v1")
	api.Post("/auth/register", server.AuthHandler.Register)
	api.Post("/auth/login", server.AuthHandler.Login)

	SetupItemRouter(api, server, requireAuth, optionalAuth)
	SetupTaxonomyRouter(api, server, requireAuth)
	SetupPositionRouter(api, server, requireAuth)
	SetupAccountRouter(api, server, requireAuth)
	SetupReaperRouter(api, server, requireAuth)
	SetupFileRouter(app, api, server, requireAuth)

	app.Get("/preview/:id", handlers.LenientAuth(server.Configuration), server.PreviewHandler.Show)
}

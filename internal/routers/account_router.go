package routers

import (
	"curio/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupAccountRouter(api fiber.Router, server *cmd.Server, requireAuth fiber.Handler) {
	accountHandler := server.AccountHandler
	api.Post("/account/delete", requireAuth, accountHandler.RequestDeletion)
	api.Delete("/account/delete", requireAuth, accountHandler.CancelDeletion)
	api.Get("/account/delete", requireAuth, accountHandler.GetDeletion)
}

package routers

import (
	"curio/cmd"

	"github.com/gofiber/fiber/v2"
)

// SetupFileRouter wires the presign endpoint under the API and the signed
// object routes at the root, where the generated URLs point.
func SetupFileRouter(app *fiber.App, api fiber.Router, server *cmd.Server, requireAuth fiber.Handler) {
	fileHandler := server.FileHandler
	api.Post("/upload/presigned", requireAuth, fileHandler.Presign)
	app.Put("/files/:key", fileHandler.Upload)
	app.Get("/files/:key", fileHandler.Download)
}

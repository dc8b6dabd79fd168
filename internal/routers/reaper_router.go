package routers

import (
	"curio/cmd"

	"github.com/gofiber/fiber/v2"
)

// SetupReaperRouter exposes an authenticated trigger for the deletion
// sweep, ahead of the cron schedule.
func SetupReaperRouter(api fiber.Router, server *cmd.Server, requireAuth fiber.Handler) {
	reaper := server.Reaper
	api.Post("/maintenance/sweep", requireAuth, func(c *fiber.Ctx) error {
		if err := reaper.ForceSweep(); err != nil {
			return c.Status(fiber.StatusConflict).JSON(map[string]interface{}{
				"error": err.Error(),
			})
		}
		return c.JSON(map[string]interface{}{"sweeping": reaper.IsSweeping()})
	})
}

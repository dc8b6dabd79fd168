package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"curio/internal/config"
	"curio/internal/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	server.Reaper.StartSweepCycle()

	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.SizeLimitMB * 1024 * 1024,
		AppName:   "Curio",
	})

	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		_ = app.Shutdown()
	}()

	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	server.Reaper.Stop()
}

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("curio.yaml")
}

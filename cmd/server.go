package cmd

import (
	"curio/internal/config"
	"curio/internal/handlers"
	"curio/internal/services"
)

type Server struct {
	Configuration    *config.Configuration
	LogService       services.LogService
	AuthHandler      *handlers.AuthHandler
	ItemHandler      *handlers.ItemHandler
	WhitelistHandler *handlers.WhitelistHandler
	CategoryHandler  *handlers.CategoryHandler
	LocationHandler  *handlers.LocationHandler
	AuthorHandler    *handlers.AuthorHandler
	PositionHandler  *handlers.PositionHandler
	ContentHandler   *handlers.ContentHandler
	AccountHandler   *handlers.AccountHandler
	FileHandler      *handlers.FileHandler
	PreviewHandler   *handlers.PreviewHandler
	Reaper           *services.Reaper
}

func NewServer(
	configuration *config.Configuration,
	logService services.LogService,
	authHandler *handlers.AuthHandler,
	itemHandler *handlers.ItemHandler,
	whitelistHandler *handlers.WhitelistHandler,
	categoryHandler *handlers.CategoryHandler,
	locationHandler *handlers.LocationHandler,
	authorHandler *handlers.AuthorHandler,
	positionHandler *handlers.PositionHandler,
	contentHandler *handlers.ContentHandler,
	accountHandler *handlers.AccountHandler,
	fileHandler *handlers.FileHandler,
	previewHandler *handlers.PreviewHandler,
	reaper *services.Reaper,
) *Server {
	return &Server{
		Configuration:    configuration,
		LogService:       logService,
		AuthHandler:      authHandler,
		ItemHandler:      itemHandler,
		WhitelistHandler: whitelistHandler,
		CategoryHandler:  categoryHandler,
		LocationHandler:  locationHandler,
		AuthorHandler:    authorHandler,
		PositionHandler:  positionHandler,
		ContentHandler:   contentHandler,
		AccountHandler:   accountHandler,
		FileHandler:      fileHandler,
		PreviewHandler:   previewHandler,
		Reaper:           reaper,
	}
}

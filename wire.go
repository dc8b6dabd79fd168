//go:build wireinject
// +build wireinject

package main

import (
	"curio/cmd"
	"curio/database"
	"curio/internal/handlers"
	"curio/internal/repository"
	"curio/internal/services"

	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		services.NewLogService,
		repository.NewItemRepository,
		repository.NewWhitelistRepository,
		repository.NewCategoryRepository,
		repository.NewLocationRepository,
		repository.NewAuthorRepository,
		repository.NewPositionSchemaRepository,
		repository.NewPositionRepository,
		repository.NewContentRepository,
		repository.NewUserRepository,
		repository.NewDeletionRepository,
		repository.NewFileRepository,
		services.NewItemService,
		services.NewWhitelistService,
		services.NewCategoryService,
		services.NewLocationService,
		services.NewAuthorService,
		services.NewPositionService,
		services.NewContentService,
		services.NewFileService,
		services.NewAccountService,
		services.NewReaper,
		handlers.NewAuthHandler,
		handlers.NewItemHandler,
		handlers.NewWhitelistHandler,
		handlers.NewCategoryHandler,
		handlers.NewLocationHandler,
		handlers.NewAuthorHandler,
		handlers.NewPositionHandler,
		handlers.NewContentHandler,
		handlers.NewAccountHandler,
		handlers.NewFileHandler,
		handlers.NewPreviewHandler,
		Provider,
	)
	return nil, nil
}

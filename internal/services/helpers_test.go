package services

import (
	"testing"

	"curio/internal/config"
	"curio/internal/models"
	"curio/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Category{},
		&models.Location{},
		&models.Author{},
		&models.PositionSchema{},
		&models.Position{},
		&models.Content{},
		&models.ItemWhitelist{},
		&models.AccountDeletion{},
		&models.StoredFile{},
	)
	assert.NoError(t, err)
	return db
}

type testEnv struct {
	db               *gorm.DB
	itemService      ItemService
	whitelistService WhitelistService
	accountService   AccountService
	configuration    *config.Configuration
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	itemRepo := repository.NewItemRepository(db)
	whitelistRepo := repository.NewWhitelistRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	userRepo := repository.NewUserRepository(db)
	deletionRepo := repository.NewDeletionRepository(db)

	configuration := &config.Configuration{
		Auth:     config.AuthConfig{Secret: "test-secret", TokenTTLHours: 1},
		Deletion: config.DeletionConfig{GraceHours: 24, SweepSchedule: "@every 1m"},
		Storage:  config.StorageConfig{Path: t.TempDir(), SignSecret: "sign-secret", URLTTLMinutes: 15},
	}

	return &testEnv{
		db:               db,
		itemService:      NewItemService(itemRepo, whitelistRepo, categoryRepo, locationRepo, authorRepo),
		whitelistService: NewWhitelistService(whitelistRepo, itemRepo),
		accountService:   NewAccountService(userRepo, deletionRepo, configuration),
		configuration:    configuration,
	}
}

package repository

import (
	"testing"

	"curio/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

func TestItemRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	item := &models.Item{UserID: 1, Title: "Film camera", Visibility: models.VisibilityPrivate}
	err := itemRepo.Create(item)
	assert.NoError(t, err)
	assert.NotZero(t, item.ID)

	found, err := itemRepo.FindByID(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Film camera", found.Title)

	missing, err := itemRepo.FindByID(9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemRepository_FindByIDForUser(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	item := &models.Item{UserID: 1, Title: "Record player"}
	assert.NoError(t, itemRepo.Create(item))

	owned, err := itemRepo.FindByIDForUser(item.ID, 1)
	assert.NoError(t, err)
	assert.NotNil(t, owned)

	notOwned, err := itemRepo.FindByIDForUser(item.ID, 2)
	assert.NoError(t, err)
	assert.Nil(t, notOwned)
}

func TestItemRepository_ListPage_LimitAndHasMore(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	for i := 0; i < 5; i++ {
		assert.NoError(t, itemRepo.Create(&models.Item{UserID: 1, Title: "Item"}))
	}

	items, more, err := itemRepo.ListPage(1, ItemFilter{}, 0, "next", 3)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.True(t, more)
	// Newest first.
	assert.Greater(t, items[0].ID, items[1].ID)

	// Second page from the last id of the first.
	items, more, err = itemRepo.ListPage(1, ItemFilter{}, items[2].ID, "next", 3)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.False(t, more)
}

func TestItemRepository_ListPage_PrevDirection(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	var ids []uint
	for i := 0; i < 4; i++ {
		item := &models.Item{UserID: 1, Title: "Item"}
		assert.NoError(t, itemRepo.Create(item))
		ids = append(ids, item.ID)
	}

	// Everything newer than the second row, still returned newest first.
	items, more, err := itemRepo.ListPage(1, ItemFilter{}, ids[1], "prev", 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, ids[3], items[0].ID)
	assert.Equal(t, ids[2], items[1].ID)
	assert.False(t, more)
}

func TestItemRepository_ListPage_Filters(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	categoryID := uint(7)
	assert.NoError(t, itemRepo.Create(&models.Item{UserID: 1, Title: "A", CategoryID: &categoryID}))
	assert.NoError(t, itemRepo.Create(&models.Item{UserID: 1, Title: "B", Visibility: models.VisibilityPublic}))
	assert.NoError(t, itemRepo.Create(&models.Item{UserID: 2, Title: "C", CategoryID: &categoryID}))

	items, _, err := itemRepo.ListPage(1, ItemFilter{CategoryID: &categoryID}, 0, "next", 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Title)

	items, _, err = itemRepo.ListPage(1, ItemFilter{Visibility: models.VisibilityPublic}, 0, "next", 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "B", items[0].Title)
}

func TestItemRepository_ListChildrenPage(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	parent := &models.Item{UserID: 1, Title: "Shelf"}
	assert.NoError(t, itemRepo.Create(parent))
	for i := 0; i < 3; i++ {
		assert.NoError(t, itemRepo.Create(&models.Item{UserID: 1, Title: "Book", ParentID: &parent.ID}))
	}
	assert.NoError(t, itemRepo.Create(&models.Item{UserID: 1, Title: "Loose item"}))

	children, more, err := itemRepo.ListChildrenPage(parent.ID, 0, "next", 10)
	assert.NoError(t, err)
	assert.Len(t, children, 3)
	assert.False(t, more)
}

func TestItemRepository_DeleteForUser_DetachesChildren(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	parent := &models.Item{UserID: 1, Title: "Box"}
	assert.NoError(t, itemRepo.Create(parent))
	child := &models.Item{UserID: 1, Title: "Coin", ParentID: &parent.ID}
	assert.NoError(t, itemRepo.Create(child))

	deleted, err := itemRepo.DeleteForUser(parent.ID, 1)
	assert.NoError(t, err)
	assert.True(t, deleted)

	reloaded, err := itemRepo.FindByID(child.ID)
	assert.NoError(t, err)
	assert.Nil(t, reloaded.ParentID)
}

func TestItemRepository_DeleteForUser_Missing(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)

	deleted, err := itemRepo.DeleteForUser(1234, 1)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestWhitelistRepository_AddExistsRemove(t *testing.T) {
	db := setupTestDB(t)
	whitelistRepo := NewWhitelistRepository(db)

	entry, err := whitelistRepo.Add(1, "friend@example.com")
	assert.NoError(t, err)
	assert.NotZero(t, entry.ID)

	exists, err := whitelistRepo.Exists(1, "friend@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	entries, err := whitelistRepo.ListByItem(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	removed, err := whitelistRepo.Remove(1, "friend@example.com")
	assert.NoError(t, err)
	assert.True(t, removed)

	exists, err = whitelistRepo.Exists(1, "friend@example.com")
	assert.NoError(t, err)
	assert.False(t, exists)

	removed, err = whitelistRepo.Remove(1, "friend@example.com")
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestOwnedRepository_Scoping(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	category := &models.Category{UserID: 1, Name: "Vinyl"}
	assert.NoError(t, categoryRepo.Create(category))

	found, err := categoryRepo.FindByIDForUser(category.ID, 1)
	assert.NoError(t, err)
	assert.NotNil(t, found)

	foreign, err := categoryRepo.FindByIDForUser(category.ID, 2)
	assert.NoError(t, err)
	assert.Nil(t, foreign)

	deleted, err := categoryRepo.DeleteForUser(category.ID, 2)
	assert.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = categoryRepo.DeleteForUser(category.ID, 1)
	assert.NoError(t, err)
	assert.True(t, deleted)
}

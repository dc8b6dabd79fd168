package repository

import (
	"errors"

	"curio/internal/models"

	"gorm.io/gorm"
)

// ItemFilter narrows item listings. Nil pointer fields are ignored;
// RootOnly matches items without a parent.
type ItemFilter struct {
	CategoryID *uint
	LocationID *uint
	AuthorID   *uint
	ParentID   *uint
	RootOnly   bool
	Visibility string
}

type ItemRepository interface {
	GenericRepository[models.Item]
	FindByIDForUser(id, userID uint) (*models.Item, error)
	ListPage(userID uint, filter ItemFilter, cursorID uint, direction string, limit int) ([]models.Item, bool, error)
	ListChildrenPage(parentID, cursorID uint, direction string, limit int) ([]models.Item, bool, error)
	ListVisibleChildrenPage(parentID uint, email string, cursorID uint, direction string, limit int) ([]models.Item, bool, error)
	DeleteForUser(id, userID uint) (bool, error)
}

type ItemRepositoryImpl struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

func (r *ItemRepositoryImpl) FindByIDForUser(id, userID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) ListPage(userID uint, filter ItemFilter, cursorID uint, direction string, limit int) ([]models.Item, bool, error) {
	query := r.db.Model(&models.Item{}).Where("user_id = ?", userID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	} else if filter.RootOnly {
		query = query.Where("parent_id IS NULL")
	}
	if filter.Visibility != "" {
		query = query.Where("visibility = ?", filter.Visibility)
	}
	return keysetPage[models.Item](query, cursorID, direction, limit)
}

func (r *ItemRepositoryImpl) ListChildrenPage(parentID, cursorID uint, direction string, limit int) ([]models.Item, bool, error) {
	query := r.db.Model(&models.Item{}).Where("parent_id = ?", parentID)
	return keysetPage[models.Item](query, cursorID, direction, limit)
}

// ListVisibleChildrenPage lists the children a non-owner may see: public
// ones, plus private ones whitelisted for the given email. An empty email
// matches public children only.
func (r *ItemRepositoryImpl) ListVisibleChildrenPage(parentID uint, email string, cursorID uint, direction string, limit int) ([]models.Item, bool, error) {
	query := r.db.Model(&models.Item{}).Where("parent_id = ?", parentID)
	if email == "" {
		query = query.Where("visibility = ?", models.VisibilityPublic)
	} else {
		query = query.Where(
			"visibility = ? OR id IN (?)",
			models.VisibilityPublic,
			r.db.Model(&models.ItemWhitelist{}).Select("item_id").Where("email = ?", email),
		)
	}
	return keysetPage[models.Item](query, cursorID, direction, limit)
}

// DeleteForUser removes an item and detaches its children so no row is
// left pointing at a deleted parent.
func (r *ItemRepositoryImpl) DeleteForUser(id, userID uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Item{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if err := tx.Model(&models.Item{}).Where("parent_id = ?", id).Update("parent_id", nil).Error; err != nil {
			return err
		}
		return nil
	})
	return deleted, err
}

package repository

import (
	"curio/internal/models"

	"gorm.io/gorm"
)

type ContentRepository interface {
	GenericRepository[models.Content]
	ListByItemPage(itemID, cursorID uint, direction string, limit int) ([]models.Content, bool, error)
	DeleteByID(id uint) (bool, error)
}

type ContentRepositoryImpl struct {
	GenericRepository[models.Content]
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Content](db),
		db:                db,
	}
}

func (r *ContentRepositoryImpl) ListByItemPage(itemID, cursorID uint, direction string, limit int) ([]models.Content, bool, error) {
	query := r.db.Model(&models.Content{}).Where("item_id = ?", itemID)
	return keysetPage[models.Content](query, cursorID, direction, limit)
}

func (r *ContentRepositoryImpl) DeleteByID(id uint) (bool, error) {
	result := r.db.Delete(&models.Content{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

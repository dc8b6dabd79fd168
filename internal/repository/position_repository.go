package repository

import (
	"curio/internal/models"

	"gorm.io/gorm"
)

type PositionRepository interface {
	GenericRepository[models.Position]
	ListByItemPage(itemID, cursorID uint, direction string, limit int) ([]models.Position, bool, error)
	DeleteByID(id uint) (bool, error)
}

type PositionRepositoryImpl struct {
	GenericRepository[models.Position]
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &PositionRepositoryImpl{
		GenericRepository: NewGenericRepository[models.Position](db),
		db:                db,
	}
}

func (r *PositionRepositoryImpl) ListByItemPage(itemID, cursorID uint, direction string, limit int) ([]models.Position, bool, error) {
	query := r.db.Model(&models.Position{}).Where("item_id = ?", itemID)
	return keysetPage[models.Position](query, cursorID, direction, limit)
}

func (r *PositionRepositoryImpl) DeleteByID(id uint) (bool, error) {
	result := r.db.Delete(&models.Position{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

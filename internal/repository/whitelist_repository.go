package repository

import (
	"curio/internal/models"

	"gorm.io/gorm"
)

type WhitelistRepository interface {
	ListByItem(itemID uint) ([]models.ItemWhitelist, error)
	Exists(itemID uint, email string) (bool, error)
	Add(itemID uint, email string) (*models.ItemWhitelist, error)
	Remove(itemID uint, email string) (bool, error)
}

type WhitelistRepositoryImpl struct {
	db *gorm.DB
}

func NewWhitelistRepository(db *gorm.DB) WhitelistRepository {
	return &WhitelistRepositoryImpl{db: db}
}

func (r *WhitelistRepositoryImpl) ListByItem(itemID uint) ([]models.ItemWhitelist, error) {
	var entries []models.ItemWhitelist
	err := r.db.Where("item_id = ?", itemID).Order("id ASC").Find(&entries).Error
	return entries, err
}

func (r *WhitelistRepositoryImpl) Exists(itemID uint, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ItemWhitelist{}).
		Where("item_id = ? AND email = ?", itemID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *WhitelistRepositoryImpl) Add(itemID uint, email string) (*models.ItemWhitelist, error) {
	entry := &models.ItemWhitelist{ItemID: itemID, Email: email}
	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *WhitelistRepositoryImpl) Remove(itemID uint, email string) (bool, error) {
	result := r.db.Unscoped().
		Where("item_id = ? AND email = ?", itemID, email).
		Delete(&models.ItemWhitelist{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

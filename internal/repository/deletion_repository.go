package repository

import (
	"errors"
	"time"

	"curio/internal/models"

	"gorm.io/gorm"
)

type DeletionRepository interface {
	GenericRepository[models.AccountDeletion]
	FindPendingByUser(userID uint) (*models.AccountDeletion, error)
	FindDue(now time.Time) ([]models.AccountDeletion, error)
	ClaimForExecution(id uint) (bool, error)
	PurgeUser(userID uint) error
}

type DeletionRepositoryImpl struct {
	GenericRepository[models.AccountDeletion]
	db *gorm.DB
}

func NewDeletionRepository(db *gorm.DB) DeletionRepository {
	return &DeletionRepositoryImpl{
		GenericRepository: NewGenericRepository[models.AccountDeletion](db),
		db:                db,
	}
}

func (r *DeletionRepositoryImpl) FindPendingByUser(userID uint) (*models.AccountDeletion, error) {
	var deletion models.AccountDeletion
	err := r.db.Where("user_id = ? AND status = ?", userID, models.DeletionPending).
		First(&deletion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deletion, nil
}

func (r *DeletionRepositoryImpl) FindDue(now time.Time) ([]models.AccountDeletion, error) {
	var deletions []models.AccountDeletion
	err := r.db.Where("status = ? AND scheduled_at <= ?", models.DeletionPending, now).
		Find(&deletions).Error
	return deletions, err
}

// ClaimForExecution flips one deletion from pending to completed and
// reports whether this call won the row. A cancellation that landed first
// makes the conditional update a no-op, so the account is left alone.
func (r *DeletionRepositoryImpl) ClaimForExecution(id uint) (bool, error) {
	result := r.db.Model(&models.AccountDeletion{}).
		Where("id = ? AND status = ?", id, models.DeletionPending).
		Update("status", models.DeletionCompleted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// PurgeUser hard-deletes everything a user owns, then the user row itself.
// Raw DELETEs bypass the soft-delete scope so previously soft-deleted rows
// go too.
func (r *DeletionRepositoryImpl) PurgeUser(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		itemScoped := []string{
			"DELETE FROM positions WHERE item_id IN (SELECT id FROM items WHERE user_id = ?)",
			"DELETE FROM contents WHERE item_id IN (SELECT id FROM items WHERE user_id = ?)",
			"DELETE FROM item_whitelists WHERE item_id IN (SELECT id FROM items WHERE user_id = ?)",
		}
		for _, stmt := range itemScoped {
			if err := tx.Exec(stmt, userID).Error; err != nil {
				return err
			}
		}
		userScoped := []string{
			"DELETE FROM items WHERE user_id = ?",
			"DELETE FROM categories WHERE user_id = ?",
			"DELETE FROM locations WHERE user_id = ?",
			"DELETE FROM authors WHERE user_id = ?",
			"DELETE FROM position_schemas WHERE user_id = ?",
			"DELETE FROM stored_files WHERE user_id = ?",
			"DELETE FROM users WHERE id = ?",
		}
		for _, stmt := range userScoped {
			if err := tx.Exec(stmt, userID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

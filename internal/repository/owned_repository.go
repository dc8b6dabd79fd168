package repository

import (
	"curio/internal/models"

	"gorm.io/gorm"
)

type OwnedRepositoryImpl[T any] struct {
	GenericRepository[T]
	db *gorm.DB
}

func NewOwnedRepository[T any](db *gorm.DB) OwnedRepository[T] {
	return &OwnedRepositoryImpl[T]{
		GenericRepository: NewGenericRepository[T](db),
		db:                db,
	}
}

func (r *OwnedRepositoryImpl[T]) FindByIDForUser(id, userID uint) (*T, error) {
	var entity T
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&entity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *OwnedRepositoryImpl[T]) ListPageForUser(userID, cursorID uint, direction string, limit int) ([]T, bool, error) {
	query := r.db.Where("user_id = ?", userID)
	return keysetPage[T](query, cursorID, direction, limit)
}

func (r *OwnedRepositoryImpl[T]) DeleteForUser(id, userID uint) (bool, error) {
	var entity T
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Concrete owned repositories, kept as named types so the wire graph stays
// explicit about what each service depends on.

type CategoryRepository = OwnedRepository[models.Category]
type LocationRepository = OwnedRepository[models.Location]
type AuthorRepository = OwnedRepository[models.Author]
type PositionSchemaRepository = OwnedRepository[models.PositionSchema]

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return NewOwnedRepository[models.Category](db)
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return NewOwnedRepository[models.Location](db)
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return NewOwnedRepository[models.Author](db)
}

func NewPositionSchemaRepository(db *gorm.DB) PositionSchemaRepository {
	return NewOwnedRepository[models.PositionSchema](db)
}

package repository

import (
	"errors"

	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// FindByID returns (nil, nil) when no row matches.
func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}

// keysetPage runs a keyset-paginated query over the given base query. It
// fetches limit+1 rows ordered by id to detect whether more rows exist
// beyond the window, trims the extra row, and always returns rows in
// descending id order regardless of direction.
func keysetPage[T any](query *gorm.DB, cursorID uint, direction string, limit int) ([]T, bool, error) {
	if direction == "prev" {
		if cursorID > 0 {
			query = query.Where("id > ?", cursorID)
		}
		query = query.Order("id ASC")
	} else {
		if cursorID > 0 {
			query = query.Where("id < ?", cursorID)
		}
		query = query.Order("id DESC")
	}

	var rows []T
	if err := query.Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	more := len(rows) > limit
	if more {
		rows = rows[:limit]
	}
	if direction == "prev" {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, more, nil
}

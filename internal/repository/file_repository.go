package repository

import (
	"errors"

	"curio/internal/models"

	"gorm.io/gorm"
)

type FileRepository interface {
	GenericRepository[models.StoredFile]
	FindByKey(key string) (*models.StoredFile, error)
}

type FileRepositoryImpl struct {
	GenericRepository[models.StoredFile]
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &FileRepositoryImpl{
		GenericRepository: NewGenericRepository[models.StoredFile](db),
		db:                db,
	}
}

func (r *FileRepositoryImpl) FindByKey(key string) (*models.StoredFile, error) {
	var file models.StoredFile
	err := r.db.Where("key = ?", key).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

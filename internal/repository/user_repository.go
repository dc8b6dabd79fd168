package repository

import (
	"errors"

	"curio/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GenericRepository[models.User]
	FindByEmail(email string) (*models.User, error)
}

type UserRepositoryImpl struct {
	GenericRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{
		GenericRepository: NewGenericRepository[models.User](db),
		db:                db,
	}
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

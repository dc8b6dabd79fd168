package services

import (
	"strings"

	"curio/internal/models"
	"curio/internal/repository"
)

// Categories, locations and authors are simple named entities owned by a
// user. They share list/lookup/delete mechanics and differ only in their
// writable fields.

type CategoryService interface {
	Create(userID uint, name string) (*models.Category, error)
	Get(id, userID uint) (*models.Category, error)
	Update(id, userID uint, name string) (*models.Category, error)
	Delete(id, userID uint) error
	List(userID uint, req PageRequest) (Page[models.Category], error)
}

type categoryServiceImpl struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryServiceImpl{repo: repo}
}

func (s *categoryServiceImpl) Create(userID uint, name string) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	category := &models.Category{UserID: userID, Name: name}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) Get(id, userID uint) (*models.Category, error) {
	category, err := s.repo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFoundf("category %d", id)
	}
	return category, nil
}

func (s *categoryServiceImpl) Update(id, userID uint, name string) (*models.Category, error) {
	category, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) Delete(id, userID uint) error {
	deleted, err := s.repo.DeleteForUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("category %d", id)
	}
	return nil
}

func (s *categoryServiceImpl) List(userID uint, req PageRequest) (Page[models.Category], error) {
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Category]{}, err
	}
	categories, more, err := s.repo.ListPageForUser(userID, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.Category]{}, err
	}
	ids := make([]uint, len(categories))
	for i := range categories {
		ids[i] = categories[i].ID
	}
	return newPage(categories, ids, req, more), nil
}

type AuthorService interface {
	Create(userID uint, name string) (*models.Author, error)
	Get(id, userID uint) (*models.Author, error)
	Update(id, userID uint, name string) (*models.Author, error)
	Delete(id, userID uint) error
	List(userID uint, req PageRequest) (Page[models.Author], error)
}

type authorServiceImpl struct {
	repo repository.AuthorRepository
}

func NewAuthorService(repo repository.AuthorRepository) AuthorService {
	return &authorServiceImpl{repo: repo}
}

func (s *authorServiceImpl) Create(userID uint, name string) (*models.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	author := &models.Author{UserID: userID, Name: name}
	if err := s.repo.Create(author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorServiceImpl) Get(id, userID uint) (*models.Author, error) {
	author, err := s.repo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, notFoundf("author %d", id)
	}
	return author, nil
}

func (s *authorServiceImpl) Update(id, userID uint, name string) (*models.Author, error) {
	author, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	author.Name = name
	if err := s.repo.Update(author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorServiceImpl) Delete(id, userID uint) error {
	deleted, err := s.repo.DeleteForUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("author %d", id)
	}
	return nil
}

func (s *authorServiceImpl) List(userID uint, req PageRequest) (Page[models.Author], error) {
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Author]{}, err
	}
	authors, more, err := s.repo.ListPageForUser(userID, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.Author]{}, err
	}
	ids := make([]uint, len(authors))
	for i := range authors {
		ids[i] = authors[i].ID
	}
	return newPage(authors, ids, req, more), nil
}

// LocationInput carries the writable location fields.
type LocationInput struct {
	Name      string
	Latitude  float64
	Longitude float64
}

type LocationService interface {
	Create(userID uint, in LocationInput) (*models.Location, error)
	Get(id, userID uint) (*models.Location, error)
	Update(id, userID uint, in LocationInput) (*models.Location, error)
	Delete(id, userID uint) error
	List(userID uint, req PageRequest) (Page[models.Location], error)
}

type locationServiceImpl struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &locationServiceImpl{repo: repo}
}

func validateLocation(in LocationInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return validationf("name is required")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return validationf("latitude out of range")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return validationf("longitude out of range")
	}
	return nil
}

func (s *locationServiceImpl) Create(userID uint, in LocationInput) (*models.Location, error) {
	if err := validateLocation(in); err != nil {
		return nil, err
	}
	location := &models.Location{
		UserID:    userID,
		Name:      in.Name,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := s.repo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationServiceImpl) Get(id, userID uint) (*models.Location, error) {
	location, err := s.repo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, notFoundf("location %d", id)
	}
	return location, nil
}

func (s *locationServiceImpl) Update(id, userID uint, in LocationInput) (*models.Location, error) {
	location, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if err := validateLocation(in); err != nil {
		return nil, err
	}
	location.Name = in.Name
	location.Latitude = in.Latitude
	location.Longitude = in.Longitude
	if err := s.repo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationServiceImpl) Delete(id, userID uint) error {
	deleted, err := s.repo.DeleteForUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("location %d", id)
	}
	return nil
}

func (s *locationServiceImpl) List(userID uint, req PageRequest) (Page[models.Location], error) {
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Location]{}, err
	}
	locations, more, err := s.repo.ListPageForUser(userID, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.Location]{}, err
	}
	ids := make([]uint, len(locations))
	for i := range locations {
		ids[i] = locations[i].ID
	}
	return newPage(locations, ids, req, more), nil
}

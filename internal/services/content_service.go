package services

import (
	"encoding/json"

	"curio/internal/models"
	"curio/internal/repository"
)

// ContentService manages the polymorphic attachments of an item. Payload
// is a JSON document discriminated by Kind.
type ContentService interface {
	Create(userID, itemID uint, kind string, payload json.RawMessage) (*models.Content, error)
	ListByItem(itemID, userID uint, req PageRequest) (Page[models.Content], error)
	Update(id, userID uint, kind string, payload json.RawMessage) (*models.Content, error)
	Delete(id, userID uint) error
}

type contentServiceImpl struct {
	contentRepo repository.ContentRepository
	itemRepo    repository.ItemRepository
}

func NewContentService(
	contentRepository repository.ContentRepository,
	itemRepository repository.ItemRepository,
) ContentService {
	return &contentServiceImpl{
		contentRepo: contentRepository,
		itemRepo:    itemRepository,
	}
}

func validateKind(kind string) error {
	switch kind {
	case models.ContentKindFile, models.ContentKindImage, models.ContentKindVideo:
		return nil
	}
	return validationf("kind must be one of %q, %q, %q",
		models.ContentKindFile, models.ContentKindImage, models.ContentKindVideo)
}

func (s *contentServiceImpl) Create(userID, itemID uint, kind string, payload json.RawMessage) (*models.Content, error) {
	if err := s.requireItemOwnership(itemID, userID); err != nil {
		return nil, err
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateJSONObject(payload, "payload"); err != nil {
		return nil, err
	}
	content := &models.Content{ItemID: itemID, Kind: kind, Payload: payload}
	if err := s.contentRepo.Create(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *contentServiceImpl) ListByItem(itemID, userID uint, req PageRequest) (Page[models.Content], error) {
	if err := s.requireItemOwnership(itemID, userID); err != nil {
		return Page[models.Content]{}, err
	}
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Content]{}, err
	}
	contents, more, err := s.contentRepo.ListByItemPage(itemID, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.Content]{}, err
	}
	ids := make([]uint, len(contents))
	for i := range contents {
		ids[i] = contents[i].ID
	}
	return newPage(contents, ids, req, more), nil
}

func (s *contentServiceImpl) Update(id, userID uint, kind string, payload json.RawMessage) (*models.Content, error) {
	content, err := s.findOwnedContent(id, userID)
	if err != nil {
		return nil, err
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateJSONObject(payload, "payload"); err != nil {
		return nil, err
	}
	content.Kind = kind
	content.Payload = payload
	if err := s.contentRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *contentServiceImpl) Delete(id, userID uint) error {
	if _, err := s.findOwnedContent(id, userID); err != nil {
		return err
	}
	deleted, err := s.contentRepo.DeleteByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("content %d", id)
	}
	return nil
}

func (s *contentServiceImpl) findOwnedContent(id, userID uint) (*models.Content, error) {
	content, err := s.contentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, notFoundf("content %d", id)
	}
	if err := s.requireItemOwnership(content.ItemID, userID); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *contentServiceImpl) requireItemOwnership(itemID, userID uint) error {
	item, err := s.itemRepo.FindByIDForUser(itemID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFoundf("item %d", itemID)
	}
	return nil
}

package services

import (
	"strings"

	"curio/internal/models"
	"curio/internal/repository"
)

// WhitelistService manages the emails granted read access to a private
// item. All operations require item ownership.
type WhitelistService interface {
	List(itemID, userID uint) ([]models.ItemWhitelist, error)
	Add(itemID, userID uint, email string) (*models.ItemWhitelist, error)
	Remove(itemID, userID uint, email string) error
}

type whitelistServiceImpl struct {
	whitelistRepo repository.WhitelistRepository
	itemRepo      repository.ItemRepository
}

func NewWhitelistService(
	whitelistRepository repository.WhitelistRepository,
	itemRepository repository.ItemRepository,
) WhitelistService {
	return &whitelistServiceImpl{
		whitelistRepo: whitelistRepository,
		itemRepo:      itemRepository,
	}
}

func (s *whitelistServiceImpl) List(itemID, userID uint) ([]models.ItemWhitelist, error) {
	if err := s.requireOwnership(itemID, userID); err != nil {
		return nil, err
	}
	return s.whitelistRepo.ListByItem(itemID)
}

func (s *whitelistServiceImpl) Add(itemID, userID uint, email string) (*models.ItemWhitelist, error) {
	if err := s.requireOwnership(itemID, userID); err != nil {
		return nil, err
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	exists, err := s.whitelistRepo.Exists(itemID, normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflictf("%s is already whitelisted", normalized)
	}
	return s.whitelistRepo.Add(itemID, normalized)
}

func (s *whitelistServiceImpl) Remove(itemID, userID uint, email string) error {
	if err := s.requireOwnership(itemID, userID); err != nil {
		return err
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	removed, err := s.whitelistRepo.Remove(itemID, normalized)
	if err != nil {
		return err
	}
	if !removed {
		return notFoundf("%s is not whitelisted", normalized)
	}
	return nil
}

func (s *whitelistServiceImpl) requireOwnership(itemID, userID uint) error {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFoundf("item %d", itemID)
	}
	if item.UserID != userID {
		return ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" || !strings.Contains(normalized, "@") {
		return "", validationf("invalid email address")
	}
	return normalized, nil
}

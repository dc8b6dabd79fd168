package services

import (
	"encoding/json"
	"strings"

	"curio/internal/auth"
	"curio/internal/models"
	"curio/internal/repository"
)

// maxParentDepth caps the ancestor walk when validating a parent chain.
const maxParentDepth = 64

// ItemInput carries the writable item fields for create and update.
type ItemInput struct {
	Title       string
	Description string
	CategoryID  *uint
	LocationID  *uint
	AuthorID    *uint
	ParentID    *uint
	Price       int64
	Currency    string
	Visibility  string
	Images      []string
}

type ItemService interface {
	CreateItem(userID uint, in ItemInput) (*models.Item, error)
	GetItemForCaller(id uint, caller *auth.Claims) (*models.Item, error)
	UpdateItem(id, userID uint, in ItemInput) (*models.Item, error)
	DeleteItem(id, userID uint) error
	ListItems(userID uint, filter repository.ItemFilter, req PageRequest) (Page[models.Item], error)
	ListChildren(id uint, caller *auth.Claims, req PageRequest) (Page[models.Item], error)
}

type itemServiceImpl struct {
	itemRepo      repository.ItemRepository
	whitelistRepo repository.WhitelistRepository
	categoryRepo  repository.CategoryRepository
	locationRepo  repository.LocationRepository
	authorRepo    repository.AuthorRepository
}

func NewItemService(
	itemRepository repository.ItemRepository,
	whitelistRepository repository.WhitelistRepository,
	categoryRepository repository.CategoryRepository,
	locationRepository repository.LocationRepository,
	authorRepository repository.AuthorRepository,
) ItemService {
	return &itemServiceImpl{
		itemRepo:      itemRepository,
		whitelistRepo: whitelistRepository,
		categoryRepo:  categoryRepository,
		locationRepo:  locationRepository,
		authorRepo:    authorRepository,
	}
}

func (s *itemServiceImpl) CreateItem(userID uint, in ItemInput) (*models.Item, error) {
	if err := s.validateInput(userID, 0, &in); err != nil {
		return nil, err
	}
	imagesJSON, err := marshalImages(in.Images)
	if err != nil {
		return nil, err
	}
	item := &models.Item{
		UserID:      userID,
		ParentID:    in.ParentID,
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		AuthorID:    in.AuthorID,
		Price:       in.Price,
		Currency:    in.Currency,
		Visibility:  in.Visibility,
		Images:      imagesJSON,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemForCaller resolves visibility: public items are readable by
// anyone, private items only by their owner or a whitelisted email.
func (s *itemServiceImpl) GetItemForCaller(id uint, caller *auth.Claims) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundf("item %d", id)
	}
	if err := s.authorizeRead(item, caller); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) authorizeRead(item *models.Item, caller *auth.Claims) error {
	if item.Visibility == models.VisibilityPublic {
		return nil
	}
	if caller == nil {
		return ErrUnauthorized
	}
	if caller.UserID == item.UserID {
		return nil
	}
	whitelisted, err := s.whitelistRepo.Exists(item.ID, strings.ToLower(caller.Email))
	if err != nil {
		return err
	}
	if whitelisted {
		return nil
	}
	return ErrForbidden
}

func (s *itemServiceImpl) UpdateItem(id, userID uint, in ItemInput) (*models.Item, error) {
	item, err := s.itemRepo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundf("item %d", id)
	}
	if err := s.validateInput(userID, id, &in); err != nil {
		return nil, err
	}
	imagesJSON, err := marshalImages(in.Images)
	if err != nil {
		return nil, err
	}
	item.Title = in.Title
	item.Description = in.Description
	item.CategoryID = in.CategoryID
	item.LocationID = in.LocationID
	item.AuthorID = in.AuthorID
	item.ParentID = in.ParentID
	item.Price = in.Price
	item.Currency = in.Currency
	item.Visibility = in.Visibility
	item.Images = imagesJSON
	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(id, userID uint) error {
	deleted, err := s.itemRepo.DeleteForUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("item %d", id)
	}
	return nil
}

func (s *itemServiceImpl) ListItems(userID uint, filter repository.ItemFilter, req PageRequest) (Page[models.Item], error) {
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Item]{}, err
	}
	items, more, err := s.itemRepo.ListPage(userID, filter, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.Item]{}, err
	}
	return newPage(items, itemIDs(items), req, more), nil
}

// ListChildren pages through the children of an item. The parent must be
// readable by the caller; non-owners additionally see only the children
// they could read individually (public, or whitelisted for their email).
func (s *itemServiceImpl) ListChildren(id uint, caller *auth.Claims, req PageRequest) (Page[models.Item], error) {
	parent, err := s.GetItemForCaller(id, caller)
	if err != nil {
		return Page[models.Item]{}, err
	}
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Item]{}, err
	}
	var items []models.Item
	var more bool
	if caller != nil && caller.UserID == parent.UserID {
		items, more, err = s.itemRepo.ListChildrenPage(id, cursorID, req.Direction, req.Limit)
	} else {
		email := ""
		if caller != nil {
			email = strings.ToLower(caller.Email)
		}
		items, more, err = s.itemRepo.ListVisibleChildrenPage(id, email, cursorID, req.Direction, req.Limit)
	}
	if err != nil {
		return Page[models.Item]{}, err
	}
	return newPage(items, itemIDs(items), req, more), nil
}

func (s *itemServiceImpl) validateInput(userID, itemID uint, in *ItemInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return validationf("title is required")
	}
	switch in.Visibility {
	case "":
		in.Visibility = models.VisibilityPrivate
	case models.VisibilityPublic, models.VisibilityPrivate:
	default:
		return validationf("visibility must be %q or %q", models.VisibilityPublic, models.VisibilityPrivate)
	}
	if in.CategoryID != nil {
		category, err := s.categoryRepo.FindByIDForUser(*in.CategoryID, userID)
		if err != nil {
			return err
		}
		if category == nil {
			return validationf("category %d does not exist", *in.CategoryID)
		}
	}
	if in.LocationID != nil {
		location, err := s.locationRepo.FindByIDForUser(*in.LocationID, userID)
		if err != nil {
			return err
		}
		if location == nil {
			return validationf("location %d does not exist", *in.LocationID)
		}
	}
	if in.AuthorID != nil {
		author, err := s.authorRepo.FindByIDForUser(*in.AuthorID, userID)
		if err != nil {
			return err
		}
		if author == nil {
			return validationf("author %d does not exist", *in.AuthorID)
		}
	}
	if in.ParentID != nil {
		return s.validateParent(userID, itemID, *in.ParentID)
	}
	return nil
}

// validateParent walks the ancestor chain of the proposed parent and
// rejects the assignment if it would close a cycle back to the item being
// written. itemID is zero on create, where no cycle is possible but the
// parent must still exist and belong to the same user.
func (s *itemServiceImpl) validateParent(userID, itemID, parentID uint) error {
	if itemID != 0 && parentID == itemID {
		return validationf("item cannot be its own parent")
	}
	current := parentID
	for depth := 0; depth < maxParentDepth; depth++ {
		parent, err := s.itemRepo.FindByIDForUser(current, userID)
		if err != nil {
			return err
		}
		if parent == nil {
			if current == parentID {
				return validationf("parent item %d does not exist", parentID)
			}
			return nil
		}
		if itemID != 0 && parent.ID == itemID {
			return validationf("parent chain would form a cycle")
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}
	return validationf("parent chain exceeds maximum depth")
}

func marshalImages(images []string) (json.RawMessage, error) {
	if images == nil {
		return nil, nil
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return nil, validationf("invalid images")
	}
	return raw, nil
}

func itemIDs(items []models.Item) []uint {
	ids := make([]uint, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	return ids
}

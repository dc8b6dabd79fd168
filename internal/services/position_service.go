package services

import (
	"encoding/json"
	"strings"

	"curio/internal/models"
	"curio/internal/repository"
)

// PositionService manages user-defined position schemas and their data
// instances. Schemas are stored as opaque JSON documents; positions tie
// one document instance to one item.
type PositionService interface {
	CreateSchema(userID uint, name string, schema json.RawMessage) (*models.PositionSchema, error)
	GetSchema(id, userID uint) (*models.PositionSchema, error)
	UpdateSchema(id, userID uint, name string, schema json.RawMessage) (*models.PositionSchema, error)
	DeleteSchema(id, userID uint) error
	ListSchemas(userID uint, req PageRequest) (Page[models.PositionSchema], error)

	CreatePosition(userID, itemID, schemaID uint, data json.RawMessage) (*models.Position, error)
	ListPositions(itemID, userID uint, req PageRequest) (Page[models.Position], error)
	UpdatePosition(id, userID uint, data json.RawMessage) (*models.Position, error)
	DeletePosition(id, userID uint) error
}

type positionServiceImpl struct {
	schemaRepo   repository.PositionSchemaRepository
	positionRepo repository.PositionRepository
	itemRepo     repository.ItemRepository
}

func NewPositionService(
	schemaRepository repository.PositionSchemaRepository,
	positionRepository repository.PositionRepository,
	itemRepository repository.ItemRepository,
) PositionService {
	return &positionServiceImpl{
		schemaRepo:   schemaRepository,
		positionRepo: positionRepository,
		itemRepo:     itemRepository,
	}
}

func (s *positionServiceImpl) CreateSchema(userID uint, name string, schema json.RawMessage) (*models.PositionSchema, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	if err := validateJSONObject(schema, "schema"); err != nil {
		return nil, err
	}
	positionSchema := &models.PositionSchema{UserID: userID, Name: name, Schema: schema}
	if err := s.schemaRepo.Create(positionSchema); err != nil {
		return nil, err
	}
	return positionSchema, nil
}

func (s *positionServiceImpl) GetSchema(id, userID uint) (*models.PositionSchema, error) {
	schema, err := s.schemaRepo.FindByIDForUser(id, userID)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, notFoundf("position schema %d", id)
	}
	return schema, nil
}

func (s *positionServiceImpl) UpdateSchema(id, userID uint, name string, schema json.RawMessage) (*models.PositionSchema, error) {
	positionSchema, err := s.GetSchema(id, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, validationf("name is required")
	}
	if err := validateJSONObject(schema, "schema"); err != nil {
		return nil, err
	}
	positionSchema.Name = name
	positionSchema.Schema = schema
	if err := s.schemaRepo.Update(positionSchema); err != nil {
		return nil, err
	}
	return positionSchema, nil
}

func (s *positionServiceImpl) DeleteSchema(id, userID uint) error {
	deleted, err := s.schemaRepo.DeleteForUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("position schema %d", id)
	}
	return nil
}

func (s *positionServiceImpl) ListSchemas(userID uint, req PageRequest) (Page[models.PositionSchema], error) {
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.PositionSchema]{}, err
	}
	schemas, more, err := s.schemaRepo.ListPageForUser(userID, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.PositionSchema]{}, err
	}
	ids := make([]uint, len(schemas))
	for i := range schemas {
		ids[i] = schemas[i].ID
	}
	return newPage(schemas, ids, req, more), nil
}

func (s *positionServiceImpl) CreatePosition(userID, itemID, schemaID uint, data json.RawMessage) (*models.Position, error) {
	if err := s.requireItemOwnership(itemID, userID); err != nil {
		return nil, err
	}
	schema, err := s.schemaRepo.FindByIDForUser(schemaID, userID)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, validationf("position schema %d does not exist", schemaID)
	}
	if err := validateJSONObject(data, "data"); err != nil {
		return nil, err
	}
	position := &models.Position{ItemID: itemID, SchemaID: schemaID, Data: data}
	if err := s.positionRepo.Create(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *positionServiceImpl) ListPositions(itemID, userID uint, req PageRequest) (Page[models.Position], error) {
	if err := s.requireItemOwnership(itemID, userID); err != nil {
		return Page[models.Position]{}, err
	}
	cursorID, err := req.Normalize()
	if err != nil {
		return Page[models.Position]{}, err
	}
	positions, more, err := s.positionRepo.ListByItemPage(itemID, cursorID, req.Direction, req.Limit)
	if err != nil {
		return Page[models.Position]{}, err
	}
	ids := make([]uint, len(positions))
	for i := range positions {
		ids[i] = positions[i].ID
	}
	return newPage(positions, ids, req, more), nil
}

func (s *positionServiceImpl) UpdatePosition(id, userID uint, data json.RawMessage) (*models.Position, error) {
	position, err := s.findOwnedPosition(id, userID)
	if err != nil {
		return nil, err
	}
	if err := validateJSONObject(data, "data"); err != nil {
		return nil, err
	}
	position.Data = data
	if err := s.positionRepo.Update(position); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *positionServiceImpl) DeletePosition(id, userID uint) error {
	if _, err := s.findOwnedPosition(id, userID); err != nil {
		return err
	}
	deleted, err := s.positionRepo.DeleteByID(id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundf("position %d", id)
	}
	return nil
}

func (s *positionServiceImpl) findOwnedPosition(id, userID uint) (*models.Position, error) {
	position, err := s.positionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, notFoundf("position %d", id)
	}
	if err := s.requireItemOwnership(position.ItemID, userID); err != nil {
		return nil, err
	}
	return position, nil
}

func (s *positionServiceImpl) requireItemOwnership(itemID, userID uint) error {
	item, err := s.itemRepo.FindByIDForUser(itemID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFoundf("item %d", itemID)
	}
	return nil
}

// validateJSONObject requires a non-empty JSON object document.
func validateJSONObject(raw json.RawMessage, field string) error {
	if len(raw) == 0 {
		return validationf("%s is required", field)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return validationf("%s must be a JSON object", field)
	}
	return nil
}

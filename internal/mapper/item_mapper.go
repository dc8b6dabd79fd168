package mapper

import (
	"encoding/json"

	"curio/internal/dto"
	"curio/internal/models"
	"curio/internal/services"
)

// ImageResolver rewrites stored image references into servable URLs.
type ImageResolver func([]string) []string

func ToItemDTO(item *models.Item, resolve ImageResolver) (*dto.ItemDTO, error) {
	images := []string{}
	if item.Images != nil {
		if err := json.Unmarshal(item.Images, &images); err != nil {
			return nil, err
		}
	}
	if resolve != nil {
		images = resolve(images)
	}
	return &dto.ItemDTO{
		ID:          item.ID,
		UserID:      item.UserID,
		ParentID:    item.ParentID,
		Title:       item.Title,
		Description: item.Description,
		CategoryID:  item.CategoryID,
		LocationID:  item.LocationID,
		AuthorID:    item.AuthorID,
		Price:       item.Price,
		Currency:    item.Currency,
		Visibility:  item.Visibility,
		Images:      images,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}, nil
}

func ToItemDTOs(items []models.Item, resolve ImageResolver) ([]dto.ItemDTO, error) {
	itemDTOs := make([]dto.ItemDTO, 0, len(items))
	for i := range items {
		itemDTO, err := ToItemDTO(&items[i], resolve)
		if err != nil {
			return nil, err
		}
		itemDTOs = append(itemDTOs, *itemDTO)
	}
	return itemDTOs, nil
}

// ToItemPage maps a model page onto a DTO page, keeping the pagination
// envelope intact.
func ToItemPage(page services.Page[models.Item], resolve ImageResolver) (services.Page[dto.ItemDTO], error) {
	items, err := ToItemDTOs(page.Items, resolve)
	if err != nil {
		return services.Page[dto.ItemDTO]{}, err
	}
	return services.Page[dto.ItemDTO]{
		Items:       items,
		HasNextPage: page.HasNextPage,
		HasPrevPage: page.HasPrevPage,
		NextCursor:  page.NextCursor,
		PrevCursor:  page.PrevCursor,
	}, nil
}

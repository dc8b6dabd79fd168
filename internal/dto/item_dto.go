package dto

import (
	"time"
)

// ItemDTO is the item response shape. Images carry resolved URLs: stored
// file references are already signed, legacy URLs pass through.
type ItemDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	ParentID    *uint     `json:"parent_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CategoryID  *uint     `json:"category_id,omitempty"`
	LocationID  *uint     `json:"location_id,omitempty"`
	AuthorID    *uint     `json:"author_id,omitempty"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency,omitempty"`
	Visibility  string    `json:"visibility"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

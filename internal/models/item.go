package models

import (
	"encoding/json"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Item is the central entity of the catalog. Items may nest via ParentID;
// the service layer guarantees the parent chain stays acyclic.
type Item struct {
	BaseModel
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	ParentID    *uint           `gorm:"index" json:"parent_id,omitempty"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CategoryID  *uint           `gorm:"index" json:"category_id,omitempty"`
	LocationID  *uint           `gorm:"index" json:"location_id,omitempty"`
	AuthorID    *uint           `gorm:"index" json:"author_id,omitempty"`
	Price       int64           `gorm:"default:0" json:"price"`
	Currency    string          `gorm:"type:varchar(3)" json:"currency,omitempty"`
	Visibility  string          `gorm:"type:varchar(10);not null;default:private" json:"visibility"`
	Images      json.RawMessage `gorm:"type:jsonb" json:"images,omitempty"`
}

package models

import (
	"encoding/json"
)

const (
	ContentKindFile  = "file"
	ContentKindImage = "image"
	ContentKindVideo = "video"
)

// Content is a polymorphic attachment on an item. Payload is a JSON
// document discriminated by Kind.
type Content struct {
	BaseModel
	ItemID  uint            `gorm:"index;not null" json:"item_id"`
	Kind    string          `gorm:"type:varchar(10);not null" json:"kind"`
	Payload json.RawMessage `gorm:"type:jsonb" json:"payload"`
}

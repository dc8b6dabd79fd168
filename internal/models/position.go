package models

import (
	"encoding/json"
)

// PositionSchema holds a user-defined JSON Schema describing custom
// position fields. The document is stored verbatim.
type PositionSchema struct {
	BaseModel
	UserID uint            `gorm:"index;not null" json:"user_id"`
	Name   string          `gorm:"type:varchar(255);not null" json:"name"`
	Schema json.RawMessage `gorm:"type:jsonb" json:"schema"`
}

// Position is one data instance of a PositionSchema, tied to a single item.
type Position struct {
	BaseModel
	ItemID   uint            `gorm:"index;not null" json:"item_id"`
	SchemaID uint            `gorm:"index;not null" json:"schema_id"`
	Data     json.RawMessage `gorm:"type:jsonb" json:"data"`
}

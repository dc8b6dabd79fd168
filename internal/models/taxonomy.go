package models

type Category struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
}

type Author struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
}

type Location struct {
	BaseModel
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

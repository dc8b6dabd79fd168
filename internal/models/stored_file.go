package models

// StoredFile is an uploaded object kept on the storage backend. Key is the
// object key on disk and the public reference (`file:<key>`) in item images.
type StoredFile struct {
	BaseModel
	Key    string `gorm:"type:varchar(26);not null;uniqueIndex" json:"key"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Mime   string `gorm:"type:varchar(127)" json:"mime,omitempty"`
	Size   int64  `gorm:"default:0" json:"size"`
}

package models

// ItemWhitelist grants read access to a private item for a single email.
// Emails are stored lowercased.
type ItemWhitelist struct {
	BaseModel
	ItemID uint   `gorm:"uniqueIndex:idx_whitelist_item_email;not null" json:"item_id"`
	Email  string `gorm:"type:varchar(255);uniqueIndex:idx_whitelist_item_email;not null" json:"email"`
}

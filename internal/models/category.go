package models

import "time"

// Category groups a user's tasks. The (name, userId) pair is unique per user;
// the composite index is the authoritative guard against concurrent duplicates.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex:idx_categories_name_user" validate:"required,min=1,max=100"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_categories_name_user;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

package models

import "time"

// UserSettings holds per-user preferences. At most one row per user; the row
// is materialized lazily by the first settings write.
type UserSettings struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);uniqueIndex"`
	DarkMode  bool      `json:"darkMode" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

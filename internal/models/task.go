package models

import "time"

// Task is a single to-do item. CategoryID must resolve to a category owned by
// the same user; (name, userId) is unique per user.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string     `json:"name" gorm:"type:varchar(100);uniqueIndex:idx_tasks_name_user" validate:"required,min=1,max=100"`
	Description string     `json:"description" gorm:"type:varchar(500)"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	UserID      string     `json:"userId" gorm:"type:varchar(36);uniqueIndex:idx_tasks_name_user;index"`
	CategoryID  string     `json:"categoryId" gorm:"type:varchar(36);index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

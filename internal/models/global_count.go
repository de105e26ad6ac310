package models

import "time"

// GlobalCount is a snapshot of the global case count
type GlobalCount struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GlobalCount model
func (GlobalCount) TableName() string {
	return "global_counts"
}

// GlobalCountInput is the body accepted when creating or updating a count
type GlobalCountInput struct {
	Count *int64 `json:"count" binding:"required"`
}

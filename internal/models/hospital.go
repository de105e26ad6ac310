package models

import "time"

// Hospital represents a hospital record, either created through the API or loaded from the import file
type Hospital struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	NameSlug     string         `gorm:"size:255;uniqueIndex" json:"nameSlug"`
	SerialNumber int            `gorm:"index" json:"sn"`
	IsCovid      bool           `gorm:"index" json:"covid"`
	Details      map[string]any `gorm:"type:json;serializer:json" json:"details,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalInput is the client supplied part of a hospital
type HospitalInput struct {
	Name         string         `json:"name" validate:"required,min=2,max=255"`
	SerialNumber int            `json:"sn" validate:"gte=0"`
	IsCovid      bool           `json:"covid"`
	Details      map[string]any `json:"details"`
}

// HospitalQuery carries the listing filters taken from the query string
type HospitalQuery struct {
	Page         int
	Size         int
	Sort         string
	Name         string
	NameSlug     string
	SerialNumber *int
	IsCovid      *bool
}

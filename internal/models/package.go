package models

import (
	"gorm.io/gorm"
)

type PackageStatus string

const (
	PackageStatusActive   PackageStatus = "active"
	PackageStatusInactive PackageStatus = "inactive"
)

// Package is a catalog entry offered by an organizer. The recommendation
// engine only ever reads active rows.
type Package struct {
	gorm.Model
	OrganizerID uint          `json:"organizerId" gorm:"column:organizer_id;index"`
	Name        string        `json:"name" gorm:"column:name;not null"`
	Description string        `json:"description" gorm:"column:description"`
	Price       float64       `json:"price" gorm:"column:price;not null"`
	EventType   string        `json:"eventType" gorm:"column:event_type;not null;index"`
	Rating      *float64      `json:"rating,omitempty" gorm:"column:rating"`
	Status      PackageStatus `json:"status" gorm:"column:status;not null;default:'active'"`
	ImageURL    string        `json:"imageUrl" gorm:"column:image"`
}

// TableName specifies the table name
func (Package) TableName() string {
	return "packages"
}

// Review is a client rating for a package; the package's average rating is
// recomputed whenever a review is submitted.
type Review struct {
	gorm.Model
	PackageID uint    `json:"packageId" gorm:"column:package_id;not null;index"`
	UserID    uint    `json:"userId" gorm:"column:user_id;not null"`
	Rating    float64 `json:"rating" gorm:"column:rating;not null"`
	Comment   string  `json:"comment" gorm:"column:comment"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Association struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Address     string `gorm:"not null"`
	Phone       string
	Email       string
	SocialMedia string
	Description string

	// Unordered set of category tag IDs from the fixed vocabulary,
	// stored as a JSON array. Freguesia holds the parish IDs the
	// association operates in, stored the same way.
	ActivityCategories datatypes.JSON
	Freguesia          datatypes.JSON
	OtherActivities    string

	// Relationships
	Activities []Activity `gorm:"foreignKey:AssociationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

type Activity struct {
	gorm.Model

	Name          string `gorm:"not null"`
	Description   string `gorm:"not null"`
	Date          string `gorm:"not null"` // DD/MM/YYYY, validated at write time
	Location      string `gorm:"not null"`
	ActivityType  string
	AssociationID uint `gorm:"not null;index"`

	// Relationships
	Association Association `gorm:"foreignKey:AssociationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"default:false"`

	// Set only for association accounts. The unique index enforces at most
	// one owner account per association (NULLs are exempt).
	AssociationID *uint `gorm:"uniqueIndex"`

	// Relationships
	Association *Association `gorm:"foreignKey:AssociationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

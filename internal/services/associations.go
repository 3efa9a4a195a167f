package services

import (
	"errors"

	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail      = errors.New("a user with this email already exists")
	ErrAssociationNotFound = errors.New("association not found")
	ErrAssociationHasUser  = errors.New("this association already has a user account")
)

// AssociationInput carries the mutable fields of an association. The
// category set and the free-form "other activities" note are cleared when
// left empty.
type AssociationInput struct {
	Name               string
	Address            string
	Phone              string
	Email              string
	SocialMedia        string
	Description        string
	ActivityCategories []string
	Freguesia          []string
	OtherActivities    string
}

// CreateAssociationWithOwner creates an association together with its owner
// account in a single transaction. The contact email doubles as the login
// email, so it must not belong to any existing user; in that case nothing is
// written and ErrDuplicateEmail is returned.
func CreateAssociationWithOwner(gdb *gorm.DB, input AssociationInput, ownerPassword string) (*models.Association, *models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)

	if err != nil {
		return nil, nil, err
	}

	association := models.Association{
		Name:               input.Name,
		Address:            input.Address,
		Phone:              input.Phone,
		Email:              input.Email,
		SocialMedia:        input.SocialMedia,
		Description:        input.Description,
		ActivityCategories: utils.EncodeCategories(input.ActivityCategories),
		Freguesia:          utils.EncodeFreguesias(input.Freguesia),
		OtherActivities:    input.OtherActivities,
	}

	var owner models.User

	err = gdb.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("email = ?", input.Email).First(&existing).Error

		if err == nil {
			return ErrDuplicateEmail
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&association).Error; err != nil {
			return err
		}

		owner = models.User{
			Email:         input.Email,
			PasswordHash:  string(passwordHash),
			IsAdmin:       false,
			AssociationID: &association.ID,
		}

		return tx.Create(&owner).Error
	})

	if err != nil {
		return nil, nil, err
	}

	return &association, &owner, nil
}

// UpdateAssociation overwrites every mutable field of the association.
func UpdateAssociation(gdb *gorm.DB, association *models.Association, input AssociationInput) error {
	association.Name = input.Name
	association.Address = input.Address
	association.Phone = input.Phone
	association.Email = input.Email
	association.SocialMedia = input.SocialMedia
	association.Description = input.Description
	association.ActivityCategories = utils.EncodeCategories(input.ActivityCategories)
	association.Freguesia = utils.EncodeFreguesias(input.Freguesia)
	association.OtherActivities = input.OtherActivities

	return gdb.Save(association).Error
}

// DeleteAssociationCascade removes the association, every activity it owns
// and its owner account as one atomic unit.
func DeleteAssociationCascade(gdb *gorm.DB, associationID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var association models.Association

		if err := tx.First(&association, associationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssociationNotFound
			}
			return err
		}

		if err := tx.Where("association_id = ?", association.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}

		if err := tx.Where("association_id = ?", association.ID).Delete(&models.User{}).Error; err != nil {
			return err
		}

		return tx.Delete(&association).Error
	})
}

package services

import (
	"errors"

	"github.com/accvalongo/associa/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateAdminUser registers a new administrator account. Callers gate this
// behind the super-admin check first.
func CreateAdminUser(gdb *gorm.DB, email, password string) (*models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		IsAdmin:      true,
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("email = ?", email).First(&existing).Error

		if err == nil {
			return ErrDuplicateEmail
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateAssociationUser attaches a fresh owner account to an existing
// association. The association must exist and must not already have one.
func CreateAssociationUser(gdb *gorm.DB, email, password string, associationID uint) (*models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:         email,
		PasswordHash:  string(passwordHash),
		IsAdmin:       false,
		AssociationID: &associationID,
	}

	err = gdb.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("email = ?", email).First(&existing).Error

		if err == nil {
			return ErrDuplicateEmail
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var association models.Association

		if err := tx.First(&association, associationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssociationNotFound
			}
			return err
		}

		var owner models.User

		err = tx.Where("association_id = ?", associationID).First(&owner).Error

		if err == nil {
			return ErrAssociationHasUser
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUserCredentials changes a user's email and, when newPassword is not
// empty, their password.
func UpdateUserCredentials(gdb *gorm.DB, user *models.User, email, newPassword string) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		if email != user.Email {
			var existing models.User

			err := tx.Where("email = ? AND id != ?", email, user.ID).First(&existing).Error

			if err == nil {
				return ErrDuplicateEmail
			}

			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		user.Email = email

		if newPassword != "" {
			passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)

			if err != nil {
				return err
			}

			user.PasswordHash = string(passwordHash)
		}

		return tx.Save(user).Error
	})
}

// DeleteUserCascade removes a user and, for association accounts, the
// organization record and its activities along with it. The cascade is
// symmetric with DeleteAssociationCascade and runs as one transaction.
func DeleteUserCascade(gdb *gorm.DB, userID uint) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.AssociationID != nil {
			if err := tx.Where("association_id = ?", *user.AssociationID).Delete(&models.Activity{}).Error; err != nil {
				return err
			}

			if err := tx.Delete(&models.Association{}, *user.AssociationID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}

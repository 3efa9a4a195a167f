package services

import (
	"fmt"
	"testing"

	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&models.Association{}, &models.User{}, &models.Activity{}))

	return gdb
}

func testInput(email string) AssociationInput {
	return AssociationInput{
		Name:               "Clube X",
		Address:            "Rua Central 1, Valongo",
		Email:              email,
		ActivityCategories: []string{"desporto_futebol", "cultura_teatro"},
		Freguesia:          []string{"valongo", "ermesinde"},
	}
}

func TestCreateAssociationWithOwner(t *testing.T) {
	gdb := newTestDB(t)

	association, owner, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	require.NotNil(t, owner.AssociationID)
	assert.Equal(t, association.ID, *owner.AssociationID)
	assert.False(t, owner.IsAdmin)
	assert.Equal(t, "x@x.pt", owner.Email)

	// The credential is stored hashed, never plaintext.
	assert.NotEqual(t, "pw1", owner.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte("pw1")))
}

func TestCreateAssociationDuplicateEmailLeavesNoRows(t *testing.T) {
	gdb := newTestDB(t)

	_, _, err := CreateAssociationWithOwner(gdb, testInput("taken@x.pt"), "pw1")
	require.NoError(t, err)

	input := testInput("taken@x.pt")
	input.Name = "Clube Y"

	_, _, err = CreateAssociationWithOwner(gdb, input, "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	var associations, users int64
	require.NoError(t, gdb.Model(&models.Association{}).Count(&associations).Error)
	require.NoError(t, gdb.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 1, associations)
	assert.EqualValues(t, 1, users)
}

func TestDeleteAssociationCascade(t *testing.T) {
	gdb := newTestDB(t)

	association, owner, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := CreateActivity(gdb, association.ID, ActivityInput{
			Name:        fmt.Sprintf("Torneio %d", i),
			Description: "Torneio anual",
			Date:        "25/12/2024",
			Location:    "Pavilhão Municipal",
		})
		require.NoError(t, err)
	}

	require.NoError(t, DeleteAssociationCascade(gdb, association.ID))

	var activities int64
	require.NoError(t, gdb.Model(&models.Activity{}).Where("association_id = ?", association.ID).Count(&activities).Error)
	assert.Zero(t, activities)

	var user models.User
	err = gdb.First(&user, owner.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, DeleteAssociationCascade(gdb, association.ID), ErrAssociationNotFound)
}

func TestDeleteUserCascadeIsSymmetric(t *testing.T) {
	gdb := newTestDB(t)

	association, owner, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	_, err = CreateActivity(gdb, association.ID, ActivityInput{
		Name:        "Caminhada",
		Description: "Caminhada na serra",
		Date:        "01/06/2025",
		Location:    "Serra de Santa Justa",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteUserCascade(gdb, owner.ID))

	assert.ErrorIs(t, gdb.First(&models.Association{}, association.ID).Error, gorm.ErrRecordNotFound)

	var activities int64
	require.NoError(t, gdb.Model(&models.Activity{}).Where("association_id = ?", association.ID).Count(&activities).Error)
	assert.Zero(t, activities)
}

func TestDeleteAdminUserHasNoCascade(t *testing.T) {
	gdb := newTestDB(t)

	admin, err := CreateAdminUser(gdb, "admin@x.pt", "password123")
	require.NoError(t, err)

	association, _, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	require.NoError(t, DeleteUserCascade(gdb, admin.ID))

	assert.NoError(t, gdb.First(&models.Association{}, association.ID).Error)
}

func TestCreateAssociationUserChecks(t *testing.T) {
	gdb := newTestDB(t)

	association, _, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	_, err = CreateAssociationUser(gdb, "x@x.pt", "pw2", association.ID)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = CreateAssociationUser(gdb, "second@x.pt", "pw2", association.ID)
	assert.ErrorIs(t, err, ErrAssociationHasUser)

	_, err = CreateAssociationUser(gdb, "second@x.pt", "pw2", 999)
	assert.ErrorIs(t, err, ErrAssociationNotFound)

	// An association created without an owner can receive one.
	bare := models.Association{Name: "Clube Z", Address: "Rua Nova 2"}
	require.NoError(t, gdb.Create(&bare).Error)

	user, err := CreateAssociationUser(gdb, "z@x.pt", "pw3", bare.ID)
	require.NoError(t, err)
	require.NotNil(t, user.AssociationID)
	assert.Equal(t, bare.ID, *user.AssociationID)
}

func TestUpdateUserCredentials(t *testing.T) {
	gdb := newTestDB(t)

	first, err := CreateAdminUser(gdb, "first@x.pt", "password123")
	require.NoError(t, err)

	second, err := CreateAdminUser(gdb, "second@x.pt", "password123")
	require.NoError(t, err)

	err = UpdateUserCredentials(gdb, second, "first@x.pt", "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	oldHash := first.PasswordHash

	require.NoError(t, UpdateUserCredentials(gdb, first, "renamed@x.pt", "newpassword"))
	assert.Equal(t, "renamed@x.pt", first.Email)
	assert.NotEqual(t, oldHash, first.PasswordHash)

	// Empty password keeps the old credential.
	hash := first.PasswordHash
	require.NoError(t, UpdateUserCredentials(gdb, first, "renamed@x.pt", ""))
	assert.Equal(t, hash, first.PasswordHash)
}

func TestCreateActivityValidatesDate(t *testing.T) {
	gdb := newTestDB(t)

	association, _, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	_, err = CreateActivity(gdb, association.ID, ActivityInput{
		Name:        "Festa",
		Description: "Festa de verão",
		Date:        "not a date",
		Location:    "Largo da Igreja",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = CreateActivity(gdb, association.ID, ActivityInput{
		Name:        "Festa",
		Description: "Festa de verão",
		Date:        "31/02/2024",
		Location:    "Largo da Igreja",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	activity, err := CreateActivity(gdb, association.ID, ActivityInput{
		Name:        "Festa",
		Description: "Festa de verão",
		Date:        "15/08/2025",
		Location:    "Largo da Igreja",
	})
	require.NoError(t, err)
	assert.Equal(t, "15/08/2025", activity.Date)
}

func TestAssociationFreguesiaPersists(t *testing.T) {
	gdb := newTestDB(t)

	association, _, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	var stored models.Association
	require.NoError(t, gdb.First(&stored, association.ID).Error)
	assert.ElementsMatch(t, []string{"valongo", "ermesinde"}, utils.DecodeTags(stored.Freguesia))

	input := testInput("x@x.pt")
	input.Freguesia = []string{"alfena"}

	require.NoError(t, UpdateAssociation(gdb, association, input))

	require.NoError(t, gdb.First(&stored, association.ID).Error)
	assert.ElementsMatch(t, []string{"alfena"}, utils.DecodeTags(stored.Freguesia))
}

func TestDeleteActivity(t *testing.T) {
	gdb := newTestDB(t)

	association, _, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	activity, err := CreateActivity(gdb, association.ID, ActivityInput{
		Name:        "Festa",
		Description: "Festa de verão",
		Date:        "15/08/2025",
		Location:    "Largo da Igreja",
	})
	require.NoError(t, err)

	require.NoError(t, DeleteActivity(gdb, activity))

	err = gdb.First(&models.Activity{}, activity.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateAssociationClearsOmittedFields(t *testing.T) {
	gdb := newTestDB(t)

	association, _, err := CreateAssociationWithOwner(gdb, testInput("x@x.pt"), "pw1")
	require.NoError(t, err)

	input := testInput("x@x.pt")
	input.ActivityCategories = nil
	input.OtherActivities = ""

	require.NoError(t, UpdateAssociation(gdb, association, input))

	var stored models.Association
	require.NoError(t, gdb.First(&stored, association.ID).Error)
	assert.Empty(t, stored.ActivityCategories)
	assert.Empty(t, stored.OtherActivities)
}

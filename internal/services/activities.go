package services

import (
	"errors"

	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/utils"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("date must be a valid calendar date in DD/MM/YYYY form")

// ActivityInput carries the mutable fields of an activity.
type ActivityInput struct {
	Name         string
	Description  string
	Date         string
	Location     string
	ActivityType string
}

// CreateActivity adds an event owned by the given association. The date is
// validated as a real calendar date, not just free text.
func CreateActivity(gdb *gorm.DB, associationID uint, input ActivityInput) (*models.Activity, error) {
	if !utils.ValidDisplayDate(input.Date) {
		return nil, ErrInvalidDate
	}

	activity := models.Activity{
		Name:          input.Name,
		Description:   input.Description,
		Date:          input.Date,
		Location:      input.Location,
		ActivityType:  input.ActivityType,
		AssociationID: associationID,
	}

	if err := gdb.Create(&activity).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}

// UpdateActivity overwrites every mutable field of the activity.
func UpdateActivity(gdb *gorm.DB, activity *models.Activity, input ActivityInput) error {
	if !utils.ValidDisplayDate(input.Date) {
		return ErrInvalidDate
	}

	activity.Name = input.Name
	activity.Description = input.Description
	activity.Date = input.Date
	activity.Location = input.Location
	activity.ActivityType = input.ActivityType

	return gdb.Save(activity).Error
}

// DeleteActivity removes a single activity.
func DeleteActivity(gdb *gorm.DB, activity *models.Activity) error {
	return gdb.Delete(activity).Error
}

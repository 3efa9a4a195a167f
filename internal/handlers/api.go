package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/accvalongo/associa/db"
	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssociationResponse struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Email              string   `json:"email"`
	SocialMedia        string   `json:"social_media"`
	Description        string   `json:"description"`
	ActivityCategories []string `json:"activity_categories"`
	OtherActivities    string   `json:"other_activities"`
}

type ActivityResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Date            *string `json:"date"`
	Location        string  `json:"location"`
	ActivityType    string  `json:"activity_type"`
	AssociationID   uint    `json:"association_id"`
	AssociationName string  `json:"association_name"`
}

type ActivitySummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Date        *string `json:"date"`
	Location    string  `json:"location"`
}

type AssociationDetailResponse struct {
	AssociationResponse
	Activities []ActivitySummary `json:"activities"`
}

func associationResponse(association models.Association) AssociationResponse {
	return AssociationResponse{
		ID:                 association.ID,
		Name:               association.Name,
		Address:            association.Address,
		Phone:              association.Phone,
		Email:              association.Email,
		SocialMedia:        association.SocialMedia,
		Description:        association.Description,
		ActivityCategories: utils.DecodeTags(association.ActivityCategories),
		OtherActivities:    association.OtherActivities,
	}
}

// APIListAssociations returns every association for the public frontend.
func APIListAssociations(ctx *gin.Context) {
	var associations []models.Association

	if err := db.DB.Find(&associations).Error; err != nil {
		log.Printf("Failed to list associations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]AssociationResponse, 0, len(associations))

	for _, association := range associations {
		response = append(response, associationResponse(association))
	}

	ctx.JSON(http.StatusOK, gin.H{"associations": response})
}

// APIListActivities returns every activity with its owning association's
// name joined in. Dates are reformatted to ISO; malformed dates become null.
func APIListActivities(ctx *gin.Context) {
	var activities []models.Activity

	if err := db.DB.Preload("Association").Find(&activities).Error; err != nil {
		log.Printf("Failed to list activities: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]ActivityResponse, 0, len(activities))

	for _, activity := range activities {
		response = append(response, ActivityResponse{
			ID:              activity.ID,
			Name:            activity.Name,
			Description:     activity.Description,
			Date:            utils.ISODate(activity.Date),
			Location:        activity.Location,
			ActivityType:    activity.ActivityType,
			AssociationID:   activity.AssociationID,
			AssociationName: activity.Association.Name,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"activities": response})
}

// APIAssociationDetail returns one association together with its activities.
func APIAssociationDetail(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Association not found"})
		return
	}

	var association models.Association

	if err := db.DB.First(&association, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Association not found"})
		} else {
			log.Printf("Failed to retrieve association: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var activities []models.Activity

	if err := db.DB.Where("association_id = ?", association.ID).Find(&activities).Error; err != nil {
		log.Printf("Failed to list activities: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	detail := AssociationDetailResponse{
		AssociationResponse: associationResponse(association),
		Activities:          make([]ActivitySummary, 0, len(activities)),
	}

	for _, activity := range activities {
		detail.Activities = append(detail.Activities, ActivitySummary{
			ID:          activity.ID,
			Name:        activity.Name,
			Description: activity.Description,
			Date:        utils.ISODate(activity.Date),
			Location:    activity.Location,
		})
	}

	ctx.JSON(http.StatusOK, detail)
}

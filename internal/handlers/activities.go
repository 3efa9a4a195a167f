package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/accvalongo/associa/db"
	"github.com/accvalongo/associa/internal/authz"
	"github.com/accvalongo/associa/internal/flash"
	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/services"
	"github.com/accvalongo/associa/internal/types"
	"github.com/accvalongo/associa/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActivityFormRequest struct {
	Name         string `form:"name" binding:"required,min=2,max=100"`
	Description  string `form:"description" binding:"required"`
	Date         string `form:"date" binding:"required,max=20"`
	Location     string `form:"location" binding:"required,max=100"`
	ActivityType string `form:"activity_type"`
}

func (r ActivityFormRequest) input() services.ActivityInput {
	return services.ActivityInput{
		Name:         r.Name,
		Description:  r.Description,
		Date:         r.Date,
		Location:     r.Location,
		ActivityType: r.ActivityType,
	}
}

func findActivity(ctx *gin.Context) (*models.Activity, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.String(http.StatusNotFound, "Activity not found")
		return nil, false
	}

	var activity models.Activity

	if err := db.DB.First(&activity, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, "Activity not found")
		} else {
			log.Printf("Failed to retrieve activity: %v", err)
			ctx.String(http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}

	return &activity, true
}

func activitiesPath(associationID uint) string {
	return fmt.Sprintf("/association/%d/activities", associationID)
}

func ManageActivities(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	association, ok := findAssociation(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageActivity(caller, association.ID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var activities []models.Activity

	if err := db.DB.Where("association_id = ?", association.ID).Find(&activities).Error; err != nil {
		log.Printf("Failed to list activities: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "manage_activities.html", pageData(ctx, gin.H{
		"title":       "Manage Activities",
		"association": association,
		"activities":  activities,
		"categories":  types.ActivityCategories,
	}))
}

func CreateActivity(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	association, ok := findAssociation(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageActivity(caller, association.ID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var req ActivityFormRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please fill in the required fields correctly.")
		ctx.Redirect(http.StatusFound, activitiesPath(association.ID))
		return
	}

	if _, err := services.CreateActivity(db.DB, association.ID, req.input()); err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			flash.Set(ctx, "danger", "The date must be a valid calendar date in DD/MM/YYYY form.")
		} else {
			log.Printf("Failed to create activity: %v", err)
			flash.Set(ctx, "danger", "Could not create the activity.")
		}
		ctx.Redirect(http.StatusFound, activitiesPath(association.ID))
		return
	}

	flash.Set(ctx, "success", "Activity created successfully!")
	ctx.Redirect(http.StatusFound, activitiesPath(association.ID))
}

func EditActivity(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	activity, ok := findActivity(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageActivity(caller, activity.AssociationID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	ctx.HTML(http.StatusOK, "edit_activity.html", pageData(ctx, gin.H{
		"title":      "Edit Activity",
		"activity":   activity,
		"categories": types.ActivityCategories,
	}))
}

func UpdateActivity(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	activity, ok := findActivity(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageActivity(caller, activity.AssociationID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var req ActivityFormRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please fill in the required fields correctly.")
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/activity/%d/edit", activity.ID))
		return
	}

	if err := services.UpdateActivity(db.DB, activity, req.input()); err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			flash.Set(ctx, "danger", "The date must be a valid calendar date in DD/MM/YYYY form.")
		} else {
			log.Printf("Failed to update activity: %v", err)
			flash.Set(ctx, "danger", "Could not update the activity.")
		}
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/activity/%d/edit", activity.ID))
		return
	}

	flash.Set(ctx, "success", "Activity updated successfully!")
	ctx.Redirect(http.StatusFound, activitiesPath(activity.AssociationID))
}

func DeleteActivity(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	activity, ok := findActivity(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageActivity(caller, activity.AssociationID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	if err := services.DeleteActivity(db.DB, activity); err != nil {
		log.Printf("Failed to delete activity: %v", err)
		flash.Set(ctx, "danger", "Could not delete the activity.")
		ctx.Redirect(http.StatusFound, activitiesPath(activity.AssociationID))
		return
	}

	flash.Set(ctx, "success", "Activity deleted successfully!")
	ctx.Redirect(http.StatusFound, activitiesPath(activity.AssociationID))
}

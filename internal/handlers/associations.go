package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

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

type AssociationFormRequest struct {
	Name               string   `form:"name" binding:"required,min=2,max=100"`
	Address            string   `form:"address" binding:"required,min=5,max=200"`
	Phone              string   `form:"phone" binding:"max=20"`
	Email              string   `form:"email" binding:"required,email,max=120"`
	SocialMedia        string   `form:"social_media" binding:"max=200"`
	Description        string   `form:"description"`
	ActivityCategories []string `form:"activity_categories"`
	Freguesia          []string `form:"freguesia"`
	OtherActivities    string   `form:"other_activities" binding:"max=200"`
}

// CreateAssociationRequest additionally carries the login password for the
// paired owner account.
type CreateAssociationRequest struct {
	AssociationFormRequest
	Password string `form:"password" binding:"required"`
}

func (r AssociationFormRequest) input() services.AssociationInput {
	return services.AssociationInput{
		Name:               r.Name,
		Address:            r.Address,
		Phone:              r.Phone,
		Email:              strings.ToLower(strings.TrimSpace(r.Email)),
		SocialMedia:        r.SocialMedia,
		Description:        r.Description,
		ActivityCategories: r.ActivityCategories,
		Freguesia:          r.Freguesia,
		OtherActivities:    r.OtherActivities,
	}
}

func findAssociation(ctx *gin.Context) (*models.Association, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.String(http.StatusNotFound, "Association not found")
		return nil, false
	}

	var association models.Association

	if err := db.DB.First(&association, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, "Association not found")
		} else {
			log.Printf("Failed to retrieve association: %v", err)
			ctx.String(http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}

	return &association, true
}

func ManageAssociations(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	if decision := authz.ListAssociations(caller); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var associations []models.Association

	if err := db.DB.Find(&associations).Error; err != nil {
		log.Printf("Failed to list associations: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "manage_associations.html", pageData(ctx, gin.H{
		"title":        "Manage Associations",
		"associations": associations,
		"categories":   types.ActivityCategories,
		"freguesias":   types.Freguesias,
	}))
}

func CreateAssociation(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	if decision := authz.ListAssociations(caller); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var req CreateAssociationRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please fill in the required fields correctly.")
		ctx.Redirect(http.StatusFound, "/admin/associations")
		return
	}

	input := req.input()

	association, _, err := services.CreateAssociationWithOwner(db.DB, input, req.Password)

	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			flash.Set(ctx, "danger", fmt.Sprintf("A user with the email %s already exists. Use a different email.", input.Email))
		} else {
			log.Printf("Failed to create association: %v", err)
			flash.Set(ctx, "danger", "Could not create the association.")
		}
		ctx.Redirect(http.StatusFound, "/admin/associations")
		return
	}

	flash.Set(ctx, "success", fmt.Sprintf("Association '%s' and its user account were created successfully! Email: %s", association.Name, input.Email))
	ctx.Redirect(http.StatusFound, "/admin/associations")
}

func EditAssociation(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	association, ok := findAssociation(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageAssociation(caller, association.ID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	selected := make(map[string]bool)

	for _, id := range utils.DecodeTags(association.ActivityCategories) {
		selected[id] = true
	}

	selectedFreguesias := make(map[string]bool)

	for _, id := range utils.DecodeTags(association.Freguesia) {
		selectedFreguesias[id] = true
	}

	ctx.HTML(http.StatusOK, "edit_association.html", pageData(ctx, gin.H{
		"title":              "Edit Association",
		"association":        association,
		"categories":         types.ActivityCategories,
		"selected":           selected,
		"freguesias":         types.Freguesias,
		"selectedFreguesias": selectedFreguesias,
	}))
}

func UpdateAssociation(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	association, ok := findAssociation(ctx)

	if !ok {
		return
	}

	if decision := authz.ManageAssociation(caller, association.ID); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var req AssociationFormRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please fill in the required fields correctly.")
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/association/%d/edit", association.ID))
		return
	}

	if err := services.UpdateAssociation(db.DB, association, req.input()); err != nil {
		log.Printf("Failed to update association: %v", err)
		flash.Set(ctx, "danger", "Could not update the association.")
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/association/%d/edit", association.ID))
		return
	}

	flash.Set(ctx, "success", "Association updated successfully!")

	if caller.IsAdmin {
		ctx.Redirect(http.StatusFound, "/admin/associations")
	} else {
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/association/%d/activities", association.ID))
	}
}

func DeleteAssociation(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	association, ok := findAssociation(ctx)

	if !ok {
		return
	}

	if decision := authz.DeleteAssociation(caller); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	if err := services.DeleteAssociationCascade(db.DB, association.ID); err != nil {
		log.Printf("Failed to delete association: %v", err)
		flash.Set(ctx, "danger", "Could not delete the association.")
		ctx.Redirect(http.StatusFound, "/admin/associations")
		return
	}

	flash.Set(ctx, "success", "Association deleted successfully!")
	ctx.Redirect(http.StatusFound, "/admin/associations")
}

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
	"github.com/accvalongo/associa/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EditUserRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password"`
}

type CreateAssociationUserRequest struct {
	Email         string `form:"email" binding:"required,email"`
	Password      string `form:"password" binding:"required"`
	AssociationID uint   `form:"association_id" binding:"required"`
}

func findUser(ctx *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.String(http.StatusNotFound, "User not found")
		return nil, false
	}

	var user models.User

	if err := db.DB.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.String(http.StatusNotFound, "User not found")
		} else {
			log.Printf("Failed to retrieve user: %v", err)
			ctx.String(http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}

	return &user, true
}

func requireAdmin(ctx *gin.Context) (authz.Caller, bool) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return authz.Caller{}, false
	}

	if decision := authz.ManageUsers(caller); !decision.Allowed {
		denied(ctx, decision)
		return authz.Caller{}, false
	}

	return caller, true
}

func ManageUsers(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	var users []models.User

	if err := db.DB.Preload("Association").Find(&users).Error; err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "manage_users.html", pageData(ctx, gin.H{
		"title": "Manage Users",
		"users": users,
	}))
}

func EditUser(ctx *gin.Context) {
	caller, ok := requireAdmin(ctx)

	if !ok {
		return
	}

	user, ok := findUser(ctx)

	if !ok {
		return
	}

	if decision := authz.TargetUser(caller, user.ID); !decision.Allowed {
		flash.Set(ctx, "warning", decision.Reason)
		ctx.Redirect(http.StatusFound, "/manage_users")
		return
	}

	ctx.HTML(http.StatusOK, "edit_user.html", pageData(ctx, gin.H{
		"title": "Edit User",
		"user":  user,
	}))
}

func UpdateUser(ctx *gin.Context) {
	caller, ok := requireAdmin(ctx)

	if !ok {
		return
	}

	user, ok := findUser(ctx)

	if !ok {
		return
	}

	if decision := authz.TargetUser(caller, user.ID); !decision.Allowed {
		flash.Set(ctx, "warning", decision.Reason)
		ctx.Redirect(http.StatusFound, "/manage_users")
		return
	}

	var req EditUserRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please enter a valid email.")
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/edit_user/%d", user.ID))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := services.UpdateUserCredentials(db.DB, user, email, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			flash.Set(ctx, "danger", "Could not update the user. The email may already be in use.")
		} else {
			log.Printf("Failed to update user: %v", err)
			flash.Set(ctx, "danger", "Could not update the user.")
		}
		ctx.Redirect(http.StatusFound, fmt.Sprintf("/edit_user/%d", user.ID))
		return
	}

	flash.Set(ctx, "success", fmt.Sprintf("User %s updated successfully!", email))
	ctx.Redirect(http.StatusFound, "/manage_users")
}

func DeleteUser(ctx *gin.Context) {
	caller, ok := requireAdmin(ctx)

	if !ok {
		return
	}

	user, ok := findUser(ctx)

	if !ok {
		return
	}

	if decision := authz.TargetUser(caller, user.ID); !decision.Allowed {
		flash.Set(ctx, "danger", decision.Reason)
		ctx.Redirect(http.StatusFound, "/manage_users")
		return
	}

	if err := services.DeleteUserCascade(db.DB, user.ID); err != nil {
		log.Printf("Failed to delete user: %v", err)
		flash.Set(ctx, "danger", "Could not delete the user.")
		ctx.Redirect(http.StatusFound, "/manage_users")
		return
	}

	flash.Set(ctx, "success", fmt.Sprintf("User %s deleted successfully!", user.Email))
	ctx.Redirect(http.StatusFound, "/manage_users")
}

func ShowCreateAssociationUser(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	var associations []models.Association

	if err := db.DB.Find(&associations).Error; err != nil {
		log.Printf("Failed to list associations: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "create_association_user.html", pageData(ctx, gin.H{
		"title":        "Create Association User",
		"associations": associations,
	}))
}

func CreateAssociationUser(ctx *gin.Context) {
	if _, ok := requireAdmin(ctx); !ok {
		return
	}

	var req CreateAssociationUserRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please fill in every field correctly.")
		ctx.Redirect(http.StatusFound, "/create_association_user")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := services.CreateAssociationUser(db.DB, email, req.Password, req.AssociationID)

	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateEmail):
			flash.Set(ctx, "danger", "This email is already in use.")
		case errors.Is(err, services.ErrAssociationNotFound):
			flash.Set(ctx, "danger", "Association not found.")
		case errors.Is(err, services.ErrAssociationHasUser):
			flash.Set(ctx, "warning", "This association already has a user account.")
		default:
			log.Printf("Failed to create association user: %v", err)
			flash.Set(ctx, "danger", "Could not create the user.")
		}
		ctx.Redirect(http.StatusFound, "/create_association_user")
		return
	}

	flash.Set(ctx, "success", fmt.Sprintf("User %s created successfully for the association!", user.Email))
	ctx.Redirect(http.StatusFound, "/admin/associations")
}

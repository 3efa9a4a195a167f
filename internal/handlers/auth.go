package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/accvalongo/associa/db"
	"github.com/accvalongo/associa/internal/auth"
	"github.com/accvalongo/associa/internal/authz"
	"github.com/accvalongo/associa/internal/flash"
	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/services"
	"github.com/accvalongo/associa/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

func Home(ctx *gin.Context) {
	if caller, err := utils.GetCurrentUser(ctx); err == nil {
		ctx.Redirect(http.StatusFound, homePath(caller))
		return
	}

	ctx.HTML(http.StatusOK, "home.html", pageData(ctx, gin.H{"title": "Home"}))
}

func ShowLogin(ctx *gin.Context) {
	if caller, err := utils.GetCurrentUser(ctx); err == nil {
		ctx.Redirect(http.StatusFound, homePath(caller))
		return
	}

	ctx.HTML(http.StatusOK, "login.html", pageData(ctx, gin.H{"title": "Login"}))
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please enter a valid email and password.")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User

	err := db.DB.Where("email = ?", email).First(&user).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Database error when fetching user: %v", err)
		}
		flash.Set(ctx, "danger", "Login failed. Please check your email and password.")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		flash.Set(ctx, "danger", "Login failed. Please check your email and password.")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := auth.GenerateSessionToken(user.ID, user.Email)

	if err != nil {
		log.Printf("Failed to generate session token: %v", err)
		flash.Set(ctx, "danger", "Login failed. Please try again.")
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	setSessionCookie(ctx, token)

	ctx.Redirect(http.StatusFound, homePath(authz.Caller{
		ID:            user.ID,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin,
		AssociationID: user.AssociationID,
	}))
}

func Logout(ctx *gin.Context) {
	clearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/")
}

func ShowRegister(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	if decision := authz.CreateAdmin(caller); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	ctx.HTML(http.StatusOK, "register.html", pageData(ctx, gin.H{"title": "Register Administrator"}))
}

func Register(ctx *gin.Context) {
	caller, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	if decision := authz.CreateAdmin(caller); !decision.Allowed {
		denied(ctx, decision)
		return
	}

	var req RegisterRequest

	if err := ctx.ShouldBind(&req); err != nil {
		flash.Set(ctx, "danger", "Please fill in every field; passwords need at least 8 characters.")
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	if req.Password != req.ConfirmPassword {
		flash.Set(ctx, "danger", "Passwords do not match.")
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := services.CreateAdminUser(db.DB, email, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			flash.Set(ctx, "danger", "Could not create the account. The email may already be in use.")
		} else {
			log.Printf("Failed to create admin user: %v", err)
			flash.Set(ctx, "danger", "Could not create the account.")
		}
		ctx.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Set(ctx, "success", "The administrator account was created successfully!")
	ctx.Redirect(http.StatusFound, "/manage_users")
}

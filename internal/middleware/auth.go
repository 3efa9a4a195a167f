package middleware

import (
	"net/http"

	"github.com/accvalongo/associa/db"
	"github.com/accvalongo/associa/internal/auth"
	"github.com/accvalongo/associa/internal/authz"
	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/types"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the login handler sets and this middleware
// reads.
const SessionCookieName = "token"

func resolveCaller(ctx *gin.Context) (authz.Caller, bool) {
	tokenString, err := ctx.Cookie(SessionCookieName)

	if err != nil || tokenString == "" {
		return authz.Caller{}, false
	}

	userID, err := auth.VerifySessionToken(tokenString)

	if err != nil {
		return authz.Caller{}, false
	}

	var user models.User

	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return authz.Caller{}, false
	}

	return authz.Caller{
		ID:            user.ID,
		Email:         user.Email,
		IsAdmin:       user.IsAdmin,
		AssociationID: user.AssociationID,
	}, true
}

// RequireAuth resolves the session cookie to a caller identity, redirecting
// anonymous requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		caller, ok := resolveCaller(ctx)

		if !ok {
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		ctx.Set(types.ContextUserKey, caller)
		ctx.Next()
	}
}

// OptionalAuth resolves the caller when a valid session exists but lets
// anonymous requests through. Used by the public pages that adapt to role.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if caller, ok := resolveCaller(ctx); ok {
			ctx.Set(types.ContextUserKey, caller)
		}

		ctx.Next()
	}
}

package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/accvalongo/associa/internal/authz"
	"github.com/accvalongo/associa/internal/flash"
	"github.com/accvalongo/associa/internal/utils"
	"github.com/gin-gonic/gin"
)

var (
	Domain = os.Getenv("DOMAIN")
)

func setSessionCookie(ctx *gin.Context, token string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Domain:   Domain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// homePath is the landing page for an authenticated caller: admins manage
// associations, association accounts manage their own activities.
func homePath(caller authz.Caller) string {
	if caller.IsAdmin {
		return "/admin/associations"
	}

	if caller.AssociationID != nil {
		return fmt.Sprintf("/association/%d/activities", *caller.AssociationID)
	}

	// Orphaned association account, nothing to manage.
	return "/logout"
}

// denied surfaces a gate denial as user feedback and sends the caller to a
// safe page, never a raw 403 body.
func denied(ctx *gin.Context, decision authz.Decision) {
	flash.Set(ctx, "danger", decision.Reason)
	ctx.Redirect(http.StatusFound, "/")
}

// pageData attaches any pending flash message to template data.
func pageData(ctx *gin.Context, data gin.H) gin.H {
	if message, ok := flash.Take(ctx); ok {
		data["flash"] = message
	}

	if caller, err := utils.GetCurrentUser(ctx); err == nil {
		data["caller"] = caller
	}

	return data
}

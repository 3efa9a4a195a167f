package utils

import (
	"fmt"

	"github.com/accvalongo/associa/internal/authz"
	"github.com/accvalongo/associa/internal/types"
	"github.com/gin-gonic/gin"
)

// GetCurrentUser returns the caller identity the auth middleware resolved
// for this request.
func GetCurrentUser(ctx *gin.Context) (authz.Caller, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return authz.Caller{}, fmt.Errorf("user not authenticated")
	}

	caller, ok := user.(authz.Caller)

	if !ok {
		return authz.Caller{}, fmt.Errorf("invalid user type in context")
	}

	return caller, nil
}

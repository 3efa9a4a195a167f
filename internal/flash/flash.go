// Package flash carries one-shot user feedback across a redirect, the way
// the form flow expects: set before redirecting, consumed by the next page
// render.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Message is a single piece of user feedback. Category is a presentation
// hint ("success", "danger", "warning").
type Message struct {
	Category string
	Text     string
}

func Set(ctx *gin.Context, category, text string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + text))

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// Take returns the pending message, if any, and clears it.
func Take(ctx *gin.Context) (Message, bool) {
	cookie, err := ctx.Request.Cookie(cookieName)

	if err != nil {
		return Message{}, false
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)

	if err != nil {
		return Message{}, false
	}

	category, text, found := strings.Cut(string(decoded), "|")

	if !found {
		return Message{}, false
	}

	return Message{Category: category, Text: text}, true
}

package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Set(ctx, "success", "Associação atualizada com sucesso!")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	w2 := httptest.NewRecorder()
	ctx2, _ := gin.CreateTestContext(w2)
	ctx2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx2.Request.AddCookie(cookies[0])

	message, ok := Take(ctx2)
	require.True(t, ok)
	assert.Equal(t, "success", message.Category)
	assert.Equal(t, "Associação atualizada com sucesso!", message.Text)

	// Take clears the cookie.
	cleared := w2.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestTakeWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := Take(ctx)
	assert.False(t, ok)
}

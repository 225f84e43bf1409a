//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the API and returns the access token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := map[string]any{
		"email":    email,
		"password": password,
	}
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var response struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	require.NotEmpty(t, response.AccessToken)
	return response.AccessToken
}

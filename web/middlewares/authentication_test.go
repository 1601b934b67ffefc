package middlewares

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendly.com/attendly/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "dGVzdC1zaWduaW5nLXNlY3JldC0wMTIzNDU2Nzg5"

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	secret, err := base64.StdEncoding.DecodeString(testSecret)
	assert.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	api.Use(Authentication(secret))
	api.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c), "admin": IsAdmin(c)})
	})

	admin := api.Group("")
	admin.Use(RequireAdmin())
	admin.GET("/admin-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	return r
}

func mintToken(t *testing.T, id int32, role string) string {
	t.Helper()
	token, err := security.CreateIdentityToken(&security.Identity{
		ID:         id,
		UniqueName: "tester",
		Email:      "tester@attendly.com",
		Role:       role,
	}, testSecret, 3600)
	assert.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticationMissingToken(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/api/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized")
}

func TestAuthenticationGarbageToken(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/api/whoami", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationMalformedHeader(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationValidToken(t *testing.T) {
	r := testRouter(t)

	w := doRequest(r, "/api/whoami", mintToken(t, 42, "user"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
	assert.Contains(t, w.Body.String(), `"admin":false`)
}

func TestAuthenticationWrongSecret(t *testing.T) {
	r := testRouter(t)

	otherSecret := base64.StdEncoding.EncodeToString([]byte("a-completely-different-secret"))
	token, err := security.CreateIdentityToken(&security.Identity{
		ID:   42,
		Role: "user",
	}, otherSecret, 3600)
	assert.NoError(t, err)

	w := doRequest(r, "/api/whoami", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := testRouter(t)

	t.Run("user role is forbidden", func(t *testing.T) {
		w := doRequest(r, "/api/admin-only", mintToken(t, 42, "user"))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})

	t.Run("admin role passes", func(t *testing.T) {
		w := doRequest(r, "/api/admin-only", mintToken(t, 7, "admin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

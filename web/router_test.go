package main

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendly.com/attendly/attendance/web/handlers/leave"
	"attendly.com/attendly/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "dGVzdC1zaWduaW5nLXNlY3JldC0wMTIzNDU2Nzg5"

// Auth and role rejections happen before any database access, so these
// run against a router with no database manager behind it.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	secret, err := base64.StdEncoding.DecodeString(testSecret)
	assert.NoError(t, err)

	return buildRouter(nil, secret, leave.Options{})
}

func TestPing(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestApiRequiresAuthentication(t *testing.T) {
	paths := []string{
		"/api/attendance/today",
		"/api/attendance/me",
		"/api/attendance",
		"/api/leave/me",
	}

	r := testRouter(t)
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
		})
	}
}

func TestAdminRoutesForbiddenForUsers(t *testing.T) {
	token, err := security.CreateIdentityToken(&security.Identity{
		ID:         42,
		UniqueName: "tester",
		Role:       "user",
	}, testSecret, 3600)
	assert.NoError(t, err)

	paths := []string{
		"/api/attendance",
		"/api/attendance/export",
		"/api/leave",
	}

	r := testRouter(t)
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"forbidden"`)
		})
	}
}

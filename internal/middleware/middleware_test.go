package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"moto_portal/internal/auth"
	"moto_portal/pkg/contextkeys"
)

type stubAuthorizer struct {
	valid string
}

func (s *stubAuthorizer) Login(ctx context.Context, password string) (*auth.Token, error) {
	return nil, auth.ErrInvalidCredentials
}

func (s *stubAuthorizer) Authorize(ctx context.Context, token string) (string, error) {
	if token != s.valid {
		return "", errors.New("bad token")
	}
	return auth.SubjectAdmin, nil
}

func newAdminRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/admin", AdminMiddleware(&stubAuthorizer{valid: "good"}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(contextkeys.AdminSubjectKey)))
	})
	return r
}

func TestAdminMiddleware(t *testing.T) {
	r := newAdminRouter()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
		{"valid", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, auth.SubjectAdmin, rec.Body.String())
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newAdminRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

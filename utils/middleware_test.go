package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeRoles struct {
	roles map[string]string
	err   error
}

func (f *fakeRoles) UserRole(_ context.Context, email string) (string, error) {
	return f.roles[email], f.err
}

func newTestRouter(t *testing.T, roles *fakeRoles) (*gin.Engine, *TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := NewTokenService("test-secret")
	g := NewGuard(tokens, roles)

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)}) }

	router := gin.New()
	router.GET("/open", ok)
	router.GET("/secure", g.Authenticated(), ok)
	router.GET("/admin", g.AdminOnly(ok)...)
	router.GET("/mine/:email", g.OwnEmail("email", ok)...)
	return router, tokens
}

func bearerFor(t *testing.T, tokens *TokenService, email string) string {
	t.Helper()
	token, err := tokens.Issue(map[string]interface{}{"email": email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func TestGuardMatrix(t *testing.T) {
	roles := &fakeRoles{roles: map[string]string{"boss@example.com": "admin"}}
	router, tokens := newTestRouter(t, roles)

	adminBearer := bearerFor(t, tokens, "boss@example.com")
	userBearer := bearerFor(t, tokens, "user1@example.com")

	tests := []struct {
		name   string
		path   string
		bearer string
		want   int
	}{
		{"no token on secure route", "/secure", "", http.StatusUnauthorized},
		{"malformed header", "/secure", "Token abc", http.StatusUnauthorized},
		{"garbage token", "/secure", "Bearer nope", http.StatusUnauthorized},
		{"valid token passes", "/secure", userBearer, http.StatusOK},
		{"admin route without token", "/admin", "", http.StatusUnauthorized},
		{"admin route as plain user", "/admin", userBearer, http.StatusForbidden},
		{"admin route as admin", "/admin", adminBearer, http.StatusOK},
		{"own email match", "/mine/user1@example.com", userBearer, http.StatusOK},
		{"own email mismatch", "/mine/user2@example.com", userBearer, http.StatusForbidden},
		{"identity guard without token", "/mine/user1@example.com", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.bearer != "" {
				req.Header.Set("Authorization", tt.bearer)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("%s %s: status = %d, want %d (body %s)", tt.bearer, tt.path, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestGuardUnknownUserIsForbidden(t *testing.T) {
	router, tokens := newTestRouter(t, &fakeRoles{roles: map[string]string{}})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "ghost@example.com"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestGuardRoleLookupFailure(t *testing.T) {
	router, tokens := newTestRouter(t, &fakeRoles{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "boss@example.com"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

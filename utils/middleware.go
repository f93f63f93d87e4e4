package utils

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the token guard stores the verified claim email.
const ContextEmailKey = "email"

// RoleFinder looks up the stored role for an email. Implemented by
// database.Store; an interface so guard tests run without a live database.
type RoleFinder interface {
	UserRole(ctx context.Context, email string) (string, error)
}

type Guard struct {
	tokens *TokenService
	users  RoleFinder
}

func NewGuard(tokens *TokenService, users RoleFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// Authenticated requires a valid bearer token and stores the claim email in
// the request context for downstream checks and handlers.
func (g *Guard) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		claims, err := g.tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		email, err := EmailFromClaims(claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AdminOnly wraps a handler in the token check followed by the role check.
// The role check is not exported on its own, so it can never be registered
// without an authenticated identity in the context.
func (g *Guard) AdminOnly(handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Authenticated(), g.requireAdmin(), handler}
}

// OwnEmail wraps a handler in the token check followed by an identity match
// against the named path parameter.
func (g *Guard) OwnEmail(param string, handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Authenticated(), g.matchEmailParam(param), handler}
}

func (g *Guard) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		role, err := g.users.UserRole(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user role"})
			c.Abort()
			return
		}
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (g *Guard) matchEmailParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != c.GetString(ContextEmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}
		c.Next()
	}
}

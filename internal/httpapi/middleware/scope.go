package middleware

import (
	"context"

	"dmthub/internal/scope"
	"dmthub/internal/service"

	"github.com/gin-gonic/gin"
)

const scopeKey = "disasterScope"

// SetScope stores a resolved scope on the request context.
func SetScope(c *gin.Context, sc scope.DisasterScope) {
	c.Set(scopeKey, sc)
}

// SessionReader is the reading side of the admin session store.
type SessionReader interface {
	Get(ctx context.Context, userID string) (scope.DisasterScope, error)
}

// AdminScope resolves the admin's working disaster from their session
// pointer. A missing or unreadable pointer leaves the zero scope on the
// context: scoped queries fail closed and return nothing until the admin
// switches to a disaster.
func AdminScope(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sc scope.DisasterScope
		if sessions != nil {
			sc, _ = sessions.Get(c.Request.Context(), c.GetString("userID"))
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// PublicScope resolves the globally active disaster for unauthenticated
// routes. Without one the scope stays empty and public pages render
// their placeholder state.
func PublicScope(disasters service.DisasterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sc scope.DisasterScope
		if d, err := disasters.GetActive(c.Request.Context()); err == nil && d != nil {
			sc = scope.DisasterScope{DisasterID: d.ID, Name: d.Name}
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFrom reads the resolved disaster scope off the request context.
func ScopeFrom(c *gin.Context) scope.DisasterScope {
	if v, exists := c.Get(scopeKey); exists {
		if sc, ok := v.(scope.DisasterScope); ok {
			return sc
		}
	}
	return scope.DisasterScope{}
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"meetgrid/internal/domain/meeting"
	"meetgrid/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role := meeting.Role(claims.Role)
		if !role.IsValid() {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unknown actor role",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, meeting.ActorRef{ID: claims.ActorID, Role: role})
		c.Set("jwt_claims", map[string]any{
			"actor_id": claims.ActorID.String(),
			"role":     claims.Role,
		})
		c.Next()
	}
}

// GetActor returns the authenticated role-tagged actor reference.
func GetActor(c *gin.Context) (meeting.ActorRef, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return meeting.ActorRef{}, false
	}

	actor, ok := v.(meeting.ActorRef)
	return actor, ok
}

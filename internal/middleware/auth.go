package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/auth"
	"roadtrip/internal/store"
)

// ContextUserID is the context key under which UserAuth stores the resolved
// subject id.
const ContextUserID = "userId"

// UserAuth is the single authorization gate: it strips the Bearer prefix,
// decodes the token and injects the user_id claim into the context. Every
// protected route runs through it before touching any store.
func UserAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			log.Println("[AUTH] [ERROR] missing token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Println("[AUTH] [ERROR] invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, err := tokens.Decode(parts[1])
		if err != nil {
			log.Println("[AUTH] [ERROR] token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		userID := auth.UserID(claims)
		if userID == "" {
			log.Println("[AUTH] [ERROR] user_id claim missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// RequireRole loads the resolved account and aborts unless its role matches.
// Runs after UserAuth.
func RequireRole(users store.UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			log.Println("[AUTH] [ERROR] role check lookup failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		if user.Role != role {
			log.Println("[AUTH] [ERROR] insufficient role for", user.Email)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

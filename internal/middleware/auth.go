package middleware

import (
	"net/http"
	"strings"

	"chequesaathi/config"
	"chequesaathi/internal/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func tokenFrom(c *gin.Context, cookieName string) string {
	if tok, err := c.Cookie(cookieName); err == nil && tok != "" {
		return tok
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthRequired reads the token from the session cookie or a Bearer header
// and stores the caller's identity on the context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFrom(c, cfg.CookieName)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication token is missing"})
			return
		}
		id, err := auth.ParseToken(cfg, tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired authentication token"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// Identity returns the authenticated caller (must be used after AuthRequired).
func Identity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// GetUserID returns the authenticated user ID, or "" outside AuthRequired.
func GetUserID(c *gin.Context) string {
	id, _ := Identity(c)
	return id.ID
}

// OptionalAuth records the caller's identity when a valid token is present
// and never rejects the request.
func OptionalAuth(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := tokenFrom(c, cfg.CookieName); tok != "" {
			if id, err := auth.ParseToken(cfg, tok); err == nil {
				c.Set(identityKey, id)
			}
		}
		c.Next()
	}
}

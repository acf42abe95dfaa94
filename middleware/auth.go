package middleware

import (
	"civicpulse/types"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the caller identity the upstream auth service resolved.
// Role validation itself happens upstream; unknown roles pass through and
// are treated as citizen downstream.
type Claims struct {
	Role types.Role `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates the Bearer token and puts the caller's ID and role into
// the gin context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// CallerID extracts the caller's user ID from the context.
func CallerID(c *gin.Context) string {
	userID, _ := c.Get("userID")
	id, _ := userID.(string)
	return id
}

// CallerRole extracts the caller's role from the context, defaulting to
// citizen when the claim is missing or malformed.
func CallerRole(c *gin.Context) types.Role {
	role, exists := c.Get("role")
	if !exists {
		return types.RoleCitizen
	}
	r, ok := role.(types.Role)
	if !ok {
		return types.RoleCitizen
	}
	return r
}

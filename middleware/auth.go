package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EkeminiThompson/ecommerce/utils"
)

const identityKey = "identity"

// RequireAuth verifies the bearer credential and attaches the resolved
// Identity to the request context. Verification is stateless: the token is
// self-contained, no session store is consulted.
func RequireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is required"})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format, must be 'Bearer <token>'"})
		return
	}

	identity, err := utils.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}

	c.Set(identityKey, identity)
	c.Next()
}

// RequireAdmin short-circuits the pipeline when the caller is not an admin.
// Must run after RequireAuth.
func RequireAdmin(c *gin.Context) {
	identity, ok := CallerIdentity(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}
	if !identity.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin privileges required"})
		return
	}
	c.Next()
}

// CallerIdentity returns the Identity set by RequireAuth.
func CallerIdentity(c *gin.Context) (utils.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return utils.Identity{}, false
	}
	identity, ok := v.(utils.Identity)
	return identity, ok
}

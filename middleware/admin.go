package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// RequireAdmin verifies the Bearer Firebase ID token and its "admin" custom
// claim before letting the request through. The decoded uid is stored in the
// context as "uid".
func RequireAdmin(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		idToken := strings.TrimPrefix(header, "Bearer ")
		if idToken == "" || idToken == header {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
			return
		}

		token, err := authClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or permission"})
			return
		}
		if isAdmin, _ := token.Claims["admin"].(bool); !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not admin"})
			return
		}

		c.Set("uid", token.UID)
		c.Next()
	}
}

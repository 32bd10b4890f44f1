package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleBuyer = "buyer"
	RoleAdmin = "admin"

	ctxBuyer = "buyer"
	ctxRole  = "role"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

func adminTokenOK(c *gin.Context, hash string) bool {
	token := c.GetHeader("X-Admin-Token")
	if token == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}

// RequireBuyer admits requests carrying a valid provider token and records
// the signed-in username on the context.
func RequireBuyer(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in to place an order"})
			return
		}
		c.Set(ctxBuyer, claims.Username)
		c.Set(ctxRole, RoleBuyer)
		c.Next()
	}
}

// RequireAdmin admits requests whose X-Admin-Token matches the configured
// bcrypt hash.
func RequireAdmin(hash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !adminTokenOK(c, hash) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin token required"})
			return
		}
		c.Set(ctxRole, RoleAdmin)
		c.Next()
	}
}

// Authenticate admits either credential. Routes shared by buyers and the
// admin console (order deletion) use it and branch on RoleFrom.
func Authenticate(v *Verifier, adminHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminTokenOK(c, adminHash) {
			c.Set(ctxRole, RoleAdmin)
			c.Next()
			return
		}
		claims, err := v.Verify(bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ctxBuyer, claims.Username)
		c.Set(ctxRole, RoleBuyer)
		c.Next()
	}
}

func BuyerFrom(c *gin.Context) string { return c.GetString(ctxBuyer) }

func RoleFrom(c *gin.Context) string { return c.GetString(ctxRole) }

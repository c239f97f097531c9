package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userNameKey = "userName"
	userRoleKey = "userRole"
)

// Authenticate parses a Bearer token when one is supplied and records the
// claimed identity in the context. Routes stay open; handlers that care can
// read UserName/UserRole. Invalid tokens are simply ignored.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "),
			func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				c.Set(userNameKey, sub)
			}
			if role, ok := claims["role"].(float64); ok {
				c.Set(userRoleKey, int(role))
			}
		}
		c.Next()
	}
}

// UserName returns the authenticated user name, empty when anonymous.
func UserName(c *gin.Context) string {
	return c.GetString(userNameKey)
}

// UserRole returns the authenticated role, zero when anonymous.
func UserRole(c *gin.Context) int {
	return c.GetInt(userRoleKey)
}

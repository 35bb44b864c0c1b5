package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pawsitiveapps/pet-scheduler/internal/config"
	"github.com/pawsitiveapps/pet-scheduler/internal/httperr"
)

// AdminKeyHeader carries the shared admin secret. Lookup is case-insensitive
// per HTTP, the value compare is exact.
const AdminKeyHeader = "x-admin-key"

// AdminGate protects catalog-management routes. It accepts either the raw
// shared key or a session token previously issued in exchange for that key.
// It never touches the repository.
func AdminGate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminKey == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.HTTPError{
				Code:    "server_misconfigured",
				Message: "Server misconfigured (missing ADMIN_KEY)",
			})
			return
		}

		if key := c.GetHeader(AdminKeyHeader); key != "" {
			if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.AdminKey)) == 1 {
				c.Next()
				return
			}
			unauthorized(c)
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.SessionSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Code:    "unauthorized",
		Message: "Unauthorized",
	})
}

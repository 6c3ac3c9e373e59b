package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/auth"
	"github.com/adiprasetyo/simpbb/internal/model"
)

const userKey = "simpbb.user"

// UserSource loads the account behind a verified token.
type UserSource interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

func abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}

// Auth verifies the bearer token and loads the account. Inactive or
// unverified accounts are rejected even with a valid token.
func Auth(parser *auth.Parser, users UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abort(c, "token tidak ditemukan")
			return
		}

		claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abort(c, "token tidak valid")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abort(c, "token tidak valid")
			return
		}
		if !user.IsActive {
			abort(c, "akun tidak aktif")
			return
		}
		if !user.IsVerified {
			abort(c, "akun belum terverifikasi")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin allows only admin accounts past this point. It must run
// after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := MustUser(c)
		if !ok {
			abort(c, "token tidak ditemukan")
			return
		}
		if user.Role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "hanya admin yang dapat mengakses",
			})
			return
		}
		c.Next()
	}
}

func MustUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

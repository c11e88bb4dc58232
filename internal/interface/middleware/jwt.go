package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snapfeed/snapfeed-api/pkg/helpers"
	"github.com/snapfeed/snapfeed-api/pkg/response"
)

const CtxUserIDKey = "userID"

// JWTAuth reads the bearer token from the Authorization header, validates
// it, and injects the numeric user id into the Gin context.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
			return
		}
		uid, err := claims.SubjectID()
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token subject", nil)
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWTAuth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserIDKey)
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

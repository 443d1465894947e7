package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-record-service/internal/infrastructure/jwt"
)

// CtxCreator is the gin context key for the caller identity every action is
// scoped by. The middleware guarantees a non-empty, trimmed, lower-cased
// value before any handler runs.
const CtxCreator = "creator"

func CreatorMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "i18n": "CREATOR_REQUIRED"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "i18n": "CREATOR_REQUIRED"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "i18n": "CREATOR_REQUIRED"},
			)
			return
		}

		creator := strings.ToLower(strings.TrimSpace(claims.Creator))
		if creator == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "i18n": "CREATOR_REQUIRED"},
			)
			return
		}

		c.Set(CtxCreator, creator)

		c.Next()
	}
}

package middleware

import (
	"strings"

	"moto_portal/internal/auth"
	"moto_portal/internal/logger"
	"moto_portal/pkg/apperrors"
	"moto_portal/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware пропускает только запросы с действующим токеном администратора
func AdminMiddleware(authorizer auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		subject, err := authorizer.Authorize(c.Request.Context(), tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Admin token rejected", "error", err)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(string(contextkeys.AdminSubjectKey), subject)
		c.Request = c.Request.WithContext(logger.WithSubject(c.Request.Context(), subject))
		c.Next()
	}
}

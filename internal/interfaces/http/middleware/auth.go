package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"paygate/internal/infrastructure/auth"
	"paygate/internal/shared/logger"
	"paygate/internal/shared/utils"
)

const AdminUsernameKey = "admin_username"

type AdminAuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAdminAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireAuth verifies the Bearer token on admin routes.
func (m *AdminAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify admin token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(AdminUsernameKey, claims.Username)
		c.Next()
	}
}

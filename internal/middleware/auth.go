package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/response"
	"github.com/talentra/hrm-backend/internal/service"
)

// ContextKeyCurrentUser is the Gin context key for the authenticated user.
const ContextKeyCurrentUser = "current_user"

// RequireAuth validates the bearer token from the Authorization header and
// resolves it to a user before the handler runs. Handlers read the result
// via CurrentUser instead of re-resolving the token.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.MsgUnauthenticated)
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.MsgUnauthenticated)
			return
		}

		c.Set(ContextKeyCurrentUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the Gin context.
func CurrentUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyCurrentUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

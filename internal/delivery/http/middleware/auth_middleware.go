package middleware

import (
	"strings"

	"leyenda/internal/delivery/http/response"
	"leyenda/internal/domain/entity"
	"leyenda/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo.Context key under which the authenticated caller
// is stored by Authenticate.
const principalKey = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the resulting
// Principal on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(principalKey, entity.Principal{
			UserID:  claims.UserID,
			Email:   claims.Email,
			IsAdmin: claims.IsAdmin,
		})

		return next(c)
	}
}

// RequireAdmin rejects callers whose token does not carry the admin flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: caller identity missing")
		}
		if !principal.IsAdmin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: administrator access required")
		}

		return next(c)
	}
}

// GetPrincipal returns the authenticated caller stored by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)

	return principal, ok
}

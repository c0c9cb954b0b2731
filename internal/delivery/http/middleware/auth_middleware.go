package middleware

import (
	"strings"

	deliverycontext "accounts/internal/delivery/context"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the access token.
//
// Tokens are issued on the wire as "JWT <token>"; the "Bearer" scheme is
// accepted as well for standard clients. All failures surface as the same
// token-invalid error through the error middleware.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is missing")
		}

		tokenString := extractToken(authHeader)
		if tokenString == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header has no recognized scheme")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
		}

		if claims.AccountID == uuid.Nil {
			return domainerrors.ErrTokenInvalid.WrapMessage("token carries no account id")
		}

		// Set account info on the context for handlers to use
		c.Set(string(deliverycontext.KeyAccountID), claims.AccountID)

		return next(c)
	}
}

func extractToken(authHeader string) string {
	for _, scheme := range []string{"JWT ", "Bearer "} {
		if trimmed := strings.TrimPrefix(authHeader, scheme); trimmed != authHeader {
			return trimmed
		}
	}

	return ""
}

// AccountID extracts the authenticated account ID set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(deliverycontext.KeyAccountID)).(uuid.UUID)

	return id, ok
}

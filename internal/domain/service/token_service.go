package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued tokens.
type Claims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating signed
// tokens. The signing secret is injected through configuration; the domain
// only requires that the account id be recoverable from an issued token.
type TokenService interface {
	// GenerateToken creates a signed token for the given account.
	GenerateToken(accountID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

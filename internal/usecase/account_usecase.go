// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create a new account.
type CreateAccountInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for an account holder to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable profile fields. Nil fields are left
// unchanged. A changed email must pass the same shape validation as at
// creation and is subject to the same uniqueness constraint.
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// --- Output DTOs ---

// CreateAccountOutput returns the newly created account and a session token.
type CreateAccountOutput struct {
	Account *entity.Account
	Token   string
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	Account *entity.Account
	Token   string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)
	DeactivateAccount(ctx context.Context, accountID uuid.UUID) error
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is
// not found among the non-deleted rows.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// All lookups operate on non-deleted accounts only; soft-deleted rows are
// invisible to every method except the audit trail in storage itself.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	// The comparison is case-sensitive, exactly as stored.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. Email uniqueness is enforced by the
	// storage layer's unique index, not by a check-then-insert.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// SoftDelete marks an account as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

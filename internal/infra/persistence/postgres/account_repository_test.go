package postgres

import (
	"testing"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Save writes every column of the model, so the domain-to-model mapper must
// carry the creation timestamp or an update would reset created_at to the
// zero time.
func TestFromAccountDomain_CarriesCreatedAt(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	account := &entity.Account{
		ID:             uuid.New(),
		Email:          "test@example.com",
		FirstName:      "John",
		LastName:       "Smith",
		CredentialHash: "stored_hash",
		CreatedAt:      createdAt,
	}

	accountM := fromAccountDomain(account)

	require.NotNil(t, accountM)
	assert.Equal(t, createdAt, accountM.CreatedAt)
	assert.False(t, accountM.CreatedAt.IsZero())
}

func TestAccountMappers_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	accountM := &model.AccountModel{
		ID:             uuid.New(),
		Email:          "test@example.com",
		FirstName:      "John",
		LastName:       "Smith",
		CredentialHash: "stored_hash",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	account := toAccountDomain(accountM)
	require.NotNil(t, account)
	assert.Equal(t, accountM.ID, account.ID)
	assert.Equal(t, accountM.Email, account.Email)
	assert.Equal(t, accountM.FirstName, account.FirstName)
	assert.Equal(t, accountM.LastName, account.LastName)
	assert.Equal(t, accountM.CredentialHash, account.CredentialHash)
	assert.Equal(t, accountM.CreatedAt, account.CreatedAt)
	assert.Equal(t, accountM.UpdatedAt, account.UpdatedAt)

	back := fromAccountDomain(account)
	require.NotNil(t, back)
	assert.Equal(t, accountM.ID, back.ID)
	assert.Equal(t, accountM.Email, back.Email)
	assert.Equal(t, accountM.CredentialHash, back.CredentialHash)
	assert.Equal(t, accountM.CreatedAt, back.CreatedAt)
}

func TestAccountMappers_NilSafe(t *testing.T) {
	assert.Nil(t, toAccountDomain(nil))
	assert.Nil(t, fromAccountDomain(nil))
}

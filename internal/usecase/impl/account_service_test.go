package impl

import (
	"context"
	"testing"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	mockRepo "accounts/internal/mocks/repository"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Email:     "test@example.com",
		Password:  "Password123!",
		FirstName: "jOHN",
		LastName:  "sMITH",
	}
	accountID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = accountID
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(accountID).Return("signed_token", nil)
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Return(nil)

	output, err := fx.service.CreateAccount(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, input.Email, output.Account.Email)
	assert.Equal(t, "John", output.Account.FirstName)
	assert.Equal(t, "Smith", output.Account.LastName)
	assert.Equal(t, "hashed_password", output.Account.CredentialHash)
}

func TestAccountService_CreateAccount_PublishesCreatedEvent(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Email:    "event@example.com",
		Password: "Password123!",
	}
	accountID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = accountID
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(accountID).Return("signed_token", nil)

	var published *service.AccountEvent
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Run(func(ctx context.Context, event *service.AccountEvent) {
			published = event
		}).
		Return(nil)

	_, err := fx.service.CreateAccount(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventAccountCreated, published.Type)
	assert.Equal(t, accountID.String(), published.AccountID)
	assert.Equal(t, input.Email, published.Email)
	assert.False(t, published.OccurredAt.IsZero())
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	account := &entity.Account{
		ID:             uuid.New(),
		Email:          input.Email,
		CredentialHash: "stored_hash",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, input.Email).Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.CredentialHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(account.ID).Return("signed_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.Token)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "test@example.com",
		FirstName: "John",
		LastName:  "Smith",
	}

	fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

	got, err := fx.service.GetProfile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_UpdateProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	firstName := "aLICE"
	input := &usecase.UpdateProfileInput{FirstName: &firstName}

	stored := &entity.Account{
		ID:        accountID,
		Email:     "test@example.com",
		FirstName: "John",
		LastName:  "Smith",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(stored, nil)
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, accountID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Smith", updated.LastName)
}

func TestAccountService_DeactivateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()
	stored := &entity.Account{
		ID:    accountID,
		Email: "test@example.com",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(stored, nil)
			mockAccountRepo.EXPECT().SoftDelete(ctx, accountID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	var published *service.AccountEvent
	fx.publisher.EXPECT().
		PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Run(func(ctx context.Context, event *service.AccountEvent) {
			published = event
		}).
		Return(nil)

	err := fx.service.DeactivateAccount(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, service.EventAccountDeleted, published.Type)
	assert.Equal(t, accountID.String(), published.AccountID)
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	validate     *validator.Validate
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount orchestrates the complete account creation process.
//
// The password is hashed before any storage work so the bcrypt cost is never
// paid inside a transaction. Email uniqueness is left to the storage layer's
// partial unique index; a concurrent duplicate surfaces as
// ErrEmailAlreadyRegistered from the repository.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.CreateAccountOutput, error) {
	srv.log(ctx).Info("Starting account creation", slog.String("email", input.Email))

	if err := srv.validateCreateInput(input); err != nil {
		srv.log(ctx).Warn("Account creation input rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during account creation", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during account creation")
	}

	account := &entity.Account{
		Email: input.Email,
	}
	account.SetFirstName(input.FirstName)
	account.SetLastName(input.LastName)
	account.SetCredentialHash(hashedPassword)

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	token, err := srv.tokenService.GenerateToken(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after account creation", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token after account creation")
	}

	srv.publishEvent(ctx, service.EventAccountCreated, account)

	srv.log(ctx).Debug("Account creation completed", slog.Any("accountID", account.ID))

	return &usecase.CreateAccountOutput{Account: account, Token: token}, nil
}

// Login verifies the submitted credentials and issues a token.
//
// Every failure path collapses into ErrInvalidCredentials: unknown email,
// wrong password, and an unverifiable stored hash are indistinguishable to
// the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed: email not registered", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no account for email")
		}
		srv.log(ctx).Error("Failed to look up account during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up account during login")
	}

	if !srv.hasher.Check(input.Password, account.CredentialHash) {
		srv.log(ctx).Warn("Login failed: credential mismatch", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("credential verification failed")
	}

	token, err := srv.tokenService.GenerateToken(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account, Token: token}, nil
}

// GetProfile loads the account behind the authenticated token.
func (srv *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account missing or deactivated")
		}

		return nil, errors.Wrap(err, "failed to load account profile")
	}

	return account, nil
}

// UpdateProfile applies the provided changes inside one transaction. Names
// pass through the same normalization as at creation time; a changed email is
// shape-validated here and duplicate-checked by the storage index on write.
func (srv *accountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("accountID", accountID))

	if input.Email != nil {
		if err := srv.validate.Var(*input.Email, "required,email"); err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("email address is malformed")
		}
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account missing or deactivated")
			}

			return errors.Wrap(err, "failed to load account for profile update")
		}

		if input.Email != nil {
			account.Email = *input.Email
		}
		if input.FirstName != nil {
			account.SetFirstName(*input.FirstName)
		}
		if input.LastName != nil {
			account.SetLastName(*input.LastName)
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist profile update")
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile update completed", slog.Any("accountID", accountID))

	return updated, nil
}

// DeactivateAccount soft-deletes the account. The row stays in storage with a
// deletion timestamp; the email immediately becomes available for a fresh
// registration.
func (srv *accountService) DeactivateAccount(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating account", slog.Any("accountID", accountID))

	var deactivated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account missing or already deactivated")
			}

			return errors.Wrap(err, "failed to load account for deactivation")
		}

		if err := accountRepo.SoftDelete(ctx, accountID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account missing or already deactivated")
			}

			return errors.Wrap(err, "failed to soft delete account")
		}

		deactivated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute deactivation transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return err
	}

	srv.publishEvent(ctx, service.EventAccountDeleted, deactivated)

	srv.log(ctx).Debug("Account deactivation completed", slog.Any("accountID", accountID))

	return nil
}

// validateCreateInput performs syntactic validation of the creation input.
// Name fields are free-form and only length-capped; the entity normalizes
// their casing later.
func (srv *accountService) validateCreateInput(input *usecase.CreateAccountInput) error {
	if err := srv.validate.Var(input.Email, "required,email"); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("email address is malformed")
	}
	if err := srv.validate.Var(input.Password, "required,min=8,max=72"); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("password must be between 8 and 72 characters")
	}
	if err := srv.validate.Var(input.FirstName, "max=100"); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("first name is too long")
	}
	if err := srv.validate.Var(input.LastName, "max=100"); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("last name is too long")
	}

	return nil
}

// publishEvent emits a lifecycle event on a best-effort basis. Publishing
// failures are logged and swallowed; the account mutation already committed.
func (srv *accountService) publishEvent(ctx context.Context, eventType string, account *entity.Account) {
	if srv.publisher == nil || account == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AccountID:  account.ID.String(),
		Email:      account.Email,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.Any("accountID", account.ID),
			slog.Any("error", err),
		)
	}
}

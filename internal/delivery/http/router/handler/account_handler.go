// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/response"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tokenScheme is the authorization scheme issued to clients.
const tokenScheme = "JWT "

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type createAccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// accountResponse is the public view of an account. The credential hash never
// appears here.
type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile accountResponse `json:"profile"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// CreateAccount handles the account creation request.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account creation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authResponse{
		Token:   tokenScheme + output.Token,
		Profile: toAccountResponse(output.Account),
	}, "Account created successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authResponse{
		Token:   tokenScheme + output.Token,
		Profile: toAccountResponse(output.Account),
	}, "Login successful")
}

// GetProfile returns the authenticated account's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("account id missing from context")
	}

	account, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "")
}

// UpdateProfile applies partial name changes to the authenticated account.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("account id missing from context")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	account, err := h.uc.UpdateProfile(c.Request().Context(), accountID, &usecase.UpdateProfileInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Profile updated successfully")
}

// DeactivateAccount soft-deletes the authenticated account.
func (h *AccountHandler) DeactivateAccount(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrTokenInvalid.WrapMessage("account id missing from context")
	}

	if err := h.uc.DeactivateAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deactivated"}, "Account deactivated successfully")
}

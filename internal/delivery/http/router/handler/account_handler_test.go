package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/validator"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	mockSvc "accounts/internal/mocks/service"
	mockUC "accounts/internal/mocks/usecase"
	"accounts/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	server   *echo.Echo
	uc       *mockUC.MockAccountUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestServer(t *testing.T) handlerFixtures {
	logger := newDiscardLogger()
	uc := mockUC.NewMockAccountUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	accountHandler := NewAccountHandler(uc, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e.POST("/accounts", accountHandler.CreateAccount)
	e.POST("/accounts/login", accountHandler.Login)

	authed := e.Group("/accounts")
	authed.Use(authMiddleware.Authenticate)
	authed.GET("/profile", accountHandler.GetProfile)
	authed.PUT("/profile", accountHandler.UpdateProfile)
	authed.DELETE("", accountHandler.DeactivateAccount)

	return handlerFixtures{server: e, uc: uc, tokenSvc: tokenSvc}
}

func doJSON(e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_CreateAccount_Success(t *testing.T) {
	fx := createTestServer(t)

	account := &entity.Account{
		ID:             uuid.New(),
		Email:          "test@example.com",
		FirstName:      "John",
		LastName:       "Smith",
		CredentialHash: "$2a$12$secret-material",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	fx.uc.EXPECT().
		CreateAccount(mock.Anything, mock.AnythingOfType("*usecase.CreateAccountInput")).
		Return(&usecase.CreateAccountOutput{Account: account, Token: "signed_token"}, nil)

	rec := doJSON(fx.server, http.MethodPost, "/accounts",
		`{"email":"test@example.com","password":"Password123!","first_name":"jOHN","last_name":"sMITH"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token   string `json:"token"`
			Profile struct {
				Email     string `json:"email"`
				FirstName string `json:"first_name"`
			} `json:"profile"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "JWT signed_token", resp.Data.Token)
	assert.Equal(t, "test@example.com", resp.Data.Profile.Email)
	assert.Equal(t, "John", resp.Data.Profile.FirstName)
	// The wire format names the payload field "profile".
	assert.Contains(t, rec.Body.String(), `"profile"`)

	// Credential material never leaves the service.
	assert.NotContains(t, rec.Body.String(), "secret-material")
	assert.NotContains(t, rec.Body.String(), "credential")
}

func TestAccountHandler_CreateAccount_MissingEmail(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodPost, "/accounts",
		`{"password":"Password123!"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_CreateAccount_DuplicateEmail(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		CreateAccount(mock.Anything, mock.AnythingOfType("*usecase.CreateAccountInput")).
		Return(nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

	rec := doJSON(fx.server, http.MethodPost, "/accounts",
		`{"email":"taken@example.com","password":"Password123!"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("credential verification failed"))

	rec := doJSON(fx.server, http.MethodPost, "/accounts/login",
		`{"email":"test@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAccountHandler_Login_InternalErrorIsOpaque(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, assert.AnError)

	rec := doJSON(fx.server, http.MethodPost, "/accounts/login",
		`{"email":"test@example.com","password":"Password123!"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Root cause text must not reach the client.
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestAccountHandler_GetProfile_Success(t *testing.T) {
	fx := createTestServer(t)

	accountID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid_token").Return(&service.Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: accountID.String(),
		},
	}, nil)
	fx.uc.EXPECT().GetProfile(mock.Anything, accountID).Return(&entity.Account{
		ID:    accountID,
		Email: "test@example.com",
	}, nil)

	rec := doJSON(fx.server, http.MethodGet, "/accounts/profile", "",
		map[string]string{"Authorization": "JWT valid_token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test@example.com")
}

func TestAccountHandler_GetProfile_BearerSchemeAccepted(t *testing.T) {
	fx := createTestServer(t)

	accountID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid_token").Return(&service.Claims{
		AccountID: accountID,
	}, nil)
	fx.uc.EXPECT().GetProfile(mock.Anything, accountID).Return(&entity.Account{
		ID:    accountID,
		Email: "test@example.com",
	}, nil)

	rec := doJSON(fx.server, http.MethodGet, "/accounts/profile", "",
		map[string]string{"Authorization": "Bearer valid_token"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_GetProfile_MissingToken(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.server, http.MethodGet, "/accounts/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAccountHandler_GetProfile_InvalidToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().ValidateToken("garbage").Return(nil, assert.AnError)

	rec := doJSON(fx.server, http.MethodGet, "/accounts/profile", "",
		map[string]string{"Authorization": "JWT garbage"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAccountHandler_DeactivateAccount_Success(t *testing.T) {
	fx := createTestServer(t)

	accountID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid_token").Return(&service.Claims{
		AccountID: accountID,
	}, nil)
	fx.uc.EXPECT().DeactivateAccount(mock.Anything, accountID).Return(nil)

	rec := doJSON(fx.server, http.MethodDelete, "/accounts", "",
		map[string]string{"Authorization": "JWT valid_token"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_UpdateProfile_Success(t *testing.T) {
	fx := createTestServer(t)

	accountID := uuid.New()
	fx.tokenSvc.EXPECT().ValidateToken("valid_token").Return(&service.Claims{
		AccountID: accountID,
	}, nil)
	fx.uc.EXPECT().
		UpdateProfile(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpdateProfileInput")).
		Return(&entity.Account{
			ID:        accountID,
			Email:     "test@example.com",
			FirstName: "Alice",
		}, nil)

	rec := doJSON(fx.server, http.MethodPut, "/accounts/profile",
		`{"first_name":"aLICE"}`,
		map[string]string{"Authorization": "JWT valid_token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alice")
}

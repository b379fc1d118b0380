package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dermengr/Currency/internal/apperrors"
	"github.com/dermengr/Currency/internal/core/domain"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyPairService ---
type MockCurrencyPairService struct {
	mock.Mock
}

func (m *MockCurrencyPairService) ListCurrencyPairs(ctx context.Context) ([]domain.CurrencyPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyPairService) CreateCurrencyPair(ctx context.Context, req dto.CreateCurrencyPairRequest, creatorUserID string) (*domain.CurrencyPair, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyPairService) UpdateCurrencyPair(ctx context.Context, pairID string, req dto.UpdateCurrencyPairRequest, updaterUserID string) (*domain.CurrencyPair, error) {
	args := m.Called(ctx, pairID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyPairService) DeleteCurrencyPair(ctx context.Context, pairID string) error {
	args := m.Called(ctx, pairID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CurrencyPairSvcFacade = (*MockCurrencyPairService)(nil)

func newPair(base, target, rate string) *domain.CurrencyPair {
	now := time.Now()
	adminID := uuid.NewString()
	return &domain.CurrencyPair{
		PairID:         uuid.NewString(),
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           decimal.RequireFromString(rate),
		LastUpdated:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}
}

// --- Test Suite ---
type CurrencyPairHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	mockPairService *MockCurrencyPairService
}

func (suite *CurrencyPairHandlerTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.mockPairService = new(MockCurrencyPairService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		User:         suite.mockUserService,
		CurrencyPair: suite.mockPairService,
	})
}

// authAs wires the middleware re-fetch for a user of the given role and
// returns the user plus a valid bearer token.
func (suite *CurrencyPairHandlerTestSuite) authAs(role domain.Role) (*domain.User, string) {
	user := newTestUser(role)
	suite.mockUserService.On("GetUserByID", mock.Anything, user.UserID).Return(user, nil)
	return user, signTestToken(suite.T(), user.UserID)
}

func (suite *CurrencyPairHandlerTestSuite) TestListCurrencyPairs_Success() {
	_, token := suite.authAs(domain.RoleUser)
	pairs := []domain.CurrencyPair{*newPair("EUR", "USD", "1.18"), *newPair("USD", "EUR", "0.85")}
	suite.mockPairService.On("ListCurrencyPairs", mock.Anything).Return(pairs, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/currency", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListCurrencyPairsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Require().Len(resp.Data, 2)
	suite.Equal("EUR", resp.Data[0].BaseCurrency)
	suite.Equal("USD", resp.Data[1].BaseCurrency)

	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestListCurrencyPairs_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/currency", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPairService.AssertNotCalled(suite.T(), "ListCurrencyPairs")
}

func (suite *CurrencyPairHandlerTestSuite) TestCreateCurrencyPair_AdminSuccess() {
	admin, token := suite.authAs(domain.RoleAdmin)
	created := newPair("USD", "EUR", "0.85")
	suite.mockPairService.On("CreateCurrencyPair", mock.Anything, mock.MatchedBy(func(req dto.CreateCurrencyPairRequest) bool {
		return req.BaseCurrency == "usd" && req.TargetCurrency == "eur" && req.Rate.Equal(decimal.RequireFromString("0.85"))
	}), admin.UserID).Return(created, nil).Once()

	// Lowercase codes on the wire; the service normalizes them.
	body := jsonBody(suite.T(), map[string]any{
		"baseCurrency":   "usd",
		"targetCurrency": "eur",
		"rate":           0.85,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/currency", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.SingleCurrencyPairResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(created.PairID, resp.Data.PairID)
	suite.Equal("USD", resp.Data.BaseCurrency)
	suite.Equal("EUR", resp.Data.TargetCurrency)

	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestCreateCurrencyPair_NonAdminForbidden() {
	_, token := suite.authAs(domain.RoleUser)

	body := jsonBody(suite.T(), map[string]any{
		"baseCurrency":   "USD",
		"targetCurrency": "EUR",
		"rate":           0.85,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/currency", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Admin access required", resp.Message)

	// A valid payload never reaches the service without the admin role.
	suite.mockPairService.AssertNotCalled(suite.T(), "CreateCurrencyPair")
}

func (suite *CurrencyPairHandlerTestSuite) TestCreateCurrencyPair_Duplicate() {
	_, token := suite.authAs(domain.RoleAdmin)
	suite.mockPairService.On("CreateCurrencyPair", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: currency pair USD/EUR already exists", apperrors.ErrDuplicate)).Once()

	body := jsonBody(suite.T(), map[string]any{
		"baseCurrency":   "USD",
		"targetCurrency": "EUR",
		"rate":           0.9,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/currency", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Currency pair already exists", resp.Message)

	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestCreateCurrencyPair_InvalidRate() {
	_, token := suite.authAs(domain.RoleAdmin)
	suite.mockPairService.On("CreateCurrencyPair", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: rate must be a positive number", apperrors.ErrValidation)).Once()

	body := jsonBody(suite.T(), map[string]any{
		"baseCurrency":   "USD",
		"targetCurrency": "EUR",
		"rate":           -2,
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/currency", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestUpdateCurrencyPair_AdminSuccess() {
	admin, token := suite.authAs(domain.RoleAdmin)
	updated := newPair("USD", "EUR", "0.91")
	suite.mockPairService.On("UpdateCurrencyPair", mock.Anything, updated.PairID, mock.MatchedBy(func(req dto.UpdateCurrencyPairRequest) bool {
		return req.Rate.Equal(decimal.RequireFromString("0.91")) && req.BaseCurrency == "" && req.TargetCurrency == ""
	}), admin.UserID).Return(updated, nil).Once()

	body := jsonBody(suite.T(), map[string]any{"rate": 0.91})
	req, _ := http.NewRequest(http.MethodPut, "/api/currency/"+updated.PairID, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SingleCurrencyPairResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.True(resp.Data.Rate.Equal(decimal.RequireFromString("0.91")))

	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestUpdateCurrencyPair_NotFound() {
	_, token := suite.authAs(domain.RoleAdmin)
	missingID := uuid.NewString()
	suite.mockPairService.On("UpdateCurrencyPair", mock.Anything, missingID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to find currency pair for update: %w", apperrors.ErrNotFound)).Once()

	body := jsonBody(suite.T(), map[string]any{"rate": 0.91})
	req, _ := http.NewRequest(http.MethodPut, "/api/currency/"+missingID, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Currency pair not found", resp.Message)

	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestUpdateCurrencyPair_NonAdminForbidden() {
	_, token := suite.authAs(domain.RoleUser)

	body := jsonBody(suite.T(), map[string]any{"rate": 0.91})
	req, _ := http.NewRequest(http.MethodPut, "/api/currency/"+uuid.NewString(), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPairService.AssertNotCalled(suite.T(), "UpdateCurrencyPair")
}

func (suite *CurrencyPairHandlerTestSuite) TestDeleteCurrencyPair_AdminSuccess() {
	_, token := suite.authAs(domain.RoleAdmin)
	pairID := uuid.NewString()
	suite.mockPairService.On("DeleteCurrencyPair", mock.Anything, pairID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/currency/"+pairID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal("Currency pair deleted successfully", resp.Message)

	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestDeleteCurrencyPair_NotFound() {
	_, token := suite.authAs(domain.RoleAdmin)
	missingID := uuid.NewString()
	suite.mockPairService.On("DeleteCurrencyPair", mock.Anything, missingID).
		Return(fmt.Errorf("currency pair %s: %w", missingID, apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/currency/"+missingID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPairService.AssertExpectations(suite.T())
}

func (suite *CurrencyPairHandlerTestSuite) TestDeleteCurrencyPair_NonAdminForbidden() {
	_, token := suite.authAs(domain.RoleUser)

	req, _ := http.NewRequest(http.MethodDelete, "/api/currency/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPairService.AssertNotCalled(suite.T(), "DeleteCurrencyPair")
}

// --- Run Test Suite ---
func TestCurrencyPairHandler(t *testing.T) {
	suite.Run(t, new(CurrencyPairHandlerTestSuite))
}

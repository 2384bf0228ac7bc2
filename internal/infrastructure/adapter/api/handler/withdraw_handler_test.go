package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/timelocked/vault-service/internal/domain/entity"
	errs "github.com/timelocked/vault-service/internal/domain/error"
	"github.com/timelocked/vault-service/internal/domain/port/usecase"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/api/dto"
	mockcore "github.com/timelocked/vault-service/mocks/port/core"
	mockusecase "github.com/timelocked/vault-service/mocks/port/usecase"
)

// newWithdrawTestRouter wires the handler into a bare test engine
func newWithdrawTestRouter(h *WithdrawHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/vault/:vaultId/withdraw", h.ProcessWithdraw)
	router.GET("/vault/:vaultId/withdrawals", h.ListWithdrawals)
	return router
}

func TestWithdrawHandler_ProcessWithdraw(t *testing.T) {
	t.Run("should process a withdrawal and return 200", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		mockVaultUseCase.On("VaultExists", mock.Anything, "vault-1").Return(true, nil)
		mockWithdrawUseCase.On("Withdraw", mock.Anything, "vault-1", usecase.WithdrawRequest{Caller: "0xowner"}).
			Return(&usecase.WithdrawResult{
				Success:       true,
				WithdrawalID:  "wd-1",
				Amount:        "100.50",
				ResultBalance: "0.00",
				StatusCode:    http.StatusOK,
			}, nil)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/vault-1/withdraw", nil)
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.WithdrawResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "wd-1", resp.WithdrawalID)
		assert.Equal(t, "vault-1", resp.VaultID)
		assert.Equal(t, "100.50", resp.Amount)
		assert.Equal(t, "0.00", resp.ResultBalance)

		mockWithdrawUseCase.AssertExpectations(t)
		mockVaultUseCase.AssertExpectations(t)
	})

	t.Run("should return 400 when the caller header is missing", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Missing X-Caller-Address header", mock.Anything).Return()

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/vault-1/withdraw", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockVaultUseCase.AssertNotCalled(t, "VaultExists")
		mockWithdrawUseCase.AssertNotCalled(t, "Withdraw")
	})

	t.Run("should return 404 when the vault does not exist", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		mockVaultUseCase.On("VaultExists", mock.Anything, "missing").Return(false, nil)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/missing/withdraw", nil)
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeVaultNotFound, resp.Code)

		mockWithdrawUseCase.AssertNotCalled(t, "Withdraw")
	})

	t.Run("should relay 423 when the vault is still locked", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		mockVaultUseCase.On("VaultExists", mock.Anything, "vault-1").Return(true, nil)
		mockWithdrawUseCase.On("Withdraw", mock.Anything, "vault-1", usecase.WithdrawRequest{Caller: "0xowner"}).
			Return(&usecase.WithdrawResult{
				Success:      false,
				ErrorMessage: "unlock time has not been reached yet",
				StatusCode:   http.StatusLocked,
			}, errs.ErrTooEarly)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/vault-1/withdraw", nil)
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusLocked, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeTooEarly, resp.Code)
		assert.Equal(t, "unlock time has not been reached yet", resp.Message)
	})

	t.Run("should relay 403 when the caller is not the owner", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		mockVaultUseCase.On("VaultExists", mock.Anything, "vault-1").Return(true, nil)
		mockWithdrawUseCase.On("Withdraw", mock.Anything, "vault-1", usecase.WithdrawRequest{Caller: "0xstranger"}).
			Return(&usecase.WithdrawResult{
				Success:      false,
				ErrorMessage: "caller is not the vault owner",
				StatusCode:   http.StatusForbidden,
			}, errs.ErrNotOwner)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/vault-1/withdraw", nil)
		req.Header.Set("X-Caller-Address", "0xstranger")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeNotOwner, resp.Code)
	})

	t.Run("should relay 409 when the vault is busy", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		mockVaultUseCase.On("VaultExists", mock.Anything, "vault-1").Return(true, nil)
		mockWithdrawUseCase.On("Withdraw", mock.Anything, "vault-1", usecase.WithdrawRequest{Caller: "0xowner"}).
			Return(&usecase.WithdrawResult{
				Success:      false,
				ErrorMessage: "vault is busy with another operation",
				StatusCode:   http.StatusConflict,
			}, errs.ErrVaultBusy)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/vault-1/withdraw", nil)
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeVaultBusy, resp.Code)
	})

	t.Run("should return 500 when the existence check fails", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error checking vault existence", mock.Anything).Return()

		mockVaultUseCase.On("VaultExists", mock.Anything, "vault-1").
			Return(false, errs.ErrDatabaseConnection)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault/vault-1/withdraw", nil)
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockWithdrawUseCase.AssertNotCalled(t, "Withdraw")
	})
}

func TestWithdrawHandler_ListWithdrawals(t *testing.T) {
	t.Run("should return the withdrawal history", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		processedAt := createdAt.Add(time.Second)

		withdrawals := []*entity.Withdrawal{
			{
				WithdrawalID:  "wd-2",
				VaultID:       "vault-1",
				Recipient:     "0xowner",
				Amount:        "0.00",
				AmountInCents: 0,
				CreatedAt:     createdAt.Add(time.Minute),
				ResultBalance: "0.00",
				Status:        entity.StatusCompleted,
			},
			{
				WithdrawalID:  "wd-1",
				VaultID:       "vault-1",
				Recipient:     "0xowner",
				Amount:        "100.50",
				AmountInCents: 10050,
				CreatedAt:     createdAt,
				ProcessedAt:   &processedAt,
				ResultBalance: "0.00",
				Status:        entity.StatusCompleted,
			},
		}
		mockWithdrawUseCase.On("ListWithdrawals", mock.Anything, "vault-1").Return(withdrawals, nil)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodGet, "/vault/vault-1/withdrawals", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.WithdrawalListResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "vault-1", resp.VaultID)
		assert.Len(t, resp.Withdrawals, 2)

		// Newest first, as the use case returns them
		assert.Equal(t, "wd-2", resp.Withdrawals[0].WithdrawalID)
		assert.Nil(t, resp.Withdrawals[0].ProcessedAt)
		assert.Equal(t, "wd-1", resp.Withdrawals[1].WithdrawalID)
		assert.NotNil(t, resp.Withdrawals[1].ProcessedAt)
		assert.Equal(t, processedAt.Unix(), *resp.Withdrawals[1].ProcessedAt)

		mockWithdrawUseCase.AssertExpectations(t)
	})

	t.Run("should return an empty list for a vault with no withdrawals", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		mockWithdrawUseCase.On("ListWithdrawals", mock.Anything, "vault-1").
			Return([]*entity.Withdrawal{}, nil)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodGet, "/vault/vault-1/withdrawals", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.WithdrawalListResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Withdrawals)
	})

	t.Run("should return 404 when the vault does not exist", func(t *testing.T) {
		// Arrange
		mockWithdrawUseCase := new(mockusecase.MockWithdrawUseCase)
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error listing withdrawals", mock.Anything).Return()

		mockWithdrawUseCase.On("ListWithdrawals", mock.Anything, "missing").
			Return(nil, errs.ErrVaultNotFound)

		router := newWithdrawTestRouter(NewWithdrawHandler(mockWithdrawUseCase, mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodGet, "/vault/missing/withdrawals", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeVaultNotFound, resp.Code)
	})
}

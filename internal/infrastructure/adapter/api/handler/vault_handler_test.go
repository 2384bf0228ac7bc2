package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
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

// newVaultTestRouter wires the handler into a bare test engine
func newVaultTestRouter(h *VaultHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/vault", h.DeployVault)
	router.GET("/vault/:vaultId", h.GetVaultStatus)
	return router
}

func TestVaultHandler_DeployVault(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	unlockTime := createdAt.Add(24 * time.Hour)

	t.Run("should deploy a vault and return 201", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		vault := entity.RestoreVault("vault-1", "0xowner", unlockTime, 10050, createdAt, createdAt, 0)
		mockVaultUseCase.On("DeployVault", mock.Anything, "0xowner", unlockTime.Unix(), "100.50").
			Return(vault, nil)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		body, _ := json.Marshal(dto.DeployVaultRequest{
			UnlockTime:    unlockTime.Unix(),
			InitialAmount: "100.50",
		})
		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.DeployVaultResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "vault-1", resp.VaultID)
		assert.Equal(t, "0xowner", resp.Owner)
		assert.Equal(t, unlockTime.Unix(), resp.UnlockTime)
		assert.Equal(t, "100.50", resp.Balance)

		mockVaultUseCase.AssertExpectations(t)
	})

	t.Run("should default to a zero amount when none is provided", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		vault := entity.RestoreVault("vault-2", "0xowner", unlockTime, 0, createdAt, createdAt, 0)
		mockVaultUseCase.On("DeployVault", mock.Anything, "0xowner", unlockTime.Unix(), "0.00").
			Return(vault, nil)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		body := fmt.Sprintf(`{"unlockTime": %d}`, unlockTime.Unix())
		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.DeployVaultResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0.00", resp.Balance)

		mockVaultUseCase.AssertExpectations(t)
	})

	t.Run("should return 400 when the caller header is missing", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Missing X-Caller-Address header", mock.Anything).Return()

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		body, _ := json.Marshal(dto.DeployVaultRequest{UnlockTime: unlockTime.Unix()})
		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.ErrorCode(errs.ErrInvalidRequest), resp.Code)

		mockVaultUseCase.AssertNotCalled(t, "DeployVault")
	})

	t.Run("should return 400 on a malformed body", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Invalid deploy request format", mock.Anything).Return()

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader([]byte(`{"unlockTime": "not-a-number"}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockVaultUseCase.AssertNotCalled(t, "DeployVault")
	})

	t.Run("should return 400 when the unlock time is not in the future", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error deploying vault", mock.Anything).Return()

		mockVaultUseCase.On("DeployVault", mock.Anything, "0xowner", mock.AnythingOfType("int64"), "0.00").
			Return(nil, errs.ErrInvalidUnlockTime)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		body, _ := json.Marshal(dto.DeployVaultRequest{UnlockTime: createdAt.Unix()})
		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInvalidUnlockTime, resp.Code)

		mockVaultUseCase.AssertExpectations(t)
	})

	t.Run("should return 409 on a duplicate vault reference", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error deploying vault", mock.Anything).Return()

		mockVaultUseCase.On("DeployVault", mock.Anything, "0xowner", unlockTime.Unix(), "5.00").
			Return(nil, errs.ErrDuplicateVault)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		body, _ := json.Marshal(dto.DeployVaultRequest{
			UnlockTime:    unlockTime.Unix(),
			InitialAmount: "5.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeDuplicateVault, resp.Code)
	})

	t.Run("should return 500 on an unexpected error", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error deploying vault", mock.Anything).Return()

		mockVaultUseCase.On("DeployVault", mock.Anything, "0xowner", unlockTime.Unix(), "5.00").
			Return(nil, errs.ErrDatabaseConnection)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		body, _ := json.Marshal(dto.DeployVaultRequest{
			UnlockTime:    unlockTime.Unix(),
			InitialAmount: "5.00",
		})
		req := httptest.NewRequest(http.MethodPost, "/vault", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Caller-Address", "0xowner")
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestVaultHandler_GetVaultStatus(t *testing.T) {
	t.Run("should return the vault status", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)

		status := &usecase.VaultStatusResponse{
			VaultID:    "vault-1",
			Owner:      "0xowner",
			UnlockTime: 1714564800,
			Balance:    "100.50",
			Unlocked:   false,
		}
		mockVaultUseCase.On("GetVaultStatus", mock.Anything, "vault-1").Return(status, nil)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodGet, "/vault/vault-1", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.VaultStatusResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "vault-1", resp.VaultID)
		assert.Equal(t, "0xowner", resp.Owner)
		assert.Equal(t, int64(1714564800), resp.UnlockTime)
		assert.Equal(t, "100.50", resp.Balance)
		assert.False(t, resp.Unlocked)

		mockVaultUseCase.AssertExpectations(t)
	})

	t.Run("should return 404 when the vault does not exist", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error getting vault status", mock.Anything).Return()

		mockVaultUseCase.On("GetVaultStatus", mock.Anything, "missing").
			Return(nil, errs.ErrVaultNotFound)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodGet, "/vault/missing", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeVaultNotFound, resp.Code)
	})

	t.Run("should return 500 on a repository failure", func(t *testing.T) {
		// Arrange
		mockVaultUseCase := new(mockusecase.MockVaultUseCase)
		mockLogger := new(mockcore.MockLogger)
		mockLogger.On("Error", "Error getting vault status", mock.Anything).Return()

		mockVaultUseCase.On("GetVaultStatus", mock.Anything, "vault-1").
			Return(nil, errs.ErrDatabaseConnection)

		router := newVaultTestRouter(NewVaultHandler(mockVaultUseCase, mockLogger))

		req := httptest.NewRequest(http.MethodGet, "/vault/vault-1", nil)
		w := httptest.NewRecorder()

		// Act
		router.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

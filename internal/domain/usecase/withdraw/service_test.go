package withdraw

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/timelocked/vault-service/internal/domain/entity"
	domainerrs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	portuse "github.com/timelocked/vault-service/internal/domain/port/usecase"
	mcore "github.com/timelocked/vault-service/mocks/port/core"
	mpers "github.com/timelocked/vault-service/mocks/port/persistence"
	muse "github.com/timelocked/vault-service/mocks/port/usecase"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Key for transaction context
const txKey contextKey = "tx"

// newServiceForTest wires a Service from the given mocks with test-friendly
// lock timeout and queue size
func newServiceForTest(
	uow *mpers.MockUnitOfWork,
	lockRepo *mpers.MockVaultLockRepository,
	vaultUseCase *muse.MockVaultUseCase,
	timeProvider *mcore.MockTimeProvider,
	logger *mcore.MockLogger,
) *Service {
	return NewWithdrawService(
		uow,
		lockRepo,
		vaultUseCase,
		timeProvider,
		logger,
		5*time.Second, // lockTimeout
		10,            // queueSize
	)
}

func TestWithdraw(t *testing.T) {
	// Setup common test fixtures
	ctx := context.Background()
	vaultID := "vault-12345"
	owner := "0xOWNER"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deployedAt := now.Add(-24 * time.Hour)
	pastUnlock := now.Add(-1 * time.Hour)
	futureUnlock := now.Add(1 * time.Hour)

	tests := []struct {
		name               string
		req                portuse.WithdrawRequest
		setupMocks         func(*mpers.MockUnitOfWork, *muse.MockVaultUseCase, *mpers.MockVaultLockRepository, *mpers.MockVaultRepository, *mpers.MockWithdrawalRepository, *mcore.MockTimeProvider, *mcore.MockLogger)
		expectedSuccess    bool
		expectedStatusCode int
		expectedError      error
	}{
		{
			name: "Successful Withdrawal By Owner",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				// Setup for the existence pre-check
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				// Setup for the advisory lock
				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				// Setup for the database transaction
				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Commit", txCtx).Return(nil)

				// The vault is unlocked and still funded
				vault := entity.RestoreVault(vaultID, owner, pastUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)
				vaultRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Vault")).Return(nil)

				// The receipt is recorded in the same transaction
				wdRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Withdrawal")).Return(nil)

				// Clock and logging
				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    true,
			expectedStatusCode: http.StatusOK,
			expectedError:      nil,
		},
		{
			name: "Successful Withdrawal With Padded Caller",
			req:  portuse.WithdrawRequest{Caller: "  " + owner + "  "},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Commit", txCtx).Return(nil)

				// The caller identity is trimmed before the ownership check,
				// so the padded caller must still match the owner
				vault := entity.RestoreVault(vaultID, owner, pastUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)
				vaultRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Vault")).Return(nil)

				wdRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Withdrawal")).Return(nil)

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    true,
			expectedStatusCode: http.StatusOK,
			expectedError:      nil,
		},
		{
			name: "Withdrawal Before Unlock Time",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Rollback", txCtx).Return(nil)

				// The vault is still locked
				vault := entity.RestoreVault(vaultID, owner, futureUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusLocked,
			expectedError:      domainerrs.NewTooEarlyError(vaultID, time.Time{}, time.Time{}),
		},
		{
			name: "Stranger Before Unlock Time Gets Too Early Not Forbidden",
			req:  portuse.WithdrawRequest{Caller: "0xINTRUDER"},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Rollback", txCtx).Return(nil)

				// Locked vault, wrong caller: the time gate answers first
				vault := entity.RestoreVault(vaultID, owner, futureUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusLocked,
			expectedError:      domainerrs.NewTooEarlyError(vaultID, time.Time{}, time.Time{}),
		},
		{
			name: "Stranger After Unlock Time Gets Not Owner",
			req:  portuse.WithdrawRequest{Caller: "0xINTRUDER"},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Rollback", txCtx).Return(nil)

				vault := entity.RestoreVault(vaultID, owner, pastUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusForbidden,
			expectedError:      domainerrs.NewNotOwnerError(vaultID, "0xINTRUDER", owner),
		},
		{
			name: "Vault Not Found",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				// The existence pre-check fails before any lock or queue work
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(false, nil)

				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusNotFound,
			expectedError:      domainerrs.ErrVaultNotFound,
		},
		{
			name: "Existence Check Failure",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(false, errors.New("database error"))

				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      errors.New("database error"),
		},
		{
			name: "Lock Acquisition Failure",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				// Another operation holds the vault
				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(domainerrs.ErrVaultBusy)

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusConflict,
			expectedError:      domainerrs.ErrVaultBusy,
		},
		{
			name: "Vault Fetch Failure",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Rollback", txCtx).Return(nil)

				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(nil, errors.New("database error"))

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      errors.New("database error"),
		},
		{
			name: "Vault Persist Failure Rolls Back",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Rollback", txCtx).Return(nil)

				vault := entity.RestoreVault(vaultID, owner, pastUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)
				vaultRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Vault")).Return(errors.New("update failed"))

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      &domainerrs.WithdrawError{},
		},
		{
			name: "Receipt Persist Failure Rolls Back",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Rollback", txCtx).Return(nil)

				vault := entity.RestoreVault(vaultID, owner, pastUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)
				vaultRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Vault")).Return(nil)

				wdRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Withdrawal")).Return(errors.New("insert failed"))

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      &domainerrs.WithdrawError{},
		},
		{
			name: "Commit Failure",
			req:  portuse.WithdrawRequest{Caller: owner},
			setupMocks: func(uow *mpers.MockUnitOfWork, vaultUseCase *muse.MockVaultUseCase, lockRepo *mpers.MockVaultLockRepository, vaultRepo *mpers.MockVaultRepository, wdRepo *mpers.MockWithdrawalRepository, timeProvider *mcore.MockTimeProvider, logger *mcore.MockLogger) {
				vaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)

				lockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
				lockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

				txCtx := context.WithValue(ctx, txKey, "mockTransaction")
				uow.On("Begin", mock.Anything).Return(txCtx, nil)
				uow.On("GetVaultRepository", txCtx).Return(vaultRepo)
				uow.On("GetWithdrawalRepository", txCtx).Return(wdRepo)
				uow.On("Commit", txCtx).Return(errors.New("commit failed"))

				vault := entity.RestoreVault(vaultID, owner, pastUnlock, 15050, deployedAt, deployedAt, 0)
				vaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)
				vaultRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Vault")).Return(nil)

				wdRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Withdrawal")).Return(nil)

				timeProvider.On("Now").Return(now).Maybe()
				timeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
				timeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
				logger.On("Info", mock.Anything, mock.Anything).Maybe()
				logger.On("Error", mock.Anything, mock.Anything).Maybe()
				logger.On("Warn", mock.Anything, mock.Anything).Maybe()
				logger.On("Debug", mock.Anything, mock.Anything).Maybe()
			},
			expectedSuccess:    false,
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      errors.New("commit failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mocks
			mockUow := new(mpers.MockUnitOfWork)
			mockVaultUseCase := new(muse.MockVaultUseCase)
			mockLockRepo := new(mpers.MockVaultLockRepository)
			mockVaultRepo := new(mpers.MockVaultRepository)
			mockWdRepo := new(mpers.MockWithdrawalRepository)
			mockTimeProvider := new(mcore.MockTimeProvider)
			mockLogger := new(mcore.MockLogger)

			// Configure mocks
			tt.setupMocks(mockUow, mockVaultUseCase, mockLockRepo, mockVaultRepo, mockWdRepo, mockTimeProvider, mockLogger)

			// Create service
			service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
			defer service.Shutdown()

			// Call the method
			result, err := service.Withdraw(ctx, vaultID, tt.req)

			// Assert expected behavior
			if tt.expectedError != nil {
				assert.Error(t, err)
				if _, ok := tt.expectedError.(*domainerrs.TooEarlyError); ok {
					assert.True(t, domainerrs.IsTooEarlyError(err))
					var tooEarly *domainerrs.TooEarlyError
					if assert.ErrorAs(t, err, &tooEarly) {
						assert.Equal(t, vaultID, tooEarly.VaultID)
					}
				} else if expected, ok := tt.expectedError.(*domainerrs.NotOwnerError); ok {
					assert.True(t, domainerrs.IsNotOwnerError(err))
					var notOwner *domainerrs.NotOwnerError
					if assert.ErrorAs(t, err, &notOwner) {
						assert.Equal(t, expected.VaultID, notOwner.VaultID)
						assert.Equal(t, expected.Caller, notOwner.Caller)
						assert.Equal(t, expected.Owner, notOwner.Owner)
					}
				} else if _, ok := tt.expectedError.(*domainerrs.WithdrawError); ok {
					assert.IsType(t, &domainerrs.WithdrawError{}, err)
				} else if errors.Is(tt.expectedError, domainerrs.ErrVaultNotFound) {
					assert.ErrorIs(t, err, domainerrs.ErrVaultNotFound)
				} else if errors.Is(tt.expectedError, domainerrs.ErrVaultBusy) {
					assert.ErrorIs(t, err, domainerrs.ErrVaultBusy)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
			} else {
				assert.NoError(t, err)
			}

			// Verify result
			assert.NotNil(t, result)
			assert.Equal(t, tt.expectedSuccess, result.Success)
			assert.Equal(t, tt.expectedStatusCode, result.StatusCode)

			// Verify all mocks were called as expected
			mockUow.AssertExpectations(t)
			mockVaultUseCase.AssertExpectations(t)
			mockLockRepo.AssertExpectations(t)
			mockVaultRepo.AssertExpectations(t)
			mockWdRepo.AssertExpectations(t)
			mockTimeProvider.AssertExpectations(t)
			mockLogger.AssertExpectations(t)
		})
	}
}

// TestWithdrawRecordsReceipt pins down what actually gets written: the vault
// emptied in place and a completed receipt for the transferred amount, even
// when that amount is zero.
func TestWithdrawRecordsReceipt(t *testing.T) {
	ctx := context.Background()
	vaultID := "vault-12345"
	owner := "0xOWNER"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deployedAt := now.Add(-24 * time.Hour)
	pastUnlock := now.Add(-1 * time.Hour)

	tests := []struct {
		name                  string
		balanceInCents        int64
		withdrawalCount       uint64
		expectedAmount        string
		expectedCount         uint64
		expectedAmountInCents int64
	}{
		{
			name:                  "First withdrawal transfers the full balance",
			balanceInCents:        15050,
			withdrawalCount:       0,
			expectedAmount:        "150.50",
			expectedCount:         1,
			expectedAmountInCents: 15050,
		},
		{
			name:                  "Repeat withdrawal transfers zero",
			balanceInCents:        0,
			withdrawalCount:       1,
			expectedAmount:        "0.00",
			expectedCount:         2,
			expectedAmountInCents: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockUow := new(mpers.MockUnitOfWork)
			mockVaultUseCase := new(muse.MockVaultUseCase)
			mockLockRepo := new(mpers.MockVaultLockRepository)
			mockVaultRepo := new(mpers.MockVaultRepository)
			mockWdRepo := new(mpers.MockWithdrawalRepository)
			mockTimeProvider := new(mcore.MockTimeProvider)
			mockLogger := new(mcore.MockLogger)

			mockVaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)
			mockLockRepo.On("AcquireLock", mock.Anything, vaultID, mock.AnythingOfType("time.Duration")).Return(nil)
			mockLockRepo.On("ReleaseLock", mock.Anything, vaultID).Return(nil)

			txCtx := context.WithValue(ctx, txKey, "mockTransaction")
			mockUow.On("Begin", mock.Anything).Return(txCtx, nil)
			mockUow.On("GetVaultRepository", txCtx).Return(mockVaultRepo)
			mockUow.On("GetWithdrawalRepository", txCtx).Return(mockWdRepo)
			mockUow.On("Commit", txCtx).Return(nil)

			vault := entity.RestoreVault(vaultID, owner, pastUnlock, tt.balanceInCents, deployedAt, deployedAt, tt.withdrawalCount)
			mockVaultRepo.On("GetByIDForUpdate", txCtx, vaultID).Return(vault, nil)

			// Capture what gets persisted
			var persistedVault *entity.Vault
			mockVaultRepo.On("Update", txCtx, mock.AnythingOfType("*entity.Vault")).
				Run(func(args mock.Arguments) {
					persistedVault = args.Get(1).(*entity.Vault)
				}).
				Return(nil)

			var persistedReceipt *entity.Withdrawal
			mockWdRepo.On("Create", txCtx, mock.AnythingOfType("*entity.Withdrawal")).
				Run(func(args mock.Arguments) {
					persistedReceipt = args.Get(1).(*entity.Withdrawal)
				}).
				Return(nil)

			mockTimeProvider.On("Now").Return(now).Maybe()
			mockTimeProvider.On("Since", mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
			mockTimeProvider.On("WithTimeout", mock.Anything, mock.Anything).Return(ctx, context.CancelFunc(func() {})).Maybe()
			mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
			mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()

			service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
			defer service.Shutdown()

			// Act
			result, err := service.Withdraw(ctx, vaultID, portuse.WithdrawRequest{Caller: owner})

			// Assert
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.Success)
			assert.Equal(t, http.StatusOK, result.StatusCode)
			assert.Equal(t, tt.expectedAmount, result.Amount)
			assert.Equal(t, "0.00", result.ResultBalance)

			// The vault must be emptied in place
			require.NotNil(t, persistedVault)
			assert.Equal(t, int64(0), persistedVault.Balance())
			assert.Equal(t, tt.expectedCount, persistedVault.WithdrawalCount)

			// The receipt must be completed and consistent with the result
			require.NotNil(t, persistedReceipt)
			assert.Equal(t, vaultID, persistedReceipt.VaultID)
			assert.Equal(t, owner, persistedReceipt.Recipient)
			assert.Equal(t, tt.expectedAmount, persistedReceipt.Amount)
			assert.Equal(t, tt.expectedAmountInCents, persistedReceipt.AmountInCents)
			assert.Equal(t, "0.00", persistedReceipt.ResultBalance)
			assert.True(t, persistedReceipt.IsCompleted())
			require.NotNil(t, persistedReceipt.ProcessedAt)
			assert.Equal(t, result.WithdrawalID, persistedReceipt.WithdrawalID)

			_, parseErr := uuid.Parse(persistedReceipt.WithdrawalID)
			assert.NoError(t, parseErr, "Withdrawal ID should be a valid UUID")

			mockUow.AssertExpectations(t)
			mockVaultRepo.AssertExpectations(t)
			mockWdRepo.AssertExpectations(t)
		})
	}
}

func TestWithdrawInputValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		vaultID       string
		caller        string
		expectedError error
	}{
		{
			name:          "Blank Vault ID",
			vaultID:       "   ",
			caller:        "0xOWNER",
			expectedError: domainerrs.ErrInvalidVaultID,
		},
		{
			name:          "Blank Caller",
			vaultID:       "vault-12345",
			caller:        "   ",
			expectedError: domainerrs.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository expectations: invalid input must not reach them
			mockUow := new(mpers.MockUnitOfWork)
			mockVaultUseCase := new(muse.MockVaultUseCase)
			mockLockRepo := new(mpers.MockVaultLockRepository)
			mockTimeProvider := new(mcore.MockTimeProvider)
			mockLogger := new(mcore.MockLogger)
			mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
			mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()

			service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
			defer service.Shutdown()

			result, err := service.Withdraw(ctx, tt.vaultID, portuse.WithdrawRequest{Caller: tt.caller})

			assert.ErrorIs(t, err, tt.expectedError)
			require.NotNil(t, result)
			assert.False(t, result.Success)
			assert.Equal(t, http.StatusBadRequest, result.StatusCode)

			mockVaultUseCase.AssertNotCalled(t, "VaultExists", mock.Anything, mock.Anything)
			mockLockRepo.AssertNotCalled(t, "AcquireLock", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestListWithdrawals(t *testing.T) {
	ctx := context.Background()
	vaultID := "vault-12345"
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns receipts newest first", func(t *testing.T) {
		// Arrange
		mockUow := new(mpers.MockUnitOfWork)
		mockVaultUseCase := new(muse.MockVaultUseCase)
		mockLockRepo := new(mpers.MockVaultLockRepository)
		mockWdRepo := new(mpers.MockWithdrawalRepository)
		mockTimeProvider := new(mcore.MockTimeProvider)
		mockLogger := new(mcore.MockLogger)
		mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
		mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()

		receipts := []*entity.Withdrawal{
			{WithdrawalID: "wd-2", VaultID: vaultID, Amount: "0.00", CreatedAt: now},
			{WithdrawalID: "wd-1", VaultID: vaultID, Amount: "150.50", CreatedAt: now.Add(-time.Minute)},
		}

		mockVaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(true, nil)
		mockUow.On("GetWithdrawalRepository", mock.Anything).Return(mockWdRepo)
		mockWdRepo.On("ListByVault", mock.Anything, vaultID).Return(receipts, nil)

		service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
		defer service.Shutdown()

		// Act
		result, err := service.ListWithdrawals(ctx, vaultID)

		// Assert
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "wd-2", result[0].WithdrawalID)
		assert.Equal(t, "wd-1", result[1].WithdrawalID)

		mockUow.AssertExpectations(t)
		mockWdRepo.AssertExpectations(t)
	})

	t.Run("Blank vault ID", func(t *testing.T) {
		mockUow := new(mpers.MockUnitOfWork)
		mockVaultUseCase := new(muse.MockVaultUseCase)
		mockLockRepo := new(mpers.MockVaultLockRepository)
		mockTimeProvider := new(mcore.MockTimeProvider)
		mockLogger := new(mcore.MockLogger)
		mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
		mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()

		service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
		defer service.Shutdown()

		result, err := service.ListWithdrawals(ctx, "   ")

		assert.ErrorIs(t, err, domainerrs.ErrInvalidVaultID)
		assert.Nil(t, result)
		mockVaultUseCase.AssertNotCalled(t, "VaultExists", mock.Anything, mock.Anything)
	})

	t.Run("Unknown vault", func(t *testing.T) {
		mockUow := new(mpers.MockUnitOfWork)
		mockVaultUseCase := new(muse.MockVaultUseCase)
		mockLockRepo := new(mpers.MockVaultLockRepository)
		mockTimeProvider := new(mcore.MockTimeProvider)
		mockLogger := new(mcore.MockLogger)
		mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
		mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()

		mockVaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(false, nil)

		service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
		defer service.Shutdown()

		result, err := service.ListWithdrawals(ctx, vaultID)

		assert.ErrorIs(t, err, domainerrs.ErrVaultNotFound)
		assert.Nil(t, result)
		mockUow.AssertNotCalled(t, "GetWithdrawalRepository", mock.Anything)
	})

	t.Run("Existence check failure", func(t *testing.T) {
		mockUow := new(mpers.MockUnitOfWork)
		mockVaultUseCase := new(muse.MockVaultUseCase)
		mockLockRepo := new(mpers.MockVaultLockRepository)
		mockTimeProvider := new(mcore.MockTimeProvider)
		mockLogger := new(mcore.MockLogger)
		mockLogger.On("Info", mock.Anything, mock.Anything).Maybe()
		mockLogger.On("Debug", mock.Anything, mock.Anything).Maybe()

		mockVaultUseCase.On("VaultExists", mock.Anything, vaultID).Return(false, errors.New("database error"))

		service := newServiceForTest(mockUow, mockLockRepo, mockVaultUseCase, mockTimeProvider, mockLogger)
		defer service.Shutdown()

		result, err := service.ListWithdrawals(ctx, vaultID)

		assert.EqualError(t, err, "database error")
		assert.Nil(t, result)
	})
}

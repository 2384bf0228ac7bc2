package withdraw

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timelocked/vault-service/internal/domain/entity"
	errs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/domain/port/persistence"
	"github.com/timelocked/vault-service/internal/domain/port/usecase"
)

// Service is the main withdrawal service implementation. It ties the queue
// manager, the validator, the advisory lock and the unit of work together
// into the single path every withdrawal takes.
type Service struct {
	manager       *WithdrawManager
	validator     *WithdrawValidator
	uow           persistence.UnitOfWork
	vaultLockRepo persistence.VaultLockRepository
	vaultUseCase  usecase.VaultUseCase
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	lockTimeout   time.Duration
}

// NewWithdrawService creates a new withdrawal service
func NewWithdrawService(
	uow persistence.UnitOfWork,
	vaultLockRepo persistence.VaultLockRepository,
	vaultUseCase usecase.VaultUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTimeout time.Duration,
	queueSize int,
) *Service {
	s := &Service{
		validator:     NewWithdrawValidator(),
		uow:           uow,
		vaultLockRepo: vaultLockRepo,
		vaultUseCase:  vaultUseCase,
		timeProvider:  timeProvider,
		logger:        logger,
		lockTimeout:   lockTimeout,
	}

	s.manager = NewWithdrawManager(logger, timeProvider, s.processWithdraw).WithQueueSize(queueSize)

	return s
}

// Withdraw releases the vault's entire balance to its owner. The request
// goes through validation, a cheap existence check and then the vault's
// sequential queue; the actual work happens in processWithdraw.
func (s *Service) Withdraw(
	ctx context.Context,
	vaultID string,
	req usecase.WithdrawRequest,
) (*usecase.WithdrawResult, error) {
	if err := s.ValidateWithdrawRequest(vaultID, req); err != nil {
		return &usecase.WithdrawResult{
			Success:      false,
			ErrorMessage: err.Error(),
			StatusCode:   http.StatusBadRequest,
		}, err
	}

	// The caller identity is compared byte for byte against the owner, so
	// normalize it exactly once, before it enters the queue
	normalizedCaller, err := entity.NormalizeAddress(req.Caller)
	if err != nil {
		return &usecase.WithdrawResult{
			Success:      false,
			ErrorMessage: err.Error(),
			StatusCode:   http.StatusBadRequest,
		}, err
	}
	req.Caller = normalizedCaller

	// Reject unknown vaults before taking queue slots and locks
	exists, err := s.vaultUseCase.VaultExists(ctx, vaultID)
	if err != nil {
		s.logger.Error("Failed to check vault existence", map[string]any{
			"vault_id": vaultID,
			"error":    err.Error(),
		})
		return &usecase.WithdrawResult{
			Success:      false,
			ErrorMessage: errs.ErrInternalServer.Error(),
			StatusCode:   http.StatusInternalServerError,
		}, err
	}
	if !exists {
		return &usecase.WithdrawResult{
			Success:      false,
			ErrorMessage: errs.ErrVaultNotFound.Error(),
			StatusCode:   http.StatusNotFound,
		}, errs.ErrVaultNotFound
	}

	result, err := s.manager.EnqueueWithdraw(ctx, vaultID, req)
	if err != nil {
		statusCode, errorMessage := mapWithdrawError(err)

		s.logger.Error("Withdrawal processing failed", map[string]any{
			"vault_id":    vaultID,
			"caller":      req.Caller,
			"status_code": statusCode,
			"error":       err.Error(),
		})

		return &usecase.WithdrawResult{
			Success:      false,
			ErrorMessage: errorMessage,
			StatusCode:   statusCode,
		}, err
	}

	return result, nil
}

// ValidateWithdrawRequest validates an incoming withdrawal request
func (s *Service) ValidateWithdrawRequest(vaultID string, req usecase.WithdrawRequest) error {
	return s.validator.ValidateWithdraw(vaultID, req.Caller)
}

// ListWithdrawals returns the receipts recorded for a vault, newest first
func (s *Service) ListWithdrawals(ctx context.Context, vaultID string) ([]*entity.Withdrawal, error) {
	if strings.TrimSpace(vaultID) == "" {
		return nil, errs.ErrInvalidVaultID
	}

	exists, err := s.vaultUseCase.VaultExists(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrVaultNotFound
	}

	return s.uow.GetWithdrawalRepository(ctx).ListByVault(ctx, vaultID)
}

// Shutdown drains the per-vault queues and stops their workers
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

// processWithdraw is the worker-side implementation of a single withdrawal.
// It runs with the vault's queue already guaranteeing in-process ordering;
// the advisory lock extends that guarantee across replicas, and the row
// lock inside the transaction is the final arbiter.
func (s *Service) processWithdraw(
	ctx context.Context,
	vaultID string,
	req usecase.WithdrawRequest,
) (*usecase.WithdrawResult, error) {
	if err := s.vaultLockRepo.AcquireLock(ctx, vaultID, s.lockTimeout); err != nil {
		return nil, err
	}
	defer func() {
		// The request context may already be gone; give the release its own
		// deadline so an abandoned caller cannot leak the lock until expiry
		releaseCtx, releaseCancel := s.timeProvider.WithTimeout(context.Background(), coreport.Duration(s.lockTimeout))
		defer releaseCancel()
		if err := s.vaultLockRepo.ReleaseLock(releaseCtx, vaultID); err != nil {
			s.logger.Warn("Failed to release vault lock", map[string]any{
				"vault_id": vaultID,
				"error":    err.Error(),
			})
		}
	}()

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	vaultRepo := s.uow.GetVaultRepository(txCtx)
	withdrawalRepo := s.uow.GetWithdrawalRepository(txCtx)

	vault, err := vaultRepo.GetByIDForUpdate(txCtx, vaultID)
	if err != nil {
		s.rollback(txCtx, vaultID)
		return nil, err
	}

	amountInCents, err := vault.Withdraw(req.Caller, s.timeProvider)
	if err != nil {
		s.rollback(txCtx, vaultID)
		switch {
		case errors.Is(err, errs.ErrTooEarly):
			return nil, errs.NewTooEarlyError(vault.ID, vault.UnlockTime, s.timeProvider.Now())
		case errors.Is(err, errs.ErrNotOwner):
			return nil, errs.NewNotOwnerError(vault.ID, req.Caller, vault.Owner)
		}
		return nil, err
	}

	if err := vaultRepo.Update(txCtx, vault); err != nil {
		s.rollback(txCtx, vaultID)
		return nil, errs.NewWithdrawError(vault.ID, req.Caller, entity.AmountInCentsToString(amountInCents), "failed to persist vault", err)
	}

	receipt, err := entity.NewWithdrawal(uuid.NewString(), vault.ID, vault.Owner, amountInCents, s.timeProvider)
	if err != nil {
		s.rollback(txCtx, vaultID)
		return nil, err
	}
	receipt.MarkAsProcessed(s.timeProvider, vault.GetBalance())

	if err := withdrawalRepo.Create(txCtx, receipt); err != nil {
		s.rollback(txCtx, vaultID)
		return nil, errs.NewWithdrawError(vault.ID, req.Caller, receipt.Amount, "failed to record receipt", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal completed", map[string]any{
		"vault_id":      vault.ID,
		"withdrawal_id": receipt.WithdrawalID,
		"caller":        req.Caller,
		"amount":        receipt.Amount,
	})

	return &usecase.WithdrawResult{
		Success:       true,
		WithdrawalID:  receipt.WithdrawalID,
		Amount:        receipt.Amount,
		ResultBalance: receipt.ResultBalance,
		StatusCode:    http.StatusOK,
	}, nil
}

// rollback rolls the transaction back and logs when even that fails
func (s *Service) rollback(txCtx context.Context, vaultID string) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back withdrawal transaction", map[string]any{
			"vault_id": vaultID,
			"error":    err.Error(),
		})
	}
}

// mapWithdrawError translates processing errors into an HTTP status code
// and a client-safe message
func mapWithdrawError(err error) (int, string) {
	statusCode := http.StatusInternalServerError
	errorMessage := err.Error()

	switch {
	case errs.IsTooEarlyError(err):
		statusCode = http.StatusLocked

	case errs.IsNotOwnerError(err):
		statusCode = http.StatusForbidden

	case errs.IsVaultBusyError(err):
		statusCode = http.StatusConflict

	case errs.IsNotFoundError(err):
		statusCode = http.StatusNotFound

	// Identify database concurrency errors specifically
	case strings.Contains(strings.ToLower(err.Error()), "deadlock"):
		statusCode = http.StatusConflict
		errorMessage = "Withdrawal could not be processed due to concurrent operations. Please try again."

	case strings.Contains(strings.ToLower(err.Error()), "serialization"):
		statusCode = http.StatusConflict
		errorMessage = "Withdrawal could not be processed due to concurrent operations. Please try again."

	case strings.Contains(strings.ToLower(err.Error()), "lock timeout"):
		statusCode = http.StatusConflict
		errorMessage = "Withdrawal processing timed out due to lock contention. Please try again."
	}

	return statusCode, errorMessage
}

package withdraw

import (
	"context"
	"sync"

	errs "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/domain/port/usecase"
)

// DefaultQueueSize is the buffer size of a per-vault withdrawal queue
const DefaultQueueSize = 100

// WithdrawManager serializes withdrawal processing per vault. Every vault
// gets its own queue drained by a single worker goroutine, so two calls on
// the same vault can never interleave inside this process.
type WithdrawManager struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	// Vault-based queues for strict per-vault ordering
	vaultQueues    sync.Map // map[string]chan *withdrawRequest
	queueWaitGroup sync.WaitGroup
	queueSize      int

	// Function that does the actual withdrawal work
	processor WithdrawProcessorFunc
}

// WithdrawProcessorFunc is the function signature for processing withdrawals
type WithdrawProcessorFunc func(ctx context.Context, vaultID string, req usecase.WithdrawRequest) (*usecase.WithdrawResult, error)

// withdrawRequest represents a queued withdrawal request
type withdrawRequest struct {
	ctx        context.Context
	vaultID    string
	req        usecase.WithdrawRequest
	resultChan chan *withdrawResult
}

// withdrawResult represents the result of a processed withdrawal
type withdrawResult struct {
	result *usecase.WithdrawResult
	err    error
}

// NewWithdrawManager creates a new withdraw manager
func NewWithdrawManager(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	processor WithdrawProcessorFunc,
) *WithdrawManager {
	if processor == nil {
		panic("withdraw processor function cannot be nil")
	}

	return &WithdrawManager{
		logger:       logger,
		timeProvider: timeProvider,
		vaultQueues:  sync.Map{},
		queueSize:    DefaultQueueSize,
		processor:    processor,
	}
}

// WithQueueSize overrides the per-vault queue buffer size
func (m *WithdrawManager) WithQueueSize(size int) *WithdrawManager {
	if size > 0 {
		m.queueSize = size
	}
	return m
}

// EnqueueWithdraw adds a withdrawal to the vault's queue for sequential
// processing and blocks until the result is available or the context ends
func (m *WithdrawManager) EnqueueWithdraw(
	ctx context.Context,
	vaultID string,
	req usecase.WithdrawRequest,
) (*usecase.WithdrawResult, error) {
	m.logger.Debug("Enqueuing withdrawal for sequential processing", map[string]any{
		"vault_id": vaultID,
		"caller":   req.Caller,
	})

	// Create a channel for the result
	resultChan := make(chan *withdrawResult, 1)

	// Get or create queue for this vault
	var queue chan *withdrawRequest
	queueIface, loaded := m.vaultQueues.LoadOrStore(vaultID, make(chan *withdrawRequest, m.queueSize))
	if queueCh, ok := queueIface.(chan *withdrawRequest); ok {
		queue = queueCh
	} else {
		m.logger.Error("Failed to type assert queue channel", nil)
		return nil, errs.ErrInternalServer
	}

	// Start worker if this is a new queue
	if !loaded {
		m.logger.Info("Starting withdrawal queue worker for vault", map[string]any{
			"vault_id": vaultID,
		})
		m.queueWaitGroup.Add(1)
		go m.processVaultWithdrawals(vaultID, queue)
	}

	// Create withdrawal request
	wdReq := &withdrawRequest{
		ctx:        ctx,
		vaultID:    vaultID,
		req:        req,
		resultChan: resultChan,
	}

	// Send request to queue
	select {
	case queue <- wdReq:
		m.logger.Debug("Withdrawal enqueued successfully", map[string]any{
			"vault_id": vaultID,
		})
	case <-ctx.Done():
		m.logger.Warn("Context canceled while enqueueing withdrawal", map[string]any{
			"vault_id": vaultID,
			"error":    ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}

	// Wait for result
	select {
	case result := <-resultChan:
		return result.result, result.err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for withdrawal result", map[string]any{
			"vault_id": vaultID,
			"error":    ctx.Err().Error(),
		})
		return nil, ctx.Err()
	}
}

// processVaultWithdrawals handles the worker goroutine for a vault's queue
func (m *WithdrawManager) processVaultWithdrawals(vaultID string, queue chan *withdrawRequest) {
	defer m.queueWaitGroup.Done()

	m.logger.Info("Withdrawal queue worker started", map[string]any{
		"vault_id": vaultID,
	})

	// Process withdrawals strictly one at a time
	for wdReq := range queue {
		start := m.timeProvider.Now()

		result, err := m.processor(wdReq.ctx, vaultID, wdReq.req)

		m.logger.Debug("Processed queued withdrawal", map[string]any{
			"vault_id": vaultID,
			"caller":   wdReq.req.Caller,
			"duration": m.timeProvider.Since(start).Std().String(),
		})

		// Send result back
		wdReq.resultChan <- &withdrawResult{
			result: result,
			err:    err,
		}
		close(wdReq.resultChan)
	}

	m.logger.Info("Withdrawal queue worker stopped", map[string]any{
		"vault_id": vaultID,
	})
}

// Shutdown stops all worker goroutines cleanly. No withdrawals may be
// enqueued after this is called.
func (m *WithdrawManager) Shutdown() {
	m.logger.Info("Shutting down withdraw manager", nil)

	// Close all queues to stop workers
	m.vaultQueues.Range(func(vaultID, queueIface interface{}) bool {
		if queue, ok := queueIface.(chan *withdrawRequest); ok {
			m.logger.Debug("Closing withdrawal queue for vault", map[string]any{
				"vault_id": vaultID,
			})
			close(queue)
		}
		return true
	})

	// Wait for all workers to finish
	m.queueWaitGroup.Wait()
	m.logger.Info("Withdraw manager shut down successfully", nil)
}

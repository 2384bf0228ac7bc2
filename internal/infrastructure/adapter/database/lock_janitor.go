package database

import (
	"context"
	"time"

	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/repository"
)

// LockJanitor periodically removes expired vault locks so a crashed
// withdrawal never leaves a vault locked past its lock timeout.
type LockJanitor struct {
	lockRepo    *repository.VaultLockRepository
	logger      coreport.Logger
	metrics     *MetricsCollector
	errorMapper *ErrorMapper
	retryConfig RetryConfig
	interval    time.Duration
	stopChan    chan struct{}
}

// NewLockJanitor creates a new lock janitor
func NewLockJanitor(
	lockRepo *repository.VaultLockRepository,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	interval time.Duration,
) *LockJanitor {
	return &LockJanitor{
		lockRepo:    lockRepo,
		logger:      logger,
		metrics:     NewMetricsCollector(logger, timeProvider),
		errorMapper: NewErrorMapper(),
		retryConfig: DefaultRetryConfig(),
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the periodic cleanup loop
func (j *LockJanitor) Start() {
	j.logger.Info("Vault lock janitor started", map[string]any{
		"interval": j.interval.String(),
	})

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.sweep()
			case <-j.stopChan:
				j.logger.Info("Vault lock janitor stopped", nil)
				return
			}
		}
	}()
}

// Stop stops the cleanup loop
func (j *LockJanitor) Stop() {
	close(j.stopChan)
}

// sweep removes expired locks, retrying on transient database errors
func (j *LockJanitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), j.interval)
	defer cancel()

	err := RetryOnTransientError(ctx, j.retryConfig, func() error {
		_, err := j.metrics.MeasureQuery(ctx, "cleanup_expired_locks", func() (int64, error) {
			return j.lockRepo.CleanupExpiredLocks(ctx)
		})
		return err
	}, j.errorMapper, j.logger)

	if err != nil {
		j.logger.Error("Vault lock cleanup failed", map[string]any{
			"error": err.Error(),
		})
	}
}

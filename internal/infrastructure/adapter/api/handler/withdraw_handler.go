package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/timelocked/vault-service/internal/domain/error"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/domain/port/usecase"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/api/dto"
)

// WithdrawHandler handles withdrawal-related HTTP requests
type WithdrawHandler struct {
	withdrawUseCase usecase.WithdrawUseCase
	vaultUseCase    usecase.VaultUseCase
	logger          coreport.Logger
}

// NewWithdrawHandler creates a new withdrawal handler instance
func NewWithdrawHandler(
	withdrawUseCase usecase.WithdrawUseCase,
	vaultUseCase usecase.VaultUseCase,
	logger coreport.Logger,
) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawUseCase: withdrawUseCase,
		vaultUseCase:    vaultUseCase,
		logger:          logger,
	}
}

// ProcessWithdraw handles the POST /vault/{vaultId}/withdraw endpoint
func (h *WithdrawHandler) ProcessWithdraw(c *gin.Context) {
	// Extract vault ID from path
	vaultID := c.Param("vaultId")

	// Get the caller identity from header
	caller := c.GetHeader("X-Caller-Address")
	if caller == "" {
		h.logger.Error("Missing X-Caller-Address header", nil)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing required header: X-Caller-Address",
		})
		return
	}

	// Check if vault exists
	exists, err := h.vaultUseCase.VaultExists(c.Request.Context(), vaultID)
	if err != nil {
		h.logger.Error("Error checking vault existence", map[string]any{
			"vaultId": vaultID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrVaultNotFound),
			Message: "Vault not found",
		})
		return
	}

	// Map to domain request
	withdrawReq := usecase.WithdrawRequest{
		Caller: caller,
	}

	// Process the withdrawal
	result, err := h.withdrawUseCase.Withdraw(c.Request.Context(), vaultID, withdrawReq)

	// Return appropriate response based on result
	if err != nil {
		// The result already carries the right status code and error message
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: result.ErrorMessage,
		})
		return
	}

	// Success response
	c.JSON(http.StatusOK, dto.WithdrawResponse{
		WithdrawalID:  result.WithdrawalID,
		VaultID:       vaultID,
		Success:       result.Success,
		Amount:        result.Amount,
		ResultBalance: result.ResultBalance,
		ErrorMessage:  result.ErrorMessage,
	})
}

// ListWithdrawals handles the GET /vault/{vaultId}/withdrawals endpoint
func (h *WithdrawHandler) ListWithdrawals(c *gin.Context) {
	// Extract vault ID from path
	vaultID := c.Param("vaultId")

	// Get the withdrawal history
	withdrawals, err := h.withdrawUseCase.ListWithdrawals(c.Request.Context(), vaultID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		// Map domain errors to HTTP status codes
		if errors.Is(err, domainerr.ErrVaultNotFound) {
			statusCode = http.StatusNotFound
			errorMessage = "Vault not found"
		} else if errors.Is(err, domainerr.ErrInvalidVaultID) {
			statusCode = http.StatusBadRequest
			errorMessage = "Invalid vault ID format"
		}

		h.logger.Error("Error listing withdrawals", map[string]any{
			"vaultId": vaultID,
			"error":   err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	// Map receipts to the response shape
	receipts := make([]dto.WithdrawalReceiptResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		receipt := dto.WithdrawalReceiptResponse{
			WithdrawalID:  w.WithdrawalID,
			VaultID:       w.VaultID,
			Recipient:     w.Recipient,
			Amount:        w.Amount,
			ResultBalance: w.ResultBalance,
			Status:        string(w.Status),
			CreatedAt:     w.CreatedAt.Unix(),
		}
		if w.ProcessedAt != nil {
			processedAt := w.ProcessedAt.Unix()
			receipt.ProcessedAt = &processedAt
		}
		receipts = append(receipts, receipt)
	}

	// Return success response
	c.JSON(http.StatusOK, dto.WithdrawalListResponse{
		VaultID:     vaultID,
		Withdrawals: receipts,
	})
}

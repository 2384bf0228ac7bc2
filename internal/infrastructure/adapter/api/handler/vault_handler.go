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

// VaultHandler handles vault-related HTTP requests
type VaultHandler struct {
	vaultUseCase usecase.VaultUseCase
	logger       coreport.Logger
}

// NewVaultHandler creates a new vault handler instance
func NewVaultHandler(
	vaultUseCase usecase.VaultUseCase,
	logger coreport.Logger,
) *VaultHandler {
	return &VaultHandler{
		vaultUseCase: vaultUseCase,
		logger:       logger,
	}
}

// DeployVault handles the POST /vault endpoint
func (h *VaultHandler) DeployVault(c *gin.Context) {
	// Get the caller identity from header; it becomes the vault owner
	caller := c.GetHeader("X-Caller-Address")
	if caller == "" {
		h.logger.Error("Missing X-Caller-Address header", nil)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing required header: X-Caller-Address",
		})
		return
	}

	// Parse request body
	var req dto.DeployVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid deploy request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	// An absent amount means an unfunded vault
	if req.InitialAmount == "" {
		req.InitialAmount = "0.00"
	}

	// Deploy the vault
	vault, err := h.vaultUseCase.DeployVault(c.Request.Context(), caller, req.UnlockTime, req.InitialAmount)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := "Internal server error"

		// Map domain errors to HTTP status codes
		switch {
		case errors.Is(err, domainerr.ErrInvalidUnlockTime):
			statusCode = http.StatusBadRequest
			errorMessage = "Unlock time must be in the future"
		case errors.Is(err, domainerr.ErrInvalidAddress):
			statusCode = http.StatusBadRequest
			errorMessage = "Invalid caller address"
		case errors.Is(err, domainerr.ErrInvalidAmount),
			errors.Is(err, domainerr.ErrNegativeAmount),
			errors.Is(err, domainerr.ErrAmountOverflow):
			statusCode = http.StatusBadRequest
			errorMessage = "Invalid initial amount: " + err.Error()
		case errors.Is(err, domainerr.ErrDuplicateVault):
			statusCode = http.StatusConflict
			errorMessage = "Vault with this ID already exists"
		}

		h.logger.Error("Error deploying vault", map[string]any{
			"owner": caller,
			"error": err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	// Return the created vault
	c.JSON(http.StatusCreated, dto.DeployVaultResponse{
		VaultID:    vault.ID,
		Owner:      vault.Owner,
		UnlockTime: vault.UnlockTime.Unix(),
		Balance:    vault.GetBalance(),
	})
}

// GetVaultStatus handles the GET /vault/{vaultId} endpoint
func (h *VaultHandler) GetVaultStatus(c *gin.Context) {
	// Extract vault ID from path
	vaultID := c.Param("vaultId")

	// Get vault status
	statusResponse, err := h.vaultUseCase.GetVaultStatus(c.Request.Context(), vaultID)
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

		h.logger.Error("Error getting vault status", map[string]any{
			"vaultId": vaultID,
			"error":   err.Error(),
		})

		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: errorMessage,
		})
		return
	}

	// Return success response
	c.JSON(http.StatusOK, dto.VaultStatusResponse{
		VaultID:    statusResponse.VaultID,
		Owner:      statusResponse.Owner,
		UnlockTime: statusResponse.UnlockTime,
		Balance:    statusResponse.Balance,
		Unlocked:   statusResponse.Unlocked,
	})
}

package handler

import (
	"wallet-ledger/internal/adapter/http/dto"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"
	"wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet and ledger endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetWallet handles GET /api/v1/wallets/user/:userId.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	wallet, err := h.walletSvc.GetWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewWalletResponse(wallet))
}

// ProvisionWallet handles POST /api/v1/wallets/user/:userId.
func (h *WalletHandler) ProvisionWallet(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	wallet, err := h.walletSvc.ProvisionWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewWalletResponse(wallet))
}

// Deposit handles POST /api/v1/wallets/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	balance, err := h.walletSvc.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{Balance: balance})
}

// Transfer handles POST /api/v1/wallets/transfer.
func (h *WalletHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	senderID, err := uuid.Parse(req.SenderUserID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid sender user id"))
		return
	}
	receiverID, err := uuid.Parse(req.ReceiverUserID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid receiver user id"))
		return
	}

	result, err := h.walletSvc.Transfer(c.Request.Context(), senderID, receiverID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{
		SenderBalance:   result.SenderBalance,
		ReceiverBalance: result.ReceiverBalance,
	})
}

// ListTransfers handles POST /api/v1/wallets/transfers/list.
func (h *WalletHandler) ListTransfers(c *gin.Context) {
	var req dto.TransferListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	transfers, err := h.walletSvc.ListTransfers(c.Request.Context(), ports.TransferListParams{
		SenderUserID: userID,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transfers))
	for _, txn := range transfers {
		items = append(items, dto.NewTransactionResponse(txn))
	}

	response.OK(c, items)
}

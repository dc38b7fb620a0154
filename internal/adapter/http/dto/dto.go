package dto

import (
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // Seconds until expiry
}

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	UserID string          `json:"user_id" binding:"required,uuid"`
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest is the request body for a transfer.
type TransferRequest struct {
	SenderUserID   string          `json:"sender_user_id" binding:"required,uuid"`
	ReceiverUserID string          `json:"receiver_user_id" binding:"required,uuid"`
	Amount         decimal.Decimal `json:"amount"`
}

// TransferListRequest is the request body for the transfer history query.
// Dates are inclusive bounds; either or both may be omitted.
type TransferListRequest struct {
	UserID    string  `json:"user_id" binding:"required,uuid"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// WalletResponse is the response body for wallet queries.
type WalletResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"created_at"`
}

// BalanceResponse is the response body for a deposit.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// TransferResponse is the response body for a transfer.
type TransferResponse struct {
	SenderBalance   decimal.Decimal `json:"sender_balance"`
	ReceiverBalance decimal.Decimal `json:"receiver_balance"`
}

// TransactionResponse is one row of the transfer history.
type TransactionResponse struct {
	ID             string          `json:"id"`
	WalletID       string          `json:"wallet_id"`
	Amount         decimal.Decimal `json:"amount"`
	Kind           string          `json:"kind"`
	SenderUserID   *string         `json:"sender_user_id,omitempty"`
	ReceiverUserID *string         `json:"receiver_user_id,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// NewTransactionResponse maps a domain transaction to its wire form.
func NewTransactionResponse(txn domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        txn.ID.String(),
		WalletID:  txn.WalletID.String(),
		Amount:    txn.Amount,
		Kind:      string(txn.Kind),
		CreatedAt: txn.CreatedAt.Format(time.RFC3339),
	}
	if txn.SenderUserID != nil {
		s := txn.SenderUserID.String()
		resp.SenderUserID = &s
	}
	if txn.ReceiverUserID != nil {
		r := txn.ReceiverUserID.String()
		resp.ReceiverUserID = &r
	}
	return resp
}

// NewWalletResponse maps a domain wallet to its wire form.
func NewWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID.String(),
		UserID:    w.UserID.String(),
		Balance:   w.Balance,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
	}
}

// Accepted timestamp layouts for history date bounds.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses an optional date bound. Nil input means no bound.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q: use RFC3339 or YYYY-MM-DD", *s)
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of money movement.
type TransactionKind string

const (
	TransactionKindDeposit  TransactionKind = "DEPOSIT"
	TransactionKindTransfer TransactionKind = "TRANSFER"
)

// Transaction is an immutable ledger entry for one balance movement.
// A deposit carries only the receiver; a transfer carries both parties
// and is recorded as a single row posted against the sender's wallet.
type Transaction struct {
	ID             uuid.UUID       `json:"id"`
	WalletID       uuid.UUID       `json:"wallet_id"`
	Amount         decimal.Decimal `json:"amount"`
	Kind           TransactionKind `json:"kind"`
	SenderUserID   *uuid.UUID      `json:"sender_user_id,omitempty"`
	ReceiverUserID *uuid.UUID      `json:"receiver_user_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewDeposit builds a deposit entry posted against the receiving
// user's wallet.
func NewDeposit(walletID, receiverUserID uuid.UUID, amount decimal.Decimal, now time.Time) *Transaction {
	receiver := receiverUserID
	return &Transaction{
		ID:             uuid.New(),
		WalletID:       walletID,
		Amount:         amount,
		Kind:           TransactionKindDeposit,
		ReceiverUserID: &receiver,
		CreatedAt:      now,
	}
}

// NewTransfer builds the single entry recording a transfer. It is
// posted against the sender's wallet and names both parties.
func NewTransfer(senderWalletID, senderUserID, receiverUserID uuid.UUID, amount decimal.Decimal, now time.Time) *Transaction {
	sender := senderUserID
	receiver := receiverUserID
	return &Transaction{
		ID:             uuid.New(),
		WalletID:       senderWalletID,
		Amount:         amount,
		Kind:           TransactionKindTransfer,
		SenderUserID:   &sender,
		ReceiverUserID: &receiver,
		CreatedAt:      now,
	}
}

// IsTransfer reports whether the entry records a user-to-user movement.
func (t *Transaction) IsTransfer() bool {
	return t.Kind == TransactionKindTransfer
}

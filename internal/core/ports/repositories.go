package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate name surfaces as
	// apperror.ErrUsernameExists via unique-constraint classification.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for
// pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
}

// TransactionRepository defines persistence for the append-only
// transaction log. Rows are never updated or deleted after commit.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	ListTransfersBySender(ctx context.Context, params TransferListParams) ([]domain.Transaction, error)
}

// TransferListParams filters the transfer history of one sender.
// Date bounds are inclusive on both ends.
type TransferListParams struct {
	SenderUserID uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
}

// DBTransactor provides database transaction management. The commit on
// the returned pgx.Tx is the single point at which an operation's
// writes become visible; rollback discards all of them.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

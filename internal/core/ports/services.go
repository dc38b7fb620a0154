package ports

import (
	"context"
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HashService handles password hashing (PBKDF2-SHA256).
type HashService interface {
	Hash(password string) (string, error)
	// Verify reports whether the password matches the encoded hash.
	// A malformed hash is a verification failure, not an error.
	Verify(password string, encodedHash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Issue(username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Username string
}

// AuthService defines registration and login business logic.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginResult is the outcome of a successful authentication.
// ExpiresIn is recomputed after signing, so it is marginally below the
// nominal token validity window.
type LoginResult struct {
	Username  string
	Token     string
	ExpiresIn int64 // Seconds until expiry
}

// WalletService is the transfer engine. Every mutating operation is
// atomic end-to-end: balance changes and their ledger entry commit
// together or not at all.
type WalletService interface {
	ProvisionWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Transfer(ctx context.Context, senderUserID, receiverUserID uuid.UUID, amount decimal.Decimal) (*TransferResult, error)
	ListTransfers(ctx context.Context, params TransferListParams) ([]domain.Transaction, error)
}

// TransferResult carries both post-transfer balances.
type TransferResult struct {
	SenderBalance   decimal.Decimal
	ReceiverBalance decimal.Decimal
}

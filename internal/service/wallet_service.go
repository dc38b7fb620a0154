package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// ProvisionWallet creates the single wallet for a user with a zero
// starting balance.
func (s *WalletServiceImpl) ProvisionWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check user: %w", err))
	}
	if !exists {
		return nil, apperror.ErrUserNotFound()
	}

	existing, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrWalletExists()
	}

	wallet := domain.NewWallet(userID, time.Now().UTC())

	// Concurrent provisioning races resolve at the unique constraint on
	// user_id; the loser gets ErrWalletExists.
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		if appErr, ok := err.(*apperror.AppError); ok {
			return nil, appErr
		}
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("user_id", userID.String()).
		Msg("wallet provisioned")

	return wallet, nil
}

// GetWallet returns the wallet for a user.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// Deposit adds funds to a user's wallet and appends the matching ledger
// row, committed as one unit. Returns the new balance.
func (s *WalletServiceImpl) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, userID)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return decimal.Zero, apperror.ErrWalletNotFound()
	}

	now := time.Now().UTC()
	newBalance := wallet.Balance.Add(amount)
	txn := domain.NewDeposit(wallet.ID, userID, amount, now)

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("user_id", userID.String()).
		Str("amount", amount.String()).
		Msg("deposit processed")

	return newBalance, nil
}

// Transfer moves funds between two users' wallets. Both balance
// mutations and the single ledger row commit together or not at all.
func (s *WalletServiceImpl) Transfer(ctx context.Context, senderUserID, receiverUserID uuid.UUID, amount decimal.Decimal) (*ports.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	senderWallet, receiverWallet, err := s.lockPair(ctx, dbTx, senderUserID, receiverUserID)
	if err != nil {
		return nil, err
	}

	if !senderWallet.CanDebit(amount) {
		return nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	senderBalance := senderWallet.Balance.Sub(amount)
	receiverBalance := receiverWallet.Balance.Add(amount)
	if senderWallet.ID == receiverWallet.ID {
		// A self-transfer nets to zero: the debit and credit land on the
		// same row, so both sides report the unchanged balance.
		receiverBalance = senderBalance.Add(amount)
		senderBalance = receiverBalance
	}

	// One row records the whole movement, posted against the sender's
	// wallet with both parties populated.
	txn := domain.NewTransfer(senderWallet.ID, senderUserID, receiverUserID, amount, now)

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, senderWallet.ID, senderBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit sender: %w", err))
	}

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, receiverWallet.ID, receiverBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit receiver: %w", err))
	}

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("sender_user_id", senderUserID.String()).
		Str("receiver_user_id", receiverUserID.String()).
		Str("amount", amount.String()).
		Msg("transfer processed")

	return &ports.TransferResult{
		SenderBalance:   senderBalance,
		ReceiverBalance: receiverBalance,
	}, nil
}

// lockPair row-locks both wallets in ascending user-id order so that
// two concurrent transfers between the same pair cannot deadlock.
func (s *WalletServiceImpl) lockPair(ctx context.Context, dbTx pgx.Tx, senderUserID, receiverUserID uuid.UUID) (*domain.Wallet, *domain.Wallet, error) {
	first, second := senderUserID, receiverUserID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	firstWallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, first)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if firstWallet == nil {
		return nil, nil, apperror.ErrWalletNotFound()
	}

	secondWallet := firstWallet
	if first != second {
		secondWallet, err = s.walletRepo.GetByUserIDForUpdate(ctx, dbTx, second)
		if err != nil {
			return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
		}
		if secondWallet == nil {
			return nil, nil, apperror.ErrWalletNotFound()
		}
	}

	if first == senderUserID {
		return firstWallet, secondWallet, nil
	}
	return secondWallet, firstWallet, nil
}

// ListTransfers returns all transfers sent by a user, optionally
// bounded by inclusive date limits.
func (s *WalletServiceImpl) ListTransfers(ctx context.Context, params ports.TransferListParams) ([]domain.Transaction, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, params.SenderUserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	transfers, err := s.txRepo.ListTransfersBySender(ctx, params)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transfers: %w", err))
	}
	return transfers, nil
}

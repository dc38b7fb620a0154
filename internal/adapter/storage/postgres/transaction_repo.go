package postgres

import (
	"context"
	"fmt"
	"strings"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The
// transactions table is append-only: no update or delete statements
// exist against it.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, amount, kind, sender_user_id, receiver_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Amount, t.Kind,
		t.SenderUserID, t.ReceiverUserID, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListTransfersBySender fetches transfer entries sent by one user,
// optionally bounded by inclusive start/end timestamps. Results are
// ordered by (created_at, id) so repeated identical queries return the
// same order.
func (r *TransactionRepo) ListTransfersBySender(ctx context.Context, params ports.TransferListParams) ([]domain.Transaction, error) {
	conditions := []string{"sender_user_id = $1", "kind = $2"}
	args := []any{params.SenderUserID, domain.TransactionKindTransfer}
	argIdx := 3

	if params.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.StartDate)
		argIdx++
	}
	if params.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT id, wallet_id, amount, kind, sender_user_id, receiver_user_id, created_at
		FROM transactions WHERE %s ORDER BY created_at, id`, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var result []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Amount, &t.Kind,
			&t.SenderUserID, &t.ReceiverUserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}
	return result, nil
}

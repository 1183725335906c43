package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

const withdrawalColumns = `t.id, t.user_id, t.type, t.amount, t.method, t.address,
	t.status, t.tx_id, t.is_sos, t.date`

// WithdrawalRepository stores withdrawal requests in the transactions table.
type WithdrawalRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewWithdrawalRepository creates a WithdrawalRepository. txGetter may be nil.
func NewWithdrawalRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WithdrawalRepository {
	return &WithdrawalRepository{db: db, txGetter: txGetter}
}

// Save inserts a new withdrawal request.
func (r *WithdrawalRepository) Save(ctx context.Context, w *models.WithdrawalDB) error {
	const query = `
		INSERT INTO transactions (id, user_id, type, amount, method, address, status, tx_id, is_sos, date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	args := []any{w.ID, w.UserID, models.TransactionWithdrawal, w.Amount, w.Method, w.Address, w.Status, w.TxID, w.IsSos, w.Date}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// GetByID returns the withdrawal with the given id, or nil if none exists.
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WithdrawalDB, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM transactions t
		WHERE t.id = $1 AND t.type = 'Withdrawal'`

	var w models.WithdrawalDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, id)
	logQuery(query, []any{id}, w.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUser returns the user's withdrawals, newest first.
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WithdrawalDB, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM transactions t
		WHERE t.user_id = $1 AND t.type = 'Withdrawal'
		ORDER BY t.date DESC`

	withdrawals := []models.WithdrawalDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &withdrawals, query, userID)
	logQuery(query, []any{userID}, len(withdrawals), err)

	return withdrawals, err
}

// Search returns withdrawals joined with their owner, newest first.
// A non-empty search matches address, tx id, owner name or email as a
// case-insensitive substring, and the record id when search is a UUID.
func (r *WithdrawalRepository) Search(ctx context.Context, search string) ([]models.WithdrawalView, error) {
	query := `SELECT ` + withdrawalColumns + `, u.name AS owner_name, u.email AS owner_email
		FROM transactions t
		JOIN users u ON u.user_id = t.user_id
		WHERE t.type = 'Withdrawal'`

	var args []any
	if search = strings.TrimSpace(search); search != "" {
		var id *uuid.UUID
		if parsed, err := uuid.Parse(search); err == nil {
			id = &parsed
		}
		query += ` AND (t.address ILIKE $1 OR t.tx_id ILIKE $1
			OR u.name ILIKE $1 OR u.email ILIKE $1 OR t.id = $2::uuid)`
		args = append(args, "%"+escapeLike(search)+"%", id)
	}
	query += ` ORDER BY t.date DESC`

	withdrawals := []models.WithdrawalView{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &withdrawals, query, args...)
	logQuery(query, args, len(withdrawals), err)

	return withdrawals, err
}

// UpdateDecision moves a pending withdrawal to status, storing txID.
// Reports false when the record does not exist or is no longer pending.
func (r *WithdrawalRepository) UpdateDecision(ctx context.Context, id uuid.UUID, status models.WithdrawalStatus, txID string) (bool, error) {
	const query = `
		UPDATE transactions SET status = $2, tx_id = $3, updated_at = NOW()
		WHERE id = $1 AND type = 'Withdrawal' AND status = 'Pending'
	`
	args := []any{id, status, txID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

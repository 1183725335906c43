package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

const investmentColumns = `i.id, i.user_id, i.amount, i.method, i.status, i.returns,
	i.wallet_address, i.start_date`

// InvestmentRepository stores investment requests.
type InvestmentRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewInvestmentRepository creates an InvestmentRepository. txGetter may be nil.
func NewInvestmentRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InvestmentRepository {
	return &InvestmentRepository{db: db, txGetter: txGetter}
}

// Save inserts a new investment request.
func (r *InvestmentRepository) Save(ctx context.Context, inv *models.InvestmentDB) error {
	const query = `
		INSERT INTO investments (id, user_id, amount, method, status, returns, wallet_address, start_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`
	args := []any{inv.ID, inv.UserID, inv.Amount, inv.Method, inv.Status, inv.Returns, inv.WalletAddress, inv.StartDate}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// GetByID returns the investment with the given id, or nil if none exists.
func (r *InvestmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InvestmentDB, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments i WHERE i.id = $1`

	var inv models.InvestmentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &inv, query, id)
	logQuery(query, []any{id}, inv.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByUser returns the user's investments, newest first.
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.InvestmentDB, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments i
		WHERE i.user_id = $1
		ORDER BY i.start_date DESC`

	investments := []models.InvestmentDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &investments, query, userID)
	logQuery(query, []any{userID}, len(investments), err)

	return investments, err
}

// ListAll returns every investment joined with its owner, newest first.
func (r *InvestmentRepository) ListAll(ctx context.Context) ([]models.InvestmentView, error) {
	query := `SELECT ` + investmentColumns + `, u.name AS owner_name, u.email AS owner_email
		FROM investments i
		JOIN users u ON u.user_id = i.user_id
		ORDER BY i.start_date DESC`

	investments := []models.InvestmentView{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &investments, query)
	logQuery(query, nil, len(investments), err)

	return investments, err
}

// UpdateStatus moves the investment from one status to another.
// Reports false when the record does not exist or is no longer in status from.
func (r *InvestmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.InvestmentStatus) (bool, error) {
	const query = `
		UPDATE investments SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	return r.exec(ctx, query, id, from, to)
}

// UpdateWalletAddress rewrites the reference address regardless of status.
// Reports false when the record does not exist.
func (r *InvestmentRepository) UpdateWalletAddress(ctx context.Context, id uuid.UUID, address string) (bool, error) {
	const query = `
		UPDATE investments SET wallet_address = $2, updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, query, id, address)
}

func (r *InvestmentRepository) exec(ctx context.Context, query string, args ...any) (bool, error) {
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

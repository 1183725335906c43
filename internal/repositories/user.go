package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-evault/internal/models"
)

const userColumns = `user_id, name, email, password_hash, is_admin, balance,
	total_invested, total_roi, total_withdrawn, created_at, updated_at`

// UserRepository reads and writes users and their ledger columns.
type UserRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewUserRepository creates a UserRepository. txGetter may be nil.
func NewUserRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email (case-insensitive), or nil if none exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save inserts a new user.
func (r *UserRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.IsAdmin}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{user.UserID, user.Name, user.Email, user.IsAdmin}, rowsAffected, err)

	return err
}

// List returns all users, newest first.
func (r *UserRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query)
	logQuery(query, nil, len(users), err)

	return users, err
}

// Count returns the number of registered users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)
	logQuery(query, nil, n, err)

	return n, err
}

// Credit increases the balance and returns the new value.
// Returns sql.ErrNoRows if the user does not exist.
func (r *UserRepository) Credit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	const query = `
		UPDATE users SET balance = balance + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, amount)
	logQuery(query, []any{userID, amount}, balance, err)

	return balance, err
}

// Debit decreases the balance only if it stays non-negative and returns the new value.
// Returns sql.ErrNoRows if the user does not exist or the balance is too low.
func (r *UserRepository) Debit(ctx context.Context, userID uuid.UUID, amount float64) (float64, error) {
	const query = `
		UPDATE users SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING balance
	`

	var balance float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, amount)
	logQuery(query, []any{userID, amount}, balance, err)

	return balance, err
}

// RecordWithdrawn adds amount to the cumulative withdrawn total.
func (r *UserRepository) RecordWithdrawn(ctx context.Context, userID uuid.UUID, amount float64) error {
	const query = `
		UPDATE users SET total_withdrawn = total_withdrawn + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING total_withdrawn
	`

	var total float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, userID, amount)
	logQuery(query, []any{userID, amount}, total, err)

	return err
}

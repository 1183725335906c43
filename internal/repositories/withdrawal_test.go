package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawalRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserRepository(db, GetTxFromContext)
	repo := NewWithdrawalRepository(db, GetTxFromContext)
	ctx := context.Background()

	alice := saveUser(t, users, "Alice Smith", "alice@example.com")
	bob := saveUser(t, users, "Bob", "bob@mail.test")
	now := time.Now().UTC().Truncate(time.Second)

	first := &models.WithdrawalDB{
		ID:      uuid.New(),
		UserID:  alice.UserID,
		Amount:  50,
		Method:  "USDT",
		Address: "TXabc100%",
		Status:  models.WithdrawalPending,
		Date:    now.Add(-time.Minute),
	}
	second := &models.WithdrawalDB{
		ID:      uuid.New(),
		UserID:  bob.UserID,
		Amount:  20,
		Method:  "ETH",
		Address: "0xdef",
		Status:  models.WithdrawalPending,
		IsSos:   true,
		Date:    now,
	}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, second.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.TransactionWithdrawal, got.Type)
		assert.True(t, got.IsSos)
		assert.Empty(t, got.TxID)

		missing, err := repo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("ListByUser", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, alice.UserID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("Search", func(t *testing.T) {
		tests := []struct {
			name   string
			search string
			want   []uuid.UUID
		}{
			{"Empty", "", []uuid.UUID{second.ID, first.ID}},
			{"Blank", "   ", []uuid.UUID{second.ID, first.ID}},
			{"OwnerNameCaseInsensitive", "alice", []uuid.UUID{first.ID}},
			{"OwnerEmail", "mail.test", []uuid.UUID{second.ID}},
			{"Address", "0XDEF", []uuid.UUID{second.ID}},
			{"LiteralPercent", "100%", []uuid.UUID{first.ID}},
			{"WildcardNotExpanded", "%", []uuid.UUID{first.ID}},
			{"RecordID", second.ID.String(), []uuid.UUID{second.ID}},
			{"NoMatch", "zzz", nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				list, err := repo.Search(ctx, tt.search)
				require.NoError(t, err)

				var ids []uuid.UUID
				for _, w := range list {
					ids = append(ids, w.ID)
				}
				assert.Equal(t, tt.want, ids)
			})
		}
	})

	t.Run("UpdateDecisionOnlyOnce", func(t *testing.T) {
		ok, err := repo.UpdateDecision(ctx, first.ID, models.WithdrawalApproved, "0xhash")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.UpdateDecision(ctx, first.ID, models.WithdrawalRejected, "")
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalApproved, got.Status)
		assert.Equal(t, "0xhash", got.TxID)

		list, err := repo.Search(ctx, "0xhash")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)
	})
}

func TestWithdrawalRepository_SettleInTransaction(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserRepository(db, GetTxFromContext)
	repo := NewWithdrawalRepository(db, GetTxFromContext)
	tx := NewTransactor(db)
	ctx := context.Background()

	owner := saveUser(t, users, "Eve", "eve@example.com")
	_, err := users.Credit(ctx, owner.UserID, 30)
	require.NoError(t, err)

	w := &models.WithdrawalDB{
		ID:     uuid.New(),
		UserID: owner.UserID,
		Amount: 50,
		Method: "USDT",
		Status: models.WithdrawalPending,
		Date:   time.Now(),
	}
	require.NoError(t, repo.Save(ctx, w))

	errOverdraw := errors.New("overdraw")
	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := repo.UpdateDecision(ctx, w.ID, models.WithdrawalApproved, "tx1")
		if err != nil || !ok {
			return errors.New("flip failed")
		}
		if _, err := users.Debit(ctx, owner.UserID, w.Amount); errors.Is(err, sql.ErrNoRows) {
			return errOverdraw
		}
		return nil
	})
	assert.ErrorIs(t, err, errOverdraw)

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalPending, got.Status)
	assert.Empty(t, got.TxID)

	account, err := users.GetByID(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, account.Balance)
}

func TestWithdrawalRepository_SearchArgs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewWithdrawalRepository(sqlx.NewDb(db, "sqlmock"), nil)
	ctx := context.Background()

	columns := []string{"id", "user_id", "type", "amount", "method", "address", "status", "tx_id", "is_sos", "date", "owner_name", "owner_email"}

	t.Run("EscapesWildcards", func(t *testing.T) {
		mock.ExpectQuery(`FROM transactions t JOIN users u .* ILIKE \$1`).
			WithArgs(`%50\%\_off%`, nil).
			WillReturnRows(sqlmock.NewRows(columns))

		list, err := repo.Search(ctx, "  50%_off ")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("MatchesID", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`t.id = \$2::uuid`).
			WithArgs("%"+id.String()+"%", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				id.String(), uuid.New().String(), "Withdrawal", 10.0, "USDT", "addr", "Pending", "", false, time.Now(), "Ann", "ann@example.com",
			))

		list, err := repo.Search(ctx, id.String())
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ann", list[0].OwnerName)
	})

	t.Run("NoFilterWhenEmpty", func(t *testing.T) {
		mock.ExpectQuery(`WHERE t.type = 'Withdrawal' ORDER BY t.date DESC`).
			WithArgs().
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.Search(ctx, "")
		require.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepository_SubCentAmounts(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	users := NewUserRepository(db, GetTxFromContext)
	repo := NewWithdrawalRepository(db, GetTxFromContext)
	ctx := context.Background()

	owner := saveUser(t, users, "Hal", "hal@example.com")
	_, err := users.Credit(ctx, owner.UserID, 100)
	require.NoError(t, err)

	tiny := &models.WithdrawalDB{
		ID:     uuid.New(),
		UserID: owner.UserID,
		Amount: 0.004,
		Method: "BTC",
		Status: models.WithdrawalPending,
		Date:   time.Now(),
	}
	require.NoError(t, repo.Save(ctx, tiny))

	got, err := repo.GetByID(ctx, tiny.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.004, got.Amount)

	balance, err := users.Debit(ctx, owner.UserID, 99.996)
	require.NoError(t, err)
	assert.InDelta(t, 0.004, balance, 1e-12)
	require.NoError(t, users.RecordWithdrawn(ctx, owner.UserID, 99.996))

	account, err := users.GetByID(ctx, owner.UserID)
	require.NoError(t, err)
	assert.InDelta(t, 0.004, account.Balance, 1e-12)
	assert.InDelta(t, 99.996, account.TotalWithdrawn, 1e-12)
}

package services_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/sbilibin2017/gw-evault/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThroughTx(ctrl *gomock.Controller) *services.MockTransactor {
	tx := services.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tx
}

func TestWithdrawalService_Submit(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		amount     float64
		method     string
		balance    float64
		balanceErr error
		saveErr    error
		wantErr    error
	}{
		{name: "success", amount: 100, method: "USDT", balance: 100},
		{name: "exceeds balance", amount: 100.01, method: "USDT", balance: 100, wantErr: services.ErrInsufficientBalance},
		{name: "zero amount", amount: 0, method: "USDT", wantErr: services.ErrValidation},
		{name: "blank method", amount: 1, method: " ", wantErr: services.ErrValidation},
		{name: "unknown user", amount: 1, method: "USDT", balanceErr: services.ErrNotFound, wantErr: services.ErrNotFound},
		{name: "save error", amount: 1, method: "USDT", balance: 5, saveErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := services.NewMockWithdrawalStore(ctrl)
			ledger := services.NewMockLedger(ctrl)
			pub := services.NewMockEventPublisher(ctrl)
			svc := services.NewWithdrawalService(store, ledger, services.NewMockTransactor(ctrl), pub)

			validInput := tt.amount > 0 && tt.method != " "
			if validInput {
				ledger.EXPECT().Balance(ctx, user.UserID).Return(tt.balance, tt.balanceErr)
			}
			var saved *models.WithdrawalDB
			if validInput && tt.balanceErr == nil && tt.amount <= tt.balance {
				store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, w *models.WithdrawalDB) error {
					saved = w
					return tt.saveErr
				})
			}
			if tt.wantErr == nil {
				pub.EXPECT().Publish(ctx, gomock.Any()).Return(nil)
			}

			w, err := svc.Submit(ctx, user.UserID, tt.amount, tt.method, " TXaddr ", true)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Nil(t, w)
				return
			}

			require.NoError(t, err)
			assert.Same(t, saved, w)
			assert.Equal(t, models.WithdrawalPending, w.Status)
			assert.Equal(t, models.TransactionWithdrawal, w.Type)
			assert.Equal(t, "TXaddr", w.Address)
			assert.True(t, w.IsSos)
			assert.Empty(t, w.TxID)
		})
	}
}

func TestWithdrawalService_Decide(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	owner := uuid.New()

	pending := func() *models.WithdrawalDB {
		return &models.WithdrawalDB{ID: id, UserID: owner, Amount: 40, Status: models.WithdrawalPending}
	}

	t.Run("approve settles ledger and stores tx id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockWithdrawalStore(ctrl)
		ledger := services.NewMockLedger(ctrl)
		pub := services.NewMockEventPublisher(ctrl)
		svc := services.NewWithdrawalService(store, ledger, passThroughTx(ctrl), pub)

		gomock.InOrder(
			store.EXPECT().GetByID(ctx, id).Return(pending(), nil),
			store.EXPECT().UpdateDecision(ctx, id, models.WithdrawalApproved, "0xhash").Return(true, nil),
			ledger.EXPECT().Settle(ctx, owner, 40.0).Return(nil),
		)
		pub.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev models.LifecycleEvent) error {
			assert.Equal(t, models.EventWithdrawalDecided, ev.Kind)
			assert.Equal(t, string(models.WithdrawalApproved), ev.Status)
			return nil
		})

		w, err := svc.Decide(ctx, admin, id, models.DecisionApprove, " 0xhash ")
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalApproved, w.Status)
		assert.Equal(t, "0xhash", w.TxID)
	})

	t.Run("reject leaves ledger untouched and drops tx id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockWithdrawalStore(ctrl)
		ledger := services.NewMockLedger(ctrl)
		svc := services.NewWithdrawalService(store, ledger, passThroughTx(ctrl), nil)

		store.EXPECT().GetByID(ctx, id).Return(pending(), nil)
		store.EXPECT().UpdateDecision(ctx, id, models.WithdrawalRejected, "").Return(true, nil)

		w, err := svc.Decide(ctx, admin, id, models.DecisionRejectWithdrawal, "0xhash")
		require.NoError(t, err)
		assert.Equal(t, models.WithdrawalRejected, w.Status)
		assert.Empty(t, w.TxID)
	})

	t.Run("already decided", func(t *testing.T) {
		for _, status := range []models.WithdrawalStatus{models.WithdrawalApproved, models.WithdrawalRejected} {
			ctrl := gomock.NewController(t)

			store := services.NewMockWithdrawalStore(ctrl)
			svc := services.NewWithdrawalService(store, services.NewMockLedger(ctrl), passThroughTx(ctrl), nil)

			decided := pending()
			decided.Status = status
			store.EXPECT().GetByID(ctx, id).Return(decided, nil)

			_, err := svc.Decide(ctx, admin, id, models.DecisionApprove, "")
			assert.ErrorIs(t, err, services.ErrAlreadyDecided)
			ctrl.Finish()
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockWithdrawalStore(ctrl)
		svc := services.NewWithdrawalService(store, services.NewMockLedger(ctrl), passThroughTx(ctrl), nil)

		store.EXPECT().GetByID(ctx, id).Return(pending(), nil)
		store.EXPECT().UpdateDecision(ctx, id, models.WithdrawalApproved, "").Return(false, nil)

		_, err := svc.Decide(ctx, admin, id, models.DecisionApprove, "")
		assert.ErrorIs(t, err, services.ErrAlreadyDecided)
	})

	t.Run("settlement failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockWithdrawalStore(ctrl)
		ledger := services.NewMockLedger(ctrl)
		svc := services.NewWithdrawalService(store, ledger, passThroughTx(ctrl), nil)

		store.EXPECT().GetByID(ctx, id).Return(pending(), nil)
		store.EXPECT().UpdateDecision(ctx, id, models.WithdrawalApproved, "").Return(true, nil)
		ledger.EXPECT().Settle(ctx, owner, 40.0).Return(services.ErrInsufficientBalance)

		_, err := svc.Decide(ctx, admin, id, models.DecisionApprove, "")
		assert.ErrorIs(t, err, services.ErrInsufficientBalance)
	})

	t.Run("guards", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockWithdrawalStore(ctrl)
		svc := services.NewWithdrawalService(store, services.NewMockLedger(ctrl), passThroughTx(ctrl), nil)

		_, err := svc.Decide(ctx, user, id, models.DecisionApprove, "")
		assert.ErrorIs(t, err, services.ErrForbidden)

		_, err = svc.Decide(ctx, admin, id, "Maybe", "")
		assert.ErrorIs(t, err, services.ErrValidation)

		store.EXPECT().GetByID(ctx, id).Return(nil, nil)
		_, err = svc.Decide(ctx, admin, id, models.DecisionApprove, "")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestWithdrawalService_ListAll(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockWithdrawalStore(ctrl)
	svc := services.NewWithdrawalService(store, nil, nil, nil)

	_, err := svc.ListAll(ctx, user, "")
	assert.ErrorIs(t, err, services.ErrForbidden)

	views := []models.WithdrawalView{{OwnerEmail: "alice@example.com"}}
	store.EXPECT().Search(ctx, "alice").Return(views, nil)

	got, err := svc.ListAll(ctx, admin, "  alice ")
	require.NoError(t, err)
	assert.Equal(t, views, got)

	mine := []models.WithdrawalDB{{ID: uuid.New()}}
	store.EXPECT().ListByUser(ctx, user.UserID).Return(mine, nil)

	gotMine, err := svc.ListMine(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, mine, gotMine)
}

// memLedgerStore is an in-memory LedgerStore with the same conditional debit as the SQL one.
type memLedgerStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.UserDB
}

func (m *memLedgerStore) GetByID(_ context.Context, id uuid.UUID) (*models.UserDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memLedgerStore) Credit(_ context.Context, id uuid.UUID, amount float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return 0, sql.ErrNoRows
	}
	u.Balance += amount
	return u.Balance, nil
}

func (m *memLedgerStore) Debit(_ context.Context, id uuid.UUID, amount float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || u.Balance < amount {
		return 0, sql.ErrNoRows
	}
	u.Balance -= amount
	return u.Balance, nil
}

func (m *memLedgerStore) RecordWithdrawn(_ context.Context, id uuid.UUID, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id].TotalWithdrawn += amount
	return nil
}

// memWithdrawalStore keeps withdrawals in memory with a conditional decision update.
type memWithdrawalStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.WithdrawalDB
}

func (m *memWithdrawalStore) Save(_ context.Context, w *models.WithdrawalDB) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *w
	m.items[w.ID] = &cp
	return nil
}

func (m *memWithdrawalStore) GetByID(_ context.Context, id uuid.UUID) (*models.WithdrawalDB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (m *memWithdrawalStore) ListByUser(context.Context, uuid.UUID) ([]models.WithdrawalDB, error) {
	return nil, nil
}

func (m *memWithdrawalStore) Search(context.Context, string) ([]models.WithdrawalView, error) {
	return nil, nil
}

func (m *memWithdrawalStore) UpdateDecision(_ context.Context, id uuid.UUID, status models.WithdrawalStatus, txID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.items[id]
	if !ok || w.Status != models.WithdrawalPending {
		return false, nil
	}
	w.Status, w.TxID = status, txID
	return true, nil
}

// serialTx runs units of work one at a time, like a serializable database.
type serialTx struct{ mu sync.Mutex }

func (s *serialTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx)
}

func TestWithdrawalLifecycle_SettlesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	ledgerStore := &memLedgerStore{users: map[uuid.UUID]*models.UserDB{owner: {UserID: owner, Balance: 100}}}
	ledger := services.NewLedgerService(ledgerStore, nil)
	svc := services.NewWithdrawalService(&memWithdrawalStore{items: map[uuid.UUID]*models.WithdrawalDB{}}, ledger, &serialTx{}, nil)

	w, err := svc.Submit(ctx, owner, 60, "USDT", "addr", false)
	require.NoError(t, err)

	account, _ := ledger.Account(ctx, owner)
	assert.Equal(t, 100.0, account.Balance, "submission must not reserve funds")

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Decide(ctx, admin, w.ID, models.DecisionApprove, "tx")
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, services.ErrAlreadyDecided)
	}
	assert.Equal(t, 1, ok)

	account, _ = ledger.Account(ctx, owner)
	assert.Equal(t, 40.0, account.Balance)
	assert.Equal(t, 60.0, account.TotalWithdrawn)

	// a second withdrawal larger than what is left fails at submission
	_, err = svc.Submit(ctx, owner, 50, "USDT", "addr", false)
	assert.ErrorIs(t, err, services.ErrInsufficientBalance)
}

func TestWithdrawalLifecycle_RejectLeavesLedger(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	ledgerStore := &memLedgerStore{users: map[uuid.UUID]*models.UserDB{owner: {UserID: owner, Balance: 100}}}
	ledger := services.NewLedgerService(ledgerStore, nil)
	svc := services.NewWithdrawalService(&memWithdrawalStore{items: map[uuid.UUID]*models.WithdrawalDB{}}, ledger, &serialTx{}, nil)

	w, err := svc.Submit(ctx, owner, 60, "USDT", "addr", false)
	require.NoError(t, err)

	_, err = svc.Decide(ctx, admin, w.ID, models.DecisionRejectWithdrawal, "")
	require.NoError(t, err)

	_, err = svc.Decide(ctx, admin, w.ID, models.DecisionApprove, "")
	assert.ErrorIs(t, err, services.ErrAlreadyDecided)

	account, _ := ledger.Account(ctx, owner)
	assert.Equal(t, 100.0, account.Balance)
	assert.Zero(t, account.TotalWithdrawn)
}

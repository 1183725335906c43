package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/handlers"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	profile     models.UserDB
	investments []models.InvestmentDB
	rejectWd    bool
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, handlers.TokenResponse{Token: "tok"})
	})
	mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, f.profile)
	})
	mux.HandleFunc("GET /investments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.investments)
	})
	mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.WithdrawalDB{})
	})
	mux.HandleFunc("GET /rates", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Rate{{Symbol: "USDT", Rate: 3.5, Period: models.PeriodDaily}})
	})
	mux.HandleFunc("POST /investments", func(w http.ResponseWriter, r *http.Request) {
		var req handlers.InvestmentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusCreated, models.InvestmentDB{
			ID: uuid.New(), UserID: f.profile.UserID, Amount: req.Amount, Method: req.Method, Status: models.InvestmentPending,
		})
	})
	mux.HandleFunc("POST /transactions/withdraw", func(w http.ResponseWriter, r *http.Request) {
		if f.rejectWd {
			writeJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Message: "Insufficient balance"})
			return
		}
		writeJSON(w, http.StatusCreated, models.WithdrawalDB{ID: uuid.New(), Amount: 1, Status: models.WithdrawalPending})
	})
	mux.HandleFunc("PUT /auth/profile/funds", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, handlers.BalanceResponse{Balance: 1100})
	})
	return mux
}

func newTestSession(t *testing.T, api *fakeAPI) (*Session, *Store) {
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)

	store := NewStore(State{})
	s := NewSession(New(srv.URL), store)
	s.newID = func() string { return "tmp-1" }
	return s, store
}

func TestSession_LoginLoadsState(t *testing.T) {
	api := &fakeAPI{
		profile:     models.UserDB{UserID: uuid.New(), Name: "Ann", Balance: 100},
		investments: []models.InvestmentDB{{ID: uuid.New(), Amount: 20}},
	}
	s, store := newTestSession(t, api)

	require.NoError(t, s.Login(context.Background(), "ann@example.com", "secret1"))

	state := store.State()
	assert.Equal(t, "tok", state.Token)
	require.NotNil(t, state.Profile)
	assert.Equal(t, "Ann", state.Profile.Name)
	assert.Len(t, state.Investments, 1)
	assert.Empty(t, state.Withdrawals)
	assert.Len(t, state.Rates, 1)

	require.NoError(t, s.AddFunds(context.Background(), 1000))
	assert.Equal(t, 1100.0, store.State().Profile.Balance)

	s.Logout()
	assert.Nil(t, store.State().Profile)
}

func TestSession_SubmitInvestmentIsOptimistic(t *testing.T) {
	s, store := newTestSession(t, &fakeAPI{})

	var sawPending bool
	store.Subscribe(func(state State) {
		if len(state.Investments) == 1 && state.Investments[0].Pending() {
			sawPending = true
		}
	})

	inv, err := s.SubmitInvestment(context.Background(), 500, "USDT", "")
	require.NoError(t, err)

	assert.True(t, sawPending)
	state := store.State()
	require.Len(t, state.Investments, 1)
	assert.False(t, state.Investments[0].Pending())
	assert.Equal(t, inv.ID, state.Investments[0].Record.ID)
}

func TestSession_FailedWithdrawalIsDiscarded(t *testing.T) {
	s, store := newTestSession(t, &fakeAPI{rejectWd: true})

	_, err := s.Withdraw(context.Background(), 1e6, "USDT", "T1", false)
	require.Error(t, err)

	state := store.State()
	assert.Empty(t, state.Withdrawals)
	assert.Contains(t, state.LastError, "Insufficient balance")
}

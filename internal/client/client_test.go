package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-evault/internal/handlers"
	"github.com/sbilibin2017/gw-evault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestClient_BearerAndResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rates", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, []models.Rate{{Symbol: "BTC", Rate: 1, Period: models.PeriodMonthly}})
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	c.SetToken("tok")

	rates, err := c.Rates(context.Background())
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "BTC", rates[0].Symbol)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Message: "Insufficient balance"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Withdraw(context.Background(), 10, "USDT", "T1", false)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Insufficient balance", apiErr.Message)
}

func TestClient_RequestBodies(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/investments/" + id.String():
			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "0xnew", req["walletAddress"])
			assert.NotContains(t, req, "status")
			writeJSON(w, http.StatusOK, models.InvestmentDB{ID: id, WalletAddress: "0xnew"})
		case "/transactions/admin":
			assert.Equal(t, "ann smith", r.URL.Query().Get("search"))
			writeJSON(w, http.StatusOK, []models.WithdrawalView{})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	address := "0xnew"
	inv, err := c.UpdateInvestment(ctx, id, nil, &address)
	require.NoError(t, err)
	assert.Equal(t, "0xnew", inv.WalletAddress)

	views, err := c.SearchWithdrawals(ctx, "ann smith")
	require.NoError(t, err)
	assert.Empty(t, views)
}

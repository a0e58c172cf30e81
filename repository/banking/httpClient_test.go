package bankingrepo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func quietLog() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newTestRepo(t *testing.T, h http.HandlerFunc, opts Options) Repo {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts.BaseURL = srv.URL + "/api/"
	return NewHTTP(opts, srv.Client(), quietLog())
}

const txJSON = `{"id":"tx-1","accountId":"acc-1","type":"Withdrawal","amount":10.00,` +
	`"description":"rental","timestamp":"2026-01-02T10:00:00Z","balance":90.50}`

func TestVerifyTransaction_OK(t *testing.T) {
	var gotPath, gotAuth, gotAccept string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotAuth, gotAccept = r.URL.Path, r.Header.Get("Authorization"), r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, txJSON)
	}, Options{APIKey: "secret"})

	tx, err := repo.VerifyTransaction(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Equal(t, "/api/transactions/tx-1", gotPath)
	require.Equal(t, "Bearer secret", gotAuth)
	require.Equal(t, "application/json", gotAccept)

	require.Equal(t, "tx-1", tx.ID)
	require.Equal(t, "acc-1", tx.AccountID)
	require.True(t, tx.Amount.Equal(decimal.NewFromInt(10)))
	require.True(t, tx.Balance.Equal(decimal.RequireFromString("90.5")))
	require.True(t, tx.Timestamp.Equal(time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)))
}

func TestVerifyTransaction_VerifyEndpointNoKey(t *testing.T) {
	var gotPath, gotAuth string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotAuth = r.URL.Path, r.Header.Get("Authorization")
		_, _ = io.WriteString(w, txJSON)
	}, Options{UseVerifyEndpoint: true})

	_, err := repo.VerifyTransaction(context.Background(), "tx-1")
	require.NoError(t, err)
	require.Equal(t, "/api/transactions/tx-1/verify", gotPath)
	require.Empty(t, gotAuth)
}

func TestVerifyTransaction_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found", http.StatusNotFound, `{}`, ErrTransactionNotFound},
		{"empty id", http.StatusOK, `{"id":""}`, ErrTransactionNotFound},
		{"server error", http.StatusInternalServerError, `oops`, ErrUpstream},
		{"unauthorized", http.StatusUnauthorized, ``, ErrUpstream},
		{"bad json", http.StatusOK, `{"id":`, ErrUpstream},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}, Options{})

			tx, err := repo.VerifyTransaction(context.Background(), "tx-1")
			require.Nil(t, tx)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestVerifyTransaction_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	repo := NewHTTP(Options{BaseURL: base}, &http.Client{Timeout: time.Second}, quietLog())
	_, err := repo.VerifyTransaction(context.Background(), "tx-1")
	require.ErrorIs(t, err, ErrUpstream)
	require.NotErrorIs(t, err, ErrTransactionNotFound)
}

func TestFindMatchingTransaction(t *testing.T) {
	const list = `{"items":[
		{"id":"old","type":"Withdrawal","amount":10.00,"timestamp":"2026-01-01T08:00:00Z"},
		{"id":"deposit","type":"Deposit","amount":10.00,"timestamp":"2026-01-02T11:00:00Z"},
		{"id":"atm","type":"ATM debit","amount":10.01,"timestamp":"2026-01-02T12:00:00Z"},
		{"id":"w","type":"withdrawal","amount":9.99,"timestamp":"2026-01-02T10:00:00Z"}
	]}`
	var gotPath string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, list)
	}, Options{})

	since := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	tx, err := repo.FindMatchingTransaction(context.Background(), "acc-1", decimal.NewFromInt(10), since)
	require.NoError(t, err)
	require.Equal(t, "/api/accounts/acc-1/transactions", gotPath)
	require.Equal(t, "atm", tx.ID)

	_, err = repo.FindMatchingTransaction(context.Background(), "acc-1", decimal.NewFromInt(50), since)
	require.ErrorIs(t, err, ErrTransactionNotFound)
}

package bankingrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"videostore/model"

	"github.com/shopspring/decimal"
)

type Options struct {
	BaseURL string
	APIKey  string
	// UseVerifyEndpoint switches lookups to GET /transactions/{id}/verify.
	UseVerifyEndpoint bool
}

type httpRepo struct {
	baseURL      string
	apiKey       string
	verifySuffix string
	client       *http.Client
	log          *slog.Logger
}

func NewHTTP(opts Options, client *http.Client, log *slog.Logger) Repo {
	if log == nil {
		log = slog.Default()
	}
	r := &httpRepo{
		baseURL: strings.TrimSuffix(strings.TrimSpace(opts.BaseURL), "/"),
		apiKey:  strings.TrimSpace(opts.APIKey),
		client:  client,
		log:     log.With("component", "banking"),
	}
	if opts.UseVerifyEndpoint {
		r.verifySuffix = "/verify"
	}
	return r
}

func (r *httpRepo) VerifyTransaction(ctx context.Context, transactionID string) (*model.BankingTransaction, error) {
	r.log.Info("verifying transaction", "transaction_id", transactionID)

	path := "/transactions/" + url.PathEscape(transactionID) + r.verifySuffix
	var tx model.BankingTransaction
	if err := r.get(ctx, path, &tx); err != nil {
		return nil, err
	}
	if tx.ID == "" {
		r.log.Warn("banking returned an empty transaction", "transaction_id", transactionID)
		return nil, ErrTransactionNotFound
	}

	r.log.Info("transaction verified", "transaction_id", tx.ID, "amount", tx.Amount.String())
	return &tx, nil
}

func (r *httpRepo) FindMatchingTransaction(ctx context.Context, accountID string, amount decimal.Decimal, since time.Time) (*model.BankingTransaction, error) {
	r.log.Info("searching matching transaction",
		"account_id", accountID,
		"amount", amount.String(),
		"since", since.Format(time.RFC3339),
	)

	var list transactionList
	if err := r.get(ctx, "/accounts/"+url.PathEscape(accountID)+"/transactions", &list); err != nil {
		return nil, err
	}

	match := SelectMatch(list.Items, amount, since)
	if match == nil {
		r.log.Info("no matching transaction", "account_id", accountID, "candidates", len(list.Items))
		return nil, ErrTransactionNotFound
	}
	r.log.Info("found matching transaction", "account_id", accountID, "transaction_id", match.ID)
	return match, nil
}

func (r *httpRepo) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Error("banking request failed", "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		r.log.Warn("banking returned not found", "path", path)
		return ErrTransactionNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.log.Warn("banking returned unexpected status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		r.log.Error("banking response decode failed", "path", path, "err", err)
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

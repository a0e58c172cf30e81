package bankingrepo

import (
	"context"
	"errors"
	"time"

	"videostore/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionNotFound means the banking API answered and has no such
	// transaction, or an account search produced no eligible debit.
	ErrTransactionNotFound = errors.New("banking: transaction not found")
	// ErrUpstream wraps every failure to get a usable answer: transport errors,
	// unexpected status codes and undecodable bodies.
	ErrUpstream = errors.New("banking: upstream unavailable")
)

type Repo interface {
	VerifyTransaction(ctx context.Context, transactionID string) (*model.BankingTransaction, error)
	FindMatchingTransaction(ctx context.Context, accountID string, amount decimal.Decimal, since time.Time) (*model.BankingTransaction, error)
}

type transactionList struct {
	Items []model.BankingTransaction `json:"items"`
}

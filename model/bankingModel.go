// model/bankingModel.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankingTransaction mirrors the transaction object served by the banking API.
type BankingTransaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	Balance     decimal.Decimal `json:"balance"`
}

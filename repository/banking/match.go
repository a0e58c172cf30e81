package bankingrepo

import (
	"strings"
	"time"

	"videostore/model"

	"github.com/shopspring/decimal"
)

// AmountTolerance is the largest absolute difference still treated as equal.
var AmountTolerance = decimal.New(1, -2)

// AmountsMatch reports whether a and b differ by no more than AmountTolerance.
func AmountsMatch(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(AmountTolerance)
}

func isDebit(txType string) bool {
	t := strings.ToLower(txType)
	return strings.Contains(t, "withdrawal") || strings.Contains(t, "atm")
}

// SelectMatch picks the most recent withdrawal or ATM debit made at or after
// since whose amount matches. It returns nil when nothing qualifies.
func SelectMatch(items []model.BankingTransaction, amount decimal.Decimal, since time.Time) *model.BankingTransaction {
	var best *model.BankingTransaction
	for i := range items {
		tx := &items[i]
		if tx.Timestamp.Before(since) || !AmountsMatch(tx.Amount, amount) || !isDebit(tx.Type) {
			continue
		}
		if best == nil || tx.Timestamp.After(best.Timestamp) {
			best = tx
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

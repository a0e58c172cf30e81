package rental

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRentalReq struct {
	CustomerID   uuid.UUID        `json:"customer_id" validate:"required"`
	VideoID      uuid.UUID        `json:"video_id" validate:"required"`
	RentalAmount *decimal.Decimal `json:"rental_amount" validate:"required"`
}

type ReturnRentalReq struct {
	LateFee decimal.Decimal `json:"late_fee"`
}

// ConfirmPaymentReq takes either a transaction id or an account to search.
type ConfirmPaymentReq struct {
	TransactionID string `json:"transaction_id" validate:"required_without=AccountID"`
	AccountID     string `json:"account_id" validate:"required_without=TransactionID"`
}

// model/rentalModel.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

// RentalPeriod is the fixed window between rented_at and due_date.
const RentalPeriod = 7 * 24 * time.Hour

type Rental struct {
	ID                   uuid.UUID       `json:"id"`
	CustomerID           uuid.UUID       `json:"customer_id"`
	VideoID              uuid.UUID       `json:"video_id"`
	RentedAt             time.Time       `json:"rented_at"`
	DueDate              time.Time       `json:"due_date"`
	ReturnedAt           *time.Time      `json:"returned_at,omitempty"`
	LateFee              decimal.Decimal `json:"late_fee"`
	RentalAmount         decimal.Decimal `json:"rental_amount"`
	PaymentStatus        PaymentStatus   `json:"payment_status"`
	PaymentTransactionID *string         `json:"payment_transaction_id,omitempty"`
}

// Active reports whether the video has not been returned yet.
func (r Rental) Active() bool { return r.ReturnedAt == nil }

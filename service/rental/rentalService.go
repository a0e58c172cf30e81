package rental

import (
	"context"
	"errors"
	"time"

	"videostore/model"
	bankingrepo "videostore/repository/banking"
	rentalrepo "videostore/repository/rental"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repo interface {
	Insert(ctx context.Context, r *model.Rental) error
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
	ActiveForVideo(ctx context.Context, videoID uuid.UUID) (*model.Rental, error)
	ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Rental, error)
	ListOverdue(ctx context.Context, now time.Time) ([]model.Rental, error)
	MarkReturned(ctx context.Context, id uuid.UUID, at time.Time, lateFee decimal.Decimal) (bool, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, transactionID string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentReq struct {
	CustomerID   uuid.UUID
	VideoID      uuid.UUID
	RentalAmount decimal.Decimal
}

type Confirmation struct {
	RentalID      uuid.UUID
	TransactionID string
	Amount        decimal.Decimal
}

type Service interface {
	// RentVideo creates a Pending rental unless the video is already rented out.
	RentVideo(ctx context.Context, req RentReq) (*model.Rental, error)
	// ReturnVideo closes an active rental with a caller-computed late fee.
	ReturnVideo(ctx context.Context, rentalID uuid.UUID, lateFee decimal.Decimal) error
	// ConfirmPayment verifies transactionID with the bank and marks the rental Paid.
	ConfirmPayment(ctx context.Context, rentalID uuid.UUID, transactionID string) (*Confirmation, error)
	// ConfirmPaymentFromAccount looks for the payment in an account's history instead.
	ConfirmPaymentFromAccount(ctx context.Context, rentalID uuid.UUID, accountID string) (*Confirmation, error)
	FindMatchingTransaction(ctx context.Context, accountID string, amount decimal.Decimal, since time.Time) (*model.BankingTransaction, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)
	ActiveForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Rental, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ----- Service implementation -----

type service struct {
	r   Repo
	b   bankingrepo.Repo
	now func() time.Time
}

func New(r Repo, b bankingrepo.Repo) Service {
	return &service{r: r, b: b, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) RentVideo(ctx context.Context, req RentReq) (*model.Rental, error) {
	if req.CustomerID == uuid.Nil || req.VideoID == uuid.Nil || !storableAmount(req.RentalAmount) {
		return nil, makeErr(ErrBadInput)
	}

	existing, err := s.r.ActiveForVideo(ctx, req.VideoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, makeErr(ErrAlreadyRented)
	}

	rentedAt := s.now()
	rt := &model.Rental{
		ID:            uuid.New(),
		CustomerID:    req.CustomerID,
		VideoID:       req.VideoID,
		RentedAt:      rentedAt,
		DueDate:       rentedAt.Add(model.RentalPeriod),
		LateFee:       decimal.Zero,
		RentalAmount:  req.RentalAmount,
		PaymentStatus: model.PaymentPending,
	}
	if err := s.r.Insert(ctx, rt); err != nil {
		// lost the race against a concurrent rent of the same video
		if errors.Is(err, rentalrepo.ErrActiveRentalExists) {
			return nil, makeErr(ErrAlreadyRented)
		}
		return nil, err
	}
	return rt, nil
}

func (s *service) ReturnVideo(ctx context.Context, rentalID uuid.UUID, lateFee decimal.Decimal) error {
	if !storableAmount(lateFee) {
		return makeErr(ErrBadInput)
	}
	ok, err := s.r.MarkReturned(ctx, rentalID, s.now(), lateFee)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrNotFoundOrAlreadyReturned)
	}
	return nil
}

func (s *service) ConfirmPayment(ctx context.Context, rentalID uuid.UUID, transactionID string) (*Confirmation, error) {
	if transactionID == "" {
		return nil, makeErr(ErrBadInput)
	}
	rt, err := s.payable(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	tx, err := s.b.VerifyTransaction(ctx, transactionID)
	if err != nil {
		return nil, bankingErr(err)
	}
	if !bankingrepo.AmountsMatch(tx.Amount, rt.RentalAmount) {
		return nil, &AmountMismatchError{Expected: rt.RentalAmount, Actual: tx.Amount}
	}
	return s.markPaid(ctx, rt, transactionID, tx.Amount)
}

func (s *service) ConfirmPaymentFromAccount(ctx context.Context, rentalID uuid.UUID, accountID string) (*Confirmation, error) {
	if accountID == "" {
		return nil, makeErr(ErrBadInput)
	}
	rt, err := s.payable(ctx, rentalID)
	if err != nil {
		return nil, err
	}

	tx, err := s.FindMatchingTransaction(ctx, accountID, rt.RentalAmount, rt.RentedAt)
	if err != nil {
		return nil, err
	}
	return s.markPaid(ctx, rt, tx.ID, tx.Amount)
}

func (s *service) FindMatchingTransaction(ctx context.Context, accountID string, amount decimal.Decimal, since time.Time) (*model.BankingTransaction, error) {
	tx, err := s.b.FindMatchingTransaction(ctx, accountID, amount, since)
	if err != nil {
		return nil, bankingErr(err)
	}
	return tx, nil
}

// maxAmount is the first value a NUMERIC(12,2) column cannot hold.
var maxAmount = decimal.New(1, 10)

// storableAmount accepts non-negative amounts with at most two decimal places
// that fit the rentals money columns, so both stores keep exactly what they were given.
func storableAmount(a decimal.Decimal) bool {
	return !a.IsNegative() && a.LessThan(maxAmount) && a.Equal(a.Round(2))
}

// payable loads a rental that can still be paid.
func (s *service) payable(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	rt, err := s.r.Get(ctx, rentalID)
	if errors.Is(err, rentalrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if rt.PaymentStatus == model.PaymentPaid {
		return nil, makeErr(ErrAlreadyPaid)
	}
	return rt, nil
}

func (s *service) markPaid(ctx context.Context, rt *model.Rental, transactionID string, amount decimal.Decimal) (*Confirmation, error) {
	ok, err := s.r.ConfirmPayment(ctx, rt.ID, transactionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrConfirmationFailed)
	}
	return &Confirmation{RentalID: rt.ID, TransactionID: transactionID, Amount: amount}, nil
}

func bankingErr(err error) error {
	if errors.Is(err, bankingrepo.ErrTransactionNotFound) {
		return wrapErr(ErrTransactionNotFound, err)
	}
	return wrapErr(ErrBankingUnavailable, err)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	rt, err := s.r.Get(ctx, id)
	if errors.Is(err, rentalrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	return rt, err
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) { return s.r.List(ctx) }

func (s *service) ActiveForCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Rental, error) {
	return s.r.ListActiveByCustomer(ctx, customerID)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.r.Delete(ctx, id)
	if errors.Is(err, rentalrepo.ErrNotFound) {
		return makeErr(ErrNotFound)
	}
	return err
}

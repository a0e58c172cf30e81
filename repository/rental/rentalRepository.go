// repository/rental/rentalRepository.go
package rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"videostore/model"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("rental not found")
	// ErrActiveRentalExists is returned by Insert when the video already has an
	// unreturned rental.
	ErrActiveRentalExists = errors.New("video already has an active rental")
)

const activePerVideoIndex = "rentals_one_active_per_video"

type Repo interface {
	Insert(ctx context.Context, r *model.Rental) error
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	List(ctx context.Context) ([]model.Rental, error)

	// ActiveForVideo returns nil, nil when the video is not rented out.
	ActiveForVideo(ctx context.Context, videoID uuid.UUID) (*model.Rental, error)
	ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Rental, error)
	ListOverdue(ctx context.Context, now time.Time) ([]model.Rental, error)

	// MarkReturned and ConfirmPayment are conditional updates; false means no row matched.
	MarkReturned(ctx context.Context, id uuid.UUID, at time.Time, lateFee decimal.Decimal) (bool, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, transactionID string) (bool, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) Repo { return &repo{db: db} }

const selectCols = `
	id, customer_id, video_id, rented_at, due_date, returned_at,
	late_fee, payment_transaction_id, payment_status, rental_amount`

func scanRental(row pgx.Row) (*model.Rental, error) {
	var (
		r      model.Rental
		status string
	)
	err := row.Scan(
		&r.ID, &r.CustomerID, &r.VideoID, &r.RentedAt, &r.DueDate, &r.ReturnedAt,
		&r.LateFee, &r.PaymentTransactionID, &status, &r.RentalAmount,
	)
	if err != nil {
		return nil, err
	}
	r.PaymentStatus = model.PaymentStatus(status)
	r.RentedAt = r.RentedAt.UTC()
	r.DueDate = r.DueDate.UTC()
	if r.ReturnedAt != nil {
		t := r.ReturnedAt.UTC()
		r.ReturnedAt = &t
	}
	return &r, nil
}

func (r *repo) query(ctx context.Context, q string, args ...any) ([]model.Rental, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Rental{}
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rt)
	}
	return out, rows.Err()
}

func (r *repo) Insert(ctx context.Context, rt *model.Rental) error {
	// decimals are sent as text so pgx encodes them straight into NUMERIC
	const q = `
		INSERT INTO rentals (id, customer_id, video_id, rented_at, due_date, returned_at,
			late_fee, payment_transaction_id, payment_status, rental_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, q,
		rt.ID, rt.CustomerID, rt.VideoID, rt.RentedAt, rt.DueDate, rt.ReturnedAt,
		rt.LateFee.String(), rt.PaymentTransactionID, string(rt.PaymentStatus), rt.RentalAmount.String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == activePerVideoIndex {
			return ErrActiveRentalExists
		}
		return fmt.Errorf("insert rental: %w", err)
	}
	return nil
}

func (r *repo) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	q := `SELECT` + selectCols + `
		FROM rentals
		WHERE id = $1`
	rt, err := scanRental(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rt, err
}

func (r *repo) List(ctx context.Context) ([]model.Rental, error) {
	q := `SELECT` + selectCols + `
		FROM rentals
		ORDER BY rented_at DESC, id`
	return r.query(ctx, q)
}

func (r *repo) ActiveForVideo(ctx context.Context, videoID uuid.UUID) (*model.Rental, error) {
	q := `SELECT` + selectCols + `
		FROM rentals
		WHERE video_id = $1
		AND returned_at IS NULL`
	rt, err := scanRental(r.db.QueryRow(ctx, q, videoID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return rt, err
}

func (r *repo) ListActiveByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Rental, error) {
	q := `SELECT` + selectCols + `
		FROM rentals
		WHERE customer_id = $1
		AND returned_at IS NULL
		ORDER BY rented_at DESC, id`
	return r.query(ctx, q, customerID)
}

func (r *repo) ListOverdue(ctx context.Context, now time.Time) ([]model.Rental, error) {
	q := `SELECT` + selectCols + `
		FROM rentals
		WHERE returned_at IS NULL
		AND due_date < $1
		ORDER BY due_date, id`
	return r.query(ctx, q, now)
}

func (r *repo) MarkReturned(ctx context.Context, id uuid.UUID, at time.Time, lateFee decimal.Decimal) (bool, error) {
	const q = `
		UPDATE rentals
		SET returned_at = $2,
			late_fee = $3
		WHERE id = $1
		AND returned_at IS NULL`
	tag, err := r.db.Exec(ctx, q, id, at, lateFee.String())
	if err != nil {
		return false, fmt.Errorf("mark rental returned: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) ConfirmPayment(ctx context.Context, id uuid.UUID, transactionID string) (bool, error) {
	// Guard: only a still-pending rental can be paid.
	const q = `
		UPDATE rentals
		SET payment_transaction_id = $2,
			payment_status = 'Paid'
		WHERE id = $1
		AND payment_status = 'Pending'`
	tag, err := r.db.Exec(ctx, q, id, transactionID)
	if err != nil {
		return false, fmt.Errorf("confirm rental payment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

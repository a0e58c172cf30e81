package rental

import (
	"context"
	"sort"
	"sync"
	"time"

	"videostore/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memory keeps every check-then-write under one mutex, which gives the same
// guarantees as the partial unique index and the conditional updates of the
// Postgres store.
type memory struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]model.Rental
}

func NewMemory() Repo { return &memory{rows: map[uuid.UUID]model.Rental{}} }

func clone(r model.Rental) model.Rental {
	if r.ReturnedAt != nil {
		t := *r.ReturnedAt
		r.ReturnedAt = &t
	}
	if r.PaymentTransactionID != nil {
		s := *r.PaymentTransactionID
		r.PaymentTransactionID = &s
	}
	return r
}

func (m *memory) Insert(_ context.Context, r *model.Rental) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ReturnedAt == nil {
		for _, existing := range m.rows {
			if existing.VideoID == r.VideoID && existing.Active() {
				return ErrActiveRentalExists
			}
		}
	}
	m.rows[r.ID] = clone(*r)
	return nil
}

func (m *memory) Get(_ context.Context, id uuid.UUID) (*model.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	r = clone(r)
	return &r, nil
}

func (m *memory) filter(keep func(model.Rental) bool, less func(a, b model.Rental) bool) []model.Rental {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []model.Rental{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, clone(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func newestFirst(a, b model.Rental) bool {
	if !a.RentedAt.Equal(b.RentedAt) {
		return a.RentedAt.After(b.RentedAt)
	}
	return a.ID.String() < b.ID.String()
}

func (m *memory) List(_ context.Context) ([]model.Rental, error) {
	return m.filter(func(model.Rental) bool { return true }, newestFirst), nil
}

func (m *memory) ActiveForVideo(_ context.Context, videoID uuid.UUID) (*model.Rental, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rows {
		if r.VideoID == videoID && r.Active() {
			r = clone(r)
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memory) ListActiveByCustomer(_ context.Context, customerID uuid.UUID) ([]model.Rental, error) {
	return m.filter(func(r model.Rental) bool {
		return r.CustomerID == customerID && r.Active()
	}, newestFirst), nil
}

func (m *memory) ListOverdue(_ context.Context, now time.Time) ([]model.Rental, error) {
	return m.filter(func(r model.Rental) bool {
		return r.Active() && r.DueDate.Before(now)
	}, func(a, b model.Rental) bool {
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return a.ID.String() < b.ID.String()
	}), nil
}

func (m *memory) MarkReturned(_ context.Context, id uuid.UUID, at time.Time, lateFee decimal.Decimal) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || !r.Active() {
		return false, nil
	}
	r.ReturnedAt = &at
	r.LateFee = lateFee
	m.rows[id] = r
	return true, nil
}

func (m *memory) ConfirmPayment(_ context.Context, id uuid.UUID, transactionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok || r.PaymentStatus != model.PaymentPending {
		return false, nil
	}
	r.PaymentStatus = model.PaymentPaid
	r.PaymentTransactionID = &transactionID
	m.rows[id] = r
	return true, nil
}

func (m *memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

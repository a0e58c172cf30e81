package rental

import (
	"context"
	"sync"
	"testing"
	"time"

	"videostore/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRental(videoID uuid.UUID, rentedAt time.Time) *model.Rental {
	return &model.Rental{
		ID:            uuid.New(),
		CustomerID:    uuid.New(),
		VideoID:       videoID,
		RentedAt:      rentedAt,
		DueDate:       rentedAt.Add(model.RentalPeriod),
		LateFee:       decimal.Zero,
		RentalAmount:  decimal.RequireFromString("10.00"),
		PaymentStatus: model.PaymentPending,
	}
}

func TestMemory_InsertRejectsSecondActiveRental(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	video := uuid.New()

	require.NoError(t, m.Insert(ctx, newRental(video, time.Now().UTC())))
	require.ErrorIs(t, m.Insert(ctx, newRental(video, time.Now().UTC())), ErrActiveRentalExists)

	all, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestMemory_ConcurrentInsertOneWins(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	video := uuid.New()

	const workers = 25
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Insert(ctx, newRental(video, time.Now().UTC())); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	active, err := m.ActiveForVideo(ctx, video)
	require.NoError(t, err)
	require.NotNil(t, active)
}

func TestMemory_ReturnedVideoCanBeRentedAgain(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	video := uuid.New()
	first := newRental(video, time.Now().UTC())
	require.NoError(t, m.Insert(ctx, first))

	ok, err := m.MarkReturned(ctx, first.ID, time.Now().UTC(), decimal.Zero)
	require.NoError(t, err)
	require.True(t, ok)

	active, err := m.ActiveForVideo(ctx, video)
	require.NoError(t, err)
	require.Nil(t, active)
	require.NoError(t, m.Insert(ctx, newRental(video, time.Now().UTC())))
}

func TestMemory_MarkReturnedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	r := newRental(uuid.New(), time.Now().UTC())
	require.NoError(t, m.Insert(ctx, r))

	firstAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ok, err := m.MarkReturned(ctx, r.ID, firstAt, decimal.RequireFromString("2.50"))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.MarkReturned(ctx, r.ID, firstAt.Add(time.Hour), decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	require.False(t, ok)

	got, err := m.Get(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReturnedAt)
	require.True(t, got.ReturnedAt.Equal(firstAt))
	require.True(t, got.LateFee.Equal(decimal.RequireFromString("2.50")))

	ok, err = m.MarkReturned(ctx, uuid.New(), firstAt, decimal.Zero)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemory_ConfirmPaymentOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	r := newRental(uuid.New(), time.Now().UTC())
	require.NoError(t, m.Insert(ctx, r))

	const workers = 10
	results := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := m.ConfirmPayment(ctx, r.ID, "tx-"+uuid.NewString())
			results <- ok && err == nil
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	require.Equal(t, 1, wins)

	got, err := m.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, got.PaymentStatus)
	require.NotNil(t, got.PaymentTransactionID)
}

func TestMemory_ListsAndOverdue(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	customer := uuid.New()

	late := newRental(uuid.New(), now.Add(-10*24*time.Hour))
	late.CustomerID = customer
	fresh := newRental(uuid.New(), now.Add(-time.Hour))
	fresh.CustomerID = customer
	returned := newRental(uuid.New(), now.Add(-20*24*time.Hour))
	returnedAt := now.Add(-15 * 24 * time.Hour)
	returned.ReturnedAt = &returnedAt
	returned.CustomerID = customer

	for _, r := range []*model.Rental{late, fresh, returned} {
		require.NoError(t, m.Insert(ctx, r))
	}

	all, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, fresh.ID, all[0].ID)

	active, err := m.ListActiveByCustomer(ctx, customer)
	require.NoError(t, err)
	require.Len(t, active, 2)

	overdue, err := m.ListOverdue(ctx, now)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, late.ID, overdue[0].ID)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	r := newRental(uuid.New(), time.Now().UTC())
	require.NoError(t, m.Insert(ctx, r))

	got, err := m.Get(ctx, r.ID)
	require.NoError(t, err)
	got.PaymentStatus = model.PaymentRefunded

	again, err := m.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPending, again.PaymentStatus)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	r := newRental(uuid.New(), time.Now().UTC())
	require.NoError(t, m.Insert(ctx, r))

	require.NoError(t, m.Delete(ctx, r.ID))
	require.ErrorIs(t, m.Delete(ctx, r.ID), ErrNotFound)
	_, err := m.Get(ctx, r.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

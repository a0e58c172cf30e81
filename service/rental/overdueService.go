package rental

import (
	"context"
	"time"

	"videostore/model"
)

// Overdue lists active rentals whose due date has already passed.
type Overdue interface {
	ListOverdue(ctx context.Context) ([]model.Rental, error)
}

type overdue struct {
	r   Repo
	now func() time.Time
}

func NewOverdue(r Repo) Overdue {
	return &overdue{r: r, now: func() time.Time { return time.Now().UTC() }}
}

func (o *overdue) ListOverdue(ctx context.Context) ([]model.Rental, error) {
	return o.r.ListOverdue(ctx, o.now())
}

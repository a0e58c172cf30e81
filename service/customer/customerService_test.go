package customersvc_test

import (
	"context"
	"errors"
	"testing"

	"videostore/model"
	customerrepo "videostore/repository/customer"
	customersvc "videostore/service/customer"

	"github.com/google/uuid"
)

type repoMock struct {
	createFn func(ctx context.Context, c *model.Customer) error
	listFn   func(ctx context.Context) ([]model.Customer, error)
	byIDFn   func(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	updateFn func(ctx context.Context, c *model.Customer) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *repoMock) Create(ctx context.Context, c *model.Customer) error { return m.createFn(ctx, c) }
func (m *repoMock) List(ctx context.Context) ([]model.Customer, error)  { return m.listFn(ctx) }
func (m *repoMock) ByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, c *model.Customer) error { return m.updateFn(ctx, c) }
func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) error      { return m.deleteFn(ctx, id) }

func TestCreate_Validation(t *testing.T) {
	s := customersvc.New(&repoMock{})
	ctx := context.Background()
	for _, tc := range []struct{ name, email string }{
		{"", "a@b.co"},
		{"Ada", ""},
		{"Ada", "not-an-email"},
		{"Bob", "Bob <bob@example.com>"},
		{"Bob", `"x" <a@b>`},
		{"Bob", "a@b"},
	} {
		if _, err := s.Create(ctx, tc.name, tc.email); !errors.Is(err, customersvc.ErrBadInput) {
			t.Fatalf("Create(%q,%q): got %v, want ErrBadInput", tc.name, tc.email, err)
		}
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{createFn: func(ctx context.Context, c *model.Customer) error {
		if c.Name != "Ada" || c.Email != "ada@example.com" || c.ID == uuid.Nil {
			return errors.New("bad args")
		}
		return nil
	}}
	c, err := customersvc.New(m).Create(context.Background(), " Ada ", " ada@example.com")
	if err != nil || c.Name != "Ada" {
		t.Fatalf("got %+v %v", c, err)
	}
}

func TestNotFoundMapping(t *testing.T) {
	m := &repoMock{
		byIDFn:   func(ctx context.Context, id uuid.UUID) (*model.Customer, error) { return nil, customerrepo.ErrNotFound },
		updateFn: func(ctx context.Context, c *model.Customer) error { return customerrepo.ErrNotFound },
		deleteFn: func(ctx context.Context, id uuid.UUID) error { return customerrepo.ErrNotFound },
	}
	s := customersvc.New(m)
	ctx := context.Background()

	if _, err := s.Get(ctx, uuid.New()); !errors.Is(err, customersvc.ErrNotFound) {
		t.Fatalf("Get: got %v", err)
	}
	if _, err := s.Update(ctx, uuid.New(), "Ada", "ada@example.com"); !errors.Is(err, customersvc.ErrNotFound) {
		t.Fatalf("Update: got %v", err)
	}
	if err := s.Delete(ctx, uuid.New()); !errors.Is(err, customersvc.ErrNotFound) {
		t.Fatalf("Delete: got %v", err)
	}
}

func TestList(t *testing.T) {
	m := &repoMock{listFn: func(ctx context.Context) ([]model.Customer, error) {
		return []model.Customer{{ID: uuid.New(), Name: "Ada"}}, nil
	}}
	rows, err := customersvc.New(m).List(context.Background())
	if err != nil || len(rows) != 1 {
		t.Fatalf("List got %v %v", rows, err)
	}
}

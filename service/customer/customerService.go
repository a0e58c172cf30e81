package customersvc

import (
	"context"
	"errors"
	"strings"

	"videostore/model"
	customerrepo "videostore/repository/customer"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrBadInput = errors.New("bad input")
	ErrNotFound = errors.New("customer not found")
)

type Repo interface {
	Create(ctx context.Context, c *model.Customer) error
	List(ctx context.Context) ([]model.Customer, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, name, email string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, id uuid.UUID, name, email string) (*model.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r} }

var validate = validator.New()

func normalize(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return "", "", ErrBadInput
	}
	if err := validate.Var(email, "required,email"); err != nil {
		return "", "", ErrBadInput
	}
	return name, email, nil
}

func (s *service) Create(ctx context.Context, name, email string) (*model.Customer, error) {
	name, email, err := normalize(name, email)
	if err != nil {
		return nil, err
	}
	c := &model.Customer{ID: uuid.New(), Name: name, Email: email}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]model.Customer, error) { return s.r.List(ctx) }

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	c, err := s.r.ByID(ctx, id)
	return c, mapNotFound(err)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, name, email string) (*model.Customer, error) {
	name, email, err := normalize(name, email)
	if err != nil {
		return nil, err
	}
	c := &model.Customer{ID: id, Name: name, Email: email}
	if err := s.r.Update(ctx, c); err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.r.Delete(ctx, id))
}

func mapNotFound(err error) error {
	if errors.Is(err, customerrepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

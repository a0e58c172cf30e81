package videosvc

import (
	"context"
	"errors"
	"strings"

	"videostore/model"
	videorepo "videostore/repository/video"

	"github.com/google/uuid"
)

var (
	ErrBadInput = errors.New("invalid payload")
	ErrNotFound = errors.New("video not found")
)

type Video = model.Video

type Repo interface {
	Create(ctx context.Context, v *Video) error
	List(ctx context.Context) ([]Video, error)
	Detail(ctx context.Context, id uuid.UUID) (*Video, error)
	Update(ctx context.Context, v *Video) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service interface {
	Create(ctx context.Context, title string, year int, genres []string) (*Video, error)
	List(ctx context.Context) ([]Video, error)
	Detail(ctx context.Context, id uuid.UUID) (*Video, error)
	Update(ctx context.Context, id uuid.UUID, title string, year int, genres []string) (*Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// build trims every field and rejects blank titles, blank genres and
// non-positive years.
func build(id uuid.UUID, title string, year int, genres []string) (*Video, error) {
	title = strings.TrimSpace(title)
	if title == "" || year <= 0 {
		return nil, ErrBadInput
	}
	clean := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			return nil, ErrBadInput
		}
		clean = append(clean, g)
	}
	return &Video{ID: id, Title: title, YearOfRelease: year, Genres: clean}, nil
}

func (s *service) Create(ctx context.Context, title string, year int, genres []string) (*Video, error) {
	v, err := build(uuid.New(), title, year, genres)
	if err != nil {
		return nil, err
	}
	if err := s.r.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) List(ctx context.Context) ([]Video, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id uuid.UUID) (*Video, error) {
	v, err := s.r.Detail(ctx, id)
	if errors.Is(err, videorepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}

func (s *service) Update(ctx context.Context, id uuid.UUID, title string, year int, genres []string) (*Video, error) {
	v, err := build(id, title, year, genres)
	if err != nil {
		return nil, err
	}
	if err := s.r.Update(ctx, v); err != nil {
		if errors.Is(err, videorepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, videorepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

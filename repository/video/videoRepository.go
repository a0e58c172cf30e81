package videorepo

import (
	"context"
	"errors"

	"videostore/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("video not found")

type Repo interface {
	Create(ctx context.Context, v *model.Video) error
	List(ctx context.Context) ([]model.Video, error)
	Detail(ctx context.Context, id uuid.UUID) (*model.Video, error)
	Update(ctx context.Context, v *model.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repo struct{ db *pgxpool.Pool }

func New(db *pgxpool.Pool) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, v *model.Video) error {
	const q = `
INSERT INTO videos (id, title, year_of_release, genres)
VALUES ($1,$2,$3,$4)`
	_, err := r.db.Exec(ctx, q, v.ID, v.Title, v.YearOfRelease, genresOrEmpty(v.Genres))
	return err
}

func (r *repo) List(ctx context.Context) ([]model.Video, error) {
	const q = `
SELECT id, title, year_of_release, genres
FROM videos
ORDER BY title, id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Video{}
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.YearOfRelease, &v.Genres); err != nil {
			return nil, err
		}
		v.Genres = genresOrEmpty(v.Genres)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	const q = `
SELECT id, title, year_of_release, genres
FROM videos
WHERE id=$1`
	var v model.Video
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Title, &v.YearOfRelease, &v.Genres)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v.Genres = genresOrEmpty(v.Genres)
	return &v, nil
}

func (r *repo) Update(ctx context.Context, v *model.Video) error {
	const q = `
UPDATE videos
SET title=$2, year_of_release=$3, genres=$4
WHERE id=$1`
	tag, err := r.db.Exec(ctx, q, v.ID, v.Title, v.YearOfRelease, genresOrEmpty(v.Genres))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// genres is NOT NULL; a nil slice would be sent as NULL.
func genresOrEmpty(g []string) []string {
	if g == nil {
		return []string{}
	}
	return g
}

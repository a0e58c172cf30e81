package videorepo

import (
	"context"
	"testing"

	"videostore/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemory_GenresRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := &model.Video{
		ID:            uuid.New(),
		Title:         "Heat",
		YearOfRelease: 1995,
		Genres:        []string{"Crime", "Drama, Thriller", "Action"},
	}
	require.NoError(t, m.Create(ctx, v))

	got, err := m.Detail(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Crime", "Drama, Thriller", "Action"}, got.Genres)

	// callers must not be able to mutate stored genres
	v.Genres[0] = "changed"
	got.Genres[1] = "changed"
	again, err := m.Detail(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Crime", "Drama, Thriller", "Action"}, again.Genres)
}

func TestMemory_UpdateDeleteMissing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.ErrorIs(t, m.Update(ctx, &model.Video{ID: uuid.New(), Title: "x", YearOfRelease: 2000}), ErrNotFound)
	require.ErrorIs(t, m.Delete(ctx, uuid.New()), ErrNotFound)
	_, err := m.Detail(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ListSortedByTitle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, title := range []string{"Zodiac", "Alien", "Memento"} {
		require.NoError(t, m.Create(ctx, &model.Video{ID: uuid.New(), Title: title, YearOfRelease: 2000}))
	}
	rows, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "Alien", rows[0].Title)
	require.Equal(t, "Zodiac", rows[2].Title)
}

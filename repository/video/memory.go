package videorepo

import (
	"context"
	"sort"
	"sync"

	"videostore/model"

	"github.com/google/uuid"
)

type memory struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]model.Video
}

func NewMemory() Repo { return &memory{rows: map[uuid.UUID]model.Video{}} }

// clone detaches the genre slice so callers never share backing arrays with the store.
func clone(v model.Video) model.Video {
	v.Genres = append([]string{}, v.Genres...)
	return v
}

func (m *memory) Create(_ context.Context, v *model.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[v.ID] = clone(*v)
	return nil
}

func (m *memory) List(_ context.Context) ([]model.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Video, 0, len(m.rows))
	for _, v := range m.rows {
		out = append(out, clone(v))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *memory) Detail(_ context.Context, id uuid.UUID) (*model.Video, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	v = clone(v)
	return &v, nil
}

func (m *memory) Update(_ context.Context, v *model.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[v.ID]; !ok {
		return ErrNotFound
	}
	m.rows[v.ID] = clone(*v)
	return nil
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

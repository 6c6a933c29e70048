package settings

import "context"

type InMemoryRepository struct {
	row Settings
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		row: Settings{ID: 1, OrderingEnabled: true},
	}
}

func (r *InMemoryRepository) Get(_ context.Context) (*Settings, error) {
	s := r.row
	return &s, nil
}

func (r *InMemoryRepository) Save(_ context.Context, s *Settings) error {
	r.row = *s
	r.row.ID = 1
	return nil
}

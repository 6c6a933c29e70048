package menu

import "context"

type InMemoryRepository struct {
	items  []Item
	nextID uint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(_ context.Context, item *Item) error {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, *item)
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) FindByName(_ context.Context, name string) (*Item, error) {
	for i := range r.items {
		if r.items[i].Name == name {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

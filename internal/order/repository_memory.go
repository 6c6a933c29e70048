package order

import "context"

type InMemoryRepository struct {
	orders     []Order
	nextID     uint
	nextItemID uint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, nextItemID: 1}
}

func (r *InMemoryRepository) Create(_ context.Context, o *Order) error {
	o.ID = r.nextID
	r.nextID++
	for i := range o.Items {
		o.Items[i].ID = r.nextItemID
		o.Items[i].OrderID = o.ID
		r.nextItemID++
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Order, error) {
	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *InMemoryRepository) MarkPaid(_ context.Context, id uint) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Paid = true
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(_ context.Context, id uint) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

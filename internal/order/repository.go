package order

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// Repository defines all database operations for orders.
type Repository interface {
	// Insert an order together with its items as one transaction. Either
	// everything is persisted or nothing is.
	Create(ctx context.Context, o *Order) error

	// All orders with their items, both in insertion order.
	List(ctx context.Context) ([]Order, error)

	// Set paid = true. Idempotent; ErrNotFound on unknown id.
	MarkPaid(ctx context.Context, id uint) error

	// Remove an order and all of its items in one transaction.
	// ErrNotFound on unknown id.
	Delete(ctx context.Context, id uint) error
}

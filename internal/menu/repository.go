package menu

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("menu item not found")

// Repository defines all database operations for the menu catalog.
// Services depend ONLY on this interface.
type Repository interface {
	// Append one catalog entry. Duplicate names are allowed and accumulate.
	Create(ctx context.Context, item *Item) error

	// All catalog entries in insertion order.
	List(ctx context.Context) ([]Item, error)

	// First entry with the given name, ErrNotFound when missing.
	FindByName(ctx context.Context, name string) (*Item, error)
}

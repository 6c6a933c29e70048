package menu

import (
	"context"
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("menu item name must not be empty")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem appends one catalog entry. There is no uniqueness check; the
// original kiosk accumulates duplicates and the admin prunes manually.
func (s *Service) AddItem(ctx context.Context, name, small, medium, large string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	item := &Item{
		Name:        name,
		PriceSmall:  small,
		PriceMedium: medium,
		PriceLarge:  large,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// PriceForSize resolves the price snapshot for an order line. Sizes are an
// explicit enumeration; an unrecognized token is an error rather than a
// silent fallback.
func (s *Service) PriceForSize(ctx context.Context, itemName, size string) (string, error) {
	item, err := s.repo.FindByName(ctx, itemName)
	if err != nil {
		return "", err
	}
	return PriceForSize(item, size)
}

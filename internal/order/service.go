package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doenerkiosk/internal/menu"
	"doenerkiosk/internal/settings"
)

var (
	// ErrOrderingClosed is returned when ordering is disabled or the daily
	// cutoff has passed. The handler turns it into a silent redirect.
	ErrOrderingClosed = errors.New("ordering is closed")

	// ErrValidation wraps all malformed-submission failures.
	ErrValidation = errors.New("invalid order submission")
)

// Line is one submitted order line before price resolution.
type Line struct {
	Item        string
	Size        string
	ExtraWishes string
}

type Service struct {
	repo     Repository
	menus    menu.Repository
	settings *settings.Service
}

func NewService(repo Repository, menus menu.Repository, settingsService *settings.Service) *Service {
	return &Service{repo: repo, menus: menus, settings: settingsService}
}

// Submit creates one order and its items atomically. Each line's price is
// snapshotted from the current menu entry with the matching name and size.
// Any line referencing an unknown item or size fails the whole submission;
// nothing is partially inserted.
func (s *Service) Submit(ctx context.Context, name, paymentMethod string, lines []Line) (*Order, error) {
	open, err := s.settings.OrderingOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrOrderingClosed
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if paymentMethod == "" {
		return nil, fmt.Errorf("%w: payment_method is required", ErrValidation)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrValidation)
	}

	o := &Order{
		Name:          name,
		PaymentMethod: paymentMethod,
		Items:         make([]Item, 0, len(lines)),
	}

	for _, line := range lines {
		menuItem, err := s.menus.FindByName(ctx, line.Item)
		if err != nil {
			if errors.Is(err, menu.ErrNotFound) {
				return nil, fmt.Errorf("%w: no such menu item %q", ErrValidation, line.Item)
			}
			return nil, err
		}

		price, err := menu.PriceForSize(menuItem, line.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		o.Items = append(o.Items, Item{
			Item:        line.Item,
			Size:        line.Size,
			Price:       price,
			ExtraWishes: line.ExtraWishes,
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// MarkPaid flips paid to true. Marking an already-paid order again is a
// no-op.
func (s *Service) MarkPaid(ctx context.Context, id uint) error {
	return s.repo.MarkPaid(ctx, id)
}

// Delete removes an order and cascades to its items.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

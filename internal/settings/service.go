package settings

import (
	"context"
	"fmt"
	"time"
)

var ErrBadDeadline = fmt.Errorf("order deadline must be HH:MM")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock overrides the wall clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

// ToggleOrdering flips the singleton boolean and returns the new state.
func (s *Service) ToggleOrdering(ctx context.Context) (bool, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}
	cur.OrderingEnabled = !cur.OrderingEnabled
	if err := s.repo.Save(ctx, cur); err != nil {
		return false, err
	}
	return cur.OrderingEnabled, nil
}

// SetDeadline stores an "HH:MM" cutoff, or clears it when value is empty.
func (s *Service) SetDeadline(ctx context.Context, value string) error {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}

	if value == "" {
		cur.OrderDeadline = nil
		return s.repo.Save(ctx, cur)
	}

	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("%w: %q", ErrBadDeadline, value)
	}

	cur.OrderDeadline = &value
	return s.repo.Save(ctx, cur)
}

// OrderingOpen reports whether an order may be accepted right now: ordering
// is enabled and, if a deadline is set, the current time-of-day has not
// passed it.
func (s *Service) OrderingOpen(ctx context.Context) (bool, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return false, err
	}

	if !cur.OrderingEnabled {
		return false, nil
	}

	if cur.OrderDeadline == nil {
		return true, nil
	}

	deadline, err := time.Parse("15:04", *cur.OrderDeadline)
	if err != nil {
		return false, fmt.Errorf("stored deadline %q: %w", *cur.OrderDeadline, err)
	}

	now := s.now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(),
		deadline.Hour(), deadline.Minute(), 0, 0, now.Location())

	return !now.After(cutoff), nil
}

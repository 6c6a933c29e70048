package settings

import "context"

// Repository defines access to the singleton settings row. Exactly one row
// exists after database initialization; Get always returns it and Save
// updates it in place.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

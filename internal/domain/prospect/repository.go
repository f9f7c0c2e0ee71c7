package prospect

import "context"

// Repository describes prospect directory reads from use cases.
type Repository interface {
	List(ctx context.Context) ([]Prospect, error)
	GetByID(ctx context.Context, playerID int64) (Prospect, bool, error)
	GetMeasurement(ctx context.Context, playerID int64) (Measurement, bool, error)
}

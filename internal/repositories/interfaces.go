package repositories

import (
	"context"

	"car-registry-api/internal/models"
)

// FindAllOptions tunes the internal paging of FindAll.
type FindAllOptions struct {
	// LimitPerPage caps how many records a single store page may return.
	// Zero or negative means the backend default.
	LimitPerPage int32
}

// CarRepository is the data-access capability over the car table. It is the
// only component allowed to touch the store.
//
// FindByID, Update and Delete return a nil car when the store holds no record
// for the id; absence is not an error. Existence checks before mutating are
// the caller's responsibility.
type CarRepository interface {
	// Create persists a new car, assigning its id and timestamps, and
	// returns the stored record.
	Create(ctx context.Context, input models.CarInput) (*models.Car, error)

	// FindAll retrieves every record, paging through the store until
	// exhausted. The result is unbounded; store-native order only.
	FindAll(ctx context.Context, opts FindAllOptions) ([]models.Car, error)

	// FindByID retrieves one record, or nil when id is empty or unknown.
	FindByID(ctx context.Context, id string) (*models.Car, error)

	// Update applies the mutable fields present in data and refreshes
	// updatedAt, returning the record after mutation. Keys outside the
	// mutable set are ignored.
	Update(ctx context.Context, id string, data map[string]any) (*models.Car, error)

	// Delete removes a record and returns its prior state when the store
	// reports one.
	Delete(ctx context.Context, id string) (*models.Car, error)
}

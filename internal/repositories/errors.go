package repositories

import "errors"

// Contract errors returned before any store call is made. Message text is
// part of the repository contract.
var (
	// ErrUpdateMissingID is returned by Update when no id is supplied.
	ErrUpdateMissingID = errors.New("id is required to update a car")

	// ErrDeleteMissingID is returned by Delete when no id is supplied.
	ErrDeleteMissingID = errors.New("id is required to delete a car")

	// ErrNoUpdatableFields is returned by Update when the input carries
	// none of the mutable car fields.
	ErrNoUpdatableFields = errors.New("No valid fields provided for update")
)

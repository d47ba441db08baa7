package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Model year bounds accepted by the registry. 1886 is the Benz
// Patent-Motorwagen; nothing older can be registered.
const (
	MinYear = 1886
	MaxYear = 3000
)

// UpdatableFields are the only attributes a client may change after creation.
// Everything else on a record is system-managed.
var UpdatableFields = []string{"plate", "make", "model", "year", "owner"}

// Car represents a single vehicle record as stored and returned by the API.
type Car struct {
	ID        string    `json:"id" dynamodbav:"id" validate:"required"`
	Plate     string    `json:"plate" dynamodbav:"plate" validate:"required"`
	Make      string    `json:"make" dynamodbav:"make" validate:"required"`
	Model     string    `json:"model" dynamodbav:"model" validate:"required"`
	Year      int       `json:"year" dynamodbav:"year" validate:"required,gte=1886,lte=3000"`
	Owner     string    `json:"owner" dynamodbav:"owner" validate:"required"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// CarInput carries the client-supplied attributes for a new car.
type CarInput struct {
	Plate string
	Make  string
	Model string
	Year  int
	Owner string
}

var validate = validator.New()

// NewCar builds a car from a validated payload, assigning the id and both
// timestamps. CreatedAt and UpdatedAt start equal; only UpdatedAt ever moves.
func NewCar(input CarInput) *Car {
	now := time.Now().UTC()
	return &Car{
		ID:        uuid.New().String(),
		Plate:     input.Plate,
		Make:      input.Make,
		Model:     input.Model,
		Year:      input.Year,
		Owner:     input.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the structural invariants of a record before it is
// persisted.
func (c *Car) Validate() error {
	return validate.Struct(c)
}

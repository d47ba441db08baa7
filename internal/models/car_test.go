package models

import "testing"

func validInput() CarInput {
	return CarInput{
		Plate: "ABC-1234",
		Make:  "Toyota",
		Model: "Corolla",
		Year:  2023,
		Owner: "Juan",
	}
}

func TestNewCar(t *testing.T) {
	car := NewCar(validInput())

	if car.ID == "" {
		t.Error("expected a generated id")
	}
	if !car.CreatedAt.Equal(car.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v on creation", car.CreatedAt, car.UpdatedAt)
	}
	if car.Plate != "ABC-1234" || car.Make != "Toyota" || car.Model != "Corolla" || car.Year != 2023 || car.Owner != "Juan" {
		t.Errorf("input fields not copied: %+v", car)
	}

	other := NewCar(validInput())
	if other.ID == car.ID {
		t.Error("two cars received the same id")
	}
}

func TestCarValidate(t *testing.T) {
	car := NewCar(validInput())
	if err := car.Validate(); err != nil {
		t.Errorf("valid car failed validation: %v", err)
	}

	car.Year = 1885
	if err := car.Validate(); err == nil {
		t.Error("year below range passed validation")
	}

	car = NewCar(validInput())
	car.Plate = ""
	if err := car.Validate(); err == nil {
		t.Error("missing plate passed validation")
	}
}

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValidationResult is the outcome of validating a raw car payload.
type ValidationResult struct {
	Valid   bool
	Message string
}

// ValidateCarPayload checks a decoded JSON payload against the car contract.
// With requireAllFields set, every one of plate, make, model, year and owner
// must be present; missing names are reported in that order as
// "Missing required fields: <names>". Whenever a year is present it must be
// an integer between MinYear and MaxYear, and the remaining fields must be
// JSON strings; violations are reported as "Invalid value for <field>". The
// function has no side effects.
func ValidateCarPayload(payload map[string]any, requireAllFields bool) ValidationResult {
	var missing []string
	if requireAllFields {
		for _, field := range []string{"plate", "make", "model"} {
			if !hasValue(payload, field) {
				missing = append(missing, field)
			}
		}
		if payload["year"] == nil {
			missing = append(missing, "year")
		}
		if !hasValue(payload, "owner") {
			missing = append(missing, "owner")
		}
	}

	if len(missing) > 0 {
		return ValidationResult{Message: "Missing required fields: " + strings.Join(missing, ", ")}
	}

	if year, ok := payload["year"]; ok && year != nil {
		if _, valid := YearValue(year); !valid {
			return ValidationResult{Message: "Invalid value for year"}
		}
	}

	for _, field := range []string{"plate", "make", "model", "owner"} {
		v, ok := payload[field]
		if !ok || v == nil {
			continue
		}
		if _, isString := v.(string); !isString {
			return ValidationResult{Message: "Invalid value for " + field}
		}
	}

	return ValidationResult{Valid: true}
}

// HasUpdatableFields reports whether the payload names at least one mutable
// car attribute. Key presence counts; the value is not inspected.
func HasUpdatableFields(payload map[string]any) bool {
	for _, field := range UpdatableFields {
		if _, ok := payload[field]; ok {
			return true
		}
	}
	return false
}

// YearValue coerces a raw JSON year value to a model year. JSON numbers and
// numeric strings are accepted; the result must be an integer within
// [MinYear, MaxYear].
func YearValue(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f != math.Trunc(f) {
		return 0, false
	}

	year := int(f)
	if year < MinYear || year > MaxYear {
		return 0, false
	}
	return year, true
}

// hasValue reports whether the payload carries a usable value for the field.
// Empty strings count as missing, matching the required-field semantics.
func hasValue(payload map[string]any, field string) bool {
	v, ok := payload[field]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return s != ""
	}
	return true
}

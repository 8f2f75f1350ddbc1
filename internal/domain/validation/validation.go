// Package validation provides field-level validation with accumulated error
// reporting. An Accumulator collects every failure of one validation pass so
// that a request is answered with all of its problems at once; the rule
// functions in this package report into it and return whether the value
// passed.
//
//	acc := validation.NewAccumulator()
//	if validation.NotNull(acc, "Task", "name", v) {
//	    validation.ValidLength(acc, "Task", "name", v, 1, 50)
//	}
//	if acc.HasErrors() { ... }
package validation

import (
	"encoding/json"
	"maps"
)

// Validator describes the rule that rejected a value. It serializes flat,
// with Params merged next to the name: {"name":"length","min":1,"max":50}.
type Validator struct {
	Name   string
	Params map[string]any
}

// MarshalJSON flattens Params into the validator object.
func (v Validator) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Params)+1)
	maps.Copy(out, v.Params)
	out["name"] = v.Name
	return json.Marshal(out)
}

// UnmarshalJSON splits the flat form back into Name and Params.
func (v *Validator) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Name, _ = raw["name"].(string)
	delete(raw, "name")
	v.Params = nil
	if len(raw) > 0 {
		v.Params = raw
	}
	return nil
}

// FieldError is a single validation failure.
type FieldError struct {
	Resource  string    `json:"resource"`
	Field     string    `json:"field"`
	Validator Validator `json:"validator"`
	Message   string    `json:"message"`
}

// Accumulator collects field errors in the order they were reported.
// It is owned by one validation pass and is not safe for concurrent use.
type Accumulator struct {
	errs []FieldError
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Err records one failure.
func (a *Accumulator) Err(resource, field string, validator Validator, message string) {
	a.errs = append(a.errs, FieldError{
		Resource:  resource,
		Field:     field,
		Validator: validator,
		Message:   message,
	})
}

// HasErrors reports whether any failure has been recorded.
func (a *Accumulator) HasErrors() bool {
	return len(a.errs) > 0
}

// Errors returns a copy of the recorded failures, oldest first.
func (a *Accumulator) Errors() []FieldError {
	out := make([]FieldError, len(a.errs))
	copy(out, a.errs)
	return out
}

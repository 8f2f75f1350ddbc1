// Package schema declares, per resource, which request-body fields are
// settable and the rule chain each one must pass before it is committed to a
// record. A Schema is an immutable ordered field table; Map and Restrict are
// pure functions over it.
package schema

import (
	"slices"

	"github.com/jsamuelsen11/taskplace-api/internal/domain"
	"github.com/jsamuelsen11/taskplace-api/internal/domain/validation"
)

// Rule checks one value and reports into the accumulator on failure.
type Rule func(acc *validation.Accumulator, resource, field string, value any) bool

// Field is one row of a schema's field table.
type Field struct {
	Name  string
	Rules []Rule
}

// check runs the chain, stopping at the first failing rule so dependent
// rules never see a value an earlier rule rejected.
func (f Field) check(acc *validation.Accumulator, resource string, value any) bool {
	for _, rule := range f.Rules {
		if !rule(acc, resource, f.Name, value) {
			return false
		}
	}
	return true
}

// Schema is the field table for one resource.
type Schema struct {
	resource string
	body     []Field
	internal []Field
}

// New builds a schema. body lists the client-settable fields in validation
// order; internal lists server-assigned fields that are validated through
// Check and Assign but never read from a request body.
func New(resource string, body, internal []Field) Schema {
	return Schema{
		resource: resource,
		body:     slices.Clone(body),
		internal: slices.Clone(internal),
	}
}

// Resource returns the display name used in error messages ("Task").
func (s Schema) Resource() string {
	return s.resource
}

// Fields returns the names of the client-settable fields.
func (s Schema) Fields() []string {
	names := make([]string, len(s.body))
	for i, f := range s.body {
		names[i] = f.Name
	}
	return names
}

// Restrict narrows the settable fields to those present in body. A key sent
// with a null value counts as present so that NotNull still reports it.
func (s Schema) Restrict(body map[string]any) Schema {
	narrowed := make([]Field, 0, len(s.body))
	for _, f := range s.body {
		if _, ok := body[f.Name]; ok {
			narrowed = append(narrowed, f)
		}
	}
	s.body = narrowed
	return s
}

// Map validates every settable field of body and merges the values that pass
// onto a copy of base. All fields are attempted, so acc ends up holding every
// failure of the submission. The returned bool is false when acc has errors,
// including errors recorded before Map was called.
func (s Schema) Map(acc *validation.Accumulator, body map[string]any, base domain.Record) (domain.Record, bool) {
	out := base.Clone()
	for _, f := range s.body {
		value := body[f.Name]
		if f.check(acc, s.resource, value) {
			out[f.Name] = value
		}
	}
	return out, !acc.HasErrors()
}

// Check validates a server-assigned field without storing it.
func (s Schema) Check(acc *validation.Accumulator, name string, value any) bool {
	f, ok := s.lookup(name)
	if !ok {
		return false
	}
	return f.check(acc, s.resource, value)
}

// Assign validates a server-assigned field and stores it on rec.
func (s Schema) Assign(acc *validation.Accumulator, rec domain.Record, name string, value any) bool {
	if !s.Check(acc, name, value) {
		return false
	}
	rec[name] = value
	return true
}

func (s Schema) lookup(name string) (Field, bool) {
	for _, f := range s.internal {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range s.body {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

package schema

import "github.com/jsamuelsen11/taskplace-api/internal/domain/validation"

// Rule adapters over the validation package.

func notNull(acc *validation.Accumulator, resource, field string, value any) bool {
	return validation.NotNull(acc, resource, field, value)
}

func isString(acc *validation.Accumulator, resource, field string, value any) bool {
	return validation.IsString(acc, resource, field, value)
}

func isTime(acc *validation.Accumulator, resource, field string, value any) bool {
	return validation.IsTime(acc, resource, field, value)
}

func containsAt(acc *validation.Accumulator, resource, field string, value any) bool {
	return validation.ContainsAt(acc, resource, field, value)
}

func length(minLen, maxLen int) Rule {
	return func(acc *validation.Accumulator, resource, field string, value any) bool {
		return validation.ValidLength(acc, resource, field, value, minLen, maxLen)
	}
}

func oneOf(allowed ...string) Rule {
	return func(acc *validation.Accumulator, resource, field string, value any) bool {
		return validation.Match(acc, resource, field, value, allowed)
	}
}

// Text is a required string whose length must be within [minLen, maxLen].
func Text(name string, minLen, maxLen int) Field {
	return Field{Name: name, Rules: []Rule{notNull, length(minLen, maxLen)}}
}

// Timestamp is a required, parseable point in time.
func Timestamp(name string) Field {
	return Field{Name: name, Rules: []Rule{notNull, isTime}}
}

// Reference is a required identifier of another record.
func Reference(name string) Field {
	return Field{Name: name, Rules: []Rule{notNull, isString}}
}

package validation

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator names reported in FieldError.Validator.Name.
const (
	RuleNull   = "null"
	RuleLength = "length"
	RuleTime   = "time"
	RuleMatch  = "match"
	RuleFormat = "format"
	RuleType   = "type"
)

// TimeFormat is the advertised format in time validator descriptors.
const TimeFormat = "Y-m-d H:i:s"

// validate runs the single-value rule checks. min and max count runes on
// strings.
var validate = validator.New(validator.WithRequiredStructEnabled())

// timeLayouts are tried in order by IsTime.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"January 2, 2006 15:04:05",
}

// timeTag accepts a string matching any of timeLayouts.
var timeTag = func() string {
	tags := make([]string, len(timeLayouts))
	for i, layout := range timeLayouts {
		tags[i] = "datetime=" + escapeParam(layout)
	}
	return strings.Join(tags, "|")
}()

// maxEpochMillis bounds numeric timestamps to the range a JavaScript-style
// Date accepts (±8.64e15 ms).
const maxEpochMillis = 8.64e15

// NotNull fails when the value is absent or JSON null.
func NotNull(acc *Accumulator, resource, field string, value any) bool {
	if value != nil {
		return true
	}
	acc.Err(resource, field, Validator{Name: RuleNull},
		fmt.Sprintf("%s %s must be completed.", resource, field))
	return false
}

// IsString fails when the value is not a JSON string.
func IsString(acc *Accumulator, resource, field string, value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	acc.Err(resource, field, Validator{Name: RuleType, Params: map[string]any{"type": "string"}},
		fmt.Sprintf("%s %s must be text.", resource, field))
	return false
}

// ValidLength fails when the character count of value is outside [minLen, maxLen].
// Non-string values are rejected through IsString first.
func ValidLength(acc *Accumulator, resource, field string, value any, minLen, maxLen int) bool {
	if !IsString(acc, resource, field, value) {
		return false
	}
	err := validate.Var(value, fmt.Sprintf("min=%d,max=%d", minLen, maxLen))
	if err == nil {
		return true
	}
	v := Validator{Name: RuleLength, Params: map[string]any{"min": minLen, "max": maxLen}}
	if failedTag(err) == "max" {
		acc.Err(resource, field, v,
			fmt.Sprintf("%s %s must be at most %d characters long.", resource, field, maxLen))
	} else {
		acc.Err(resource, field, v,
			fmt.Sprintf("%s %s must be at least %d characters long.", resource, field, minLen))
	}
	return false
}

// IsTime fails when the value cannot be read as a point in time. Strings are
// parsed loosely against a list of common layouts; numbers are taken as
// milliseconds since the Unix epoch.
func IsTime(acc *Accumulator, resource, field string, value any) bool {
	if ParseTime(value) {
		return true
	}
	acc.Err(resource, field,
		Validator{Name: RuleTime, Params: map[string]any{"format": TimeFormat}},
		fmt.Sprintf("%s %s must be a valid time.", resource, field))
	return false
}

// ParseTime reports whether value is a parseable timestamp.
func ParseTime(value any) bool {
	switch v := value.(type) {
	case float64:
		return !math.IsNaN(v) && math.Abs(v) <= maxEpochMillis
	case int:
		return math.Abs(float64(v)) <= maxEpochMillis
	case int64:
		return math.Abs(float64(v)) <= maxEpochMillis
	case string:
		s := strings.TrimSpace(v)
		return s != "" && validate.Var(s, timeTag) == nil
	default:
		return false
	}
}

// Match fails when value is not one of allowed.
func Match(acc *Accumulator, resource, field string, value any, allowed []string) bool {
	if _, ok := value.(string); ok && len(allowed) > 0 && validate.Var(value, oneOfTag(allowed)) == nil {
		return true
	}
	acc.Err(resource, field,
		Validator{Name: RuleMatch, Params: map[string]any{"allowed": slices.Clone(allowed)}},
		fmt.Sprintf("%s %s must match value from list.", resource, field))
	return false
}

// ContainsAt fails when a string value has no '@'.
func ContainsAt(acc *Accumulator, resource, field string, value any) bool {
	if _, ok := value.(string); ok && validate.Var(value, "contains=@") == nil {
		return true
	}
	acc.Err(resource, field,
		Validator{Name: RuleFormat, Params: map[string]any{"type": "email"}},
		fmt.Sprintf("%s %s address must contain an '@' symbol.", resource, field))
	return false
}

// oneOfTag quotes allowed values that contain spaces so oneof keeps them whole.
func oneOfTag(allowed []string) string {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		if strings.ContainsAny(a, " \t") {
			a = "'" + a + "'"
		}
		quoted[i] = escapeParam(a)
	}
	return "oneof=" + strings.Join(quoted, " ")
}

// escapeParam hides the tag separators validator would otherwise split on.
func escapeParam(p string) string {
	return strings.NewReplacer(",", "0x2C", "|", "0x7C").Replace(p)
}

func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

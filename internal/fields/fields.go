// Package fields guards the persistence boundary: it validates submitted
// field maps against per-entity whitelists and strips values that must not
// reach the datastore as explicit column assignments.
package fields

import (
	"fmt"
	"sort"

	"catalog-backend/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckFields verifies that every key of fields belongs to the authorized
// list. It returns false and the first offending key otherwise. Keys are
// checked in sorted order so the reported field is stable.
func CheckFields(authorized []string, fields map[string]interface{}) (bool, string) {
	allowed := make(map[string]struct{}, len(authorized))
	for _, f := range authorized {
		allowed[f] = struct{}{}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, ok := allowed[k]; !ok {
			return false, k
		}
	}
	return true, ""
}

// ErrInvalidField builds the client error returned when CheckFields rejects
// a field.
func ErrInvalidField(field string) error {
	return &utils.ValidationError{Message: fmt.Sprintf("Unauthorized field '%s' in query", field)}
}

// RemoveNulls returns a copy of fields without nil-valued entries. Zero
// values such as 0, false and "" are kept: absent means "not provided", not
// "set to empty".
func RemoveNulls(fields map[string]interface{}) map[string]interface{} {
	return strip(fields, false)
}

// RemoveNullsAndEmpty behaves like RemoveNulls and additionally drops
// empty-string values.
func RemoveNullsAndEmpty(fields map[string]interface{}) map[string]interface{} {
	return strip(fields, true)
}

func strip(fields map[string]interface{}, dropEmpty bool) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if dropEmpty {
			if s, ok := v.(string); ok && s == "" {
				continue
			}
		}
		out[k] = v
	}
	return out
}

// ValidateRules applies per-field validation tags to the provided values.
// Fields absent from the map are skipped: range rules only constrain values
// the client actually submitted.
func ValidateRules(rules map[string]string, fields map[string]interface{}) error {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if err := validate.Var(v, rules[name]); err != nil {
			return &utils.ValidationError{Message: fmt.Sprintf("Invalid value for field '%s'", name)}
		}
	}
	return nil
}

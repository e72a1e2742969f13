package services

import (
	"fmt"
	"math"

	"catalog-backend/internal/fields"
	"catalog-backend/internal/utils"
)

// prepareFields strips null values from a write payload, then enforces the
// entity's field whitelist and range rules. Callers must never hand the raw
// payload to a repository.
func prepareFields(authorized []string, rules map[string]string, payload map[string]interface{}) (map[string]interface{}, error) {
	flds := fields.RemoveNulls(payload)
	if ok, bad := fields.CheckFields(authorized, flds); !ok {
		return nil, fields.ErrInvalidField(bad)
	}
	if err := fields.ValidateRules(rules, flds); err != nil {
		return nil, err
	}
	return flds, nil
}

// requireFields rejects a create payload missing a mandatory column, so the
// datastore's NOT NULL violation never surfaces as a 500.
func requireFields(flds map[string]interface{}, names ...string) error {
	for _, n := range names {
		if _, ok := flds[n]; !ok {
			return &utils.ValidationError{Message: fmt.Sprintf("Missing required field '%s'", n)}
		}
	}
	return nil
}

// extractCategoryIDs pulls the "categories" key out of a movie/serie
// payload before the whitelist check. The second return value reports
// whether the key was present: an absent (or null) key means the mapping
// table is left untouched on update. Duplicate ids are dropped, order kept.
func extractCategoryIDs(payload map[string]interface{}) ([]uint, bool, error) {
	raw, ok := payload["categories"]
	if !ok {
		return nil, false, nil
	}
	delete(payload, "categories")
	if raw == nil {
		return nil, false, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, false, &utils.ValidationError{Message: "Invalid format for data"}
	}

	seen := make(map[uint]struct{}, len(list))
	ids := make([]uint, 0, len(list))
	for _, item := range list {
		var id uint
		switch n := item.(type) {
		case float64:
			if n < 0 || n != math.Trunc(n) {
				return nil, false, &utils.ValidationError{Message: "Invalid format for data"}
			}
			id = uint(n)
		case int:
			if n < 0 {
				return nil, false, &utils.ValidationError{Message: "Invalid format for data"}
			}
			id = uint(n)
		default:
			return nil, false, &utils.ValidationError{Message: "Invalid format for data"}
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, true, nil
}

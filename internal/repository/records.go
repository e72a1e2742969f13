package repository

import (
	"strings"

	"catalog-backend/internal/query"
)

// Record is one enriched entity produced by the join collapse: the parent's
// selected columns plus a nested "location" object and a "categories" list.
type Record map[string]interface{}

const (
	locationPrefix = "location__"
	categoryPrefix = "category__"
)

// joinScaffolding are the aliased location and category columns added to
// every movie/serie listing query on top of the plan's own projection.
var joinScaffolding = []string{
	"locations.id AS location__id",
	"locations.location AS location__location",
	"locations.is_physical AS location__is_physical",
	"categories.id AS category__id",
	"categories.label AS category__label",
	"categories.description AS category__description",
}

func selectClause(cols []query.Column, scaffolding []string) string {
	parts := make([]string, 0, len(cols)+len(scaffolding))
	for _, c := range cols {
		parts = append(parts, c.Expr+" AS "+c.Name)
	}
	parts = append(parts, scaffolding...)
	return strings.Join(parts, ", ")
}

// collapse merges raw joined rows into one Record per parent id, preserving
// first-seen order. A parent with N categories arrives as N rows; a parent
// with none arrives once with null category columns and gets an empty list.
// Single pass over the rows, insertion-ordered index from parent id to its
// position in the output.
func collapse(rows []map[string]interface{}) []Record {
	out := make([]Record, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for _, row := range rows {
		id, ok := asInt64(row["id"])
		if !ok {
			continue
		}

		if pos, seen := index[id]; seen {
			if cat := categoryObject(row); cat != nil {
				out[pos]["categories"] = append(out[pos]["categories"].([]Record), cat)
			}
			continue
		}

		rec := Record{}
		location := Record{}
		for k, v := range row {
			switch {
			case strings.HasPrefix(k, locationPrefix):
				location[strings.TrimPrefix(k, locationPrefix)] = v
			case strings.HasPrefix(k, categoryPrefix):
				// folded into the categories list below
			default:
				rec[k] = v
			}
		}
		rec["location"] = location

		categories := []Record{}
		if cat := categoryObject(row); cat != nil {
			categories = append(categories, cat)
		}
		rec["categories"] = categories

		index[id] = len(out)
		out = append(out, rec)
	}

	return out
}

// categoryObject extracts the joined category columns of one row, or nil
// when the left join matched nothing.
func categoryObject(row map[string]interface{}) Record {
	if row[categoryPrefix+"id"] == nil {
		return nil
	}
	cat := Record{}
	for k, v := range row {
		if strings.HasPrefix(k, categoryPrefix) {
			cat[strings.TrimPrefix(k, categoryPrefix)] = v
		}
	}
	return cat
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

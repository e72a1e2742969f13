// Package query turns raw listing parameters into a typed, validated query
// plan. Nothing from the HTTP layer reaches the persistence boundary without
// going through Build, which resolves attribute and sort names against a
// per-entity column whitelist.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"catalog-backend/internal/utils"
)

// DefaultLimit is a large sentinel used when no limit parameter is given, so
// unpaginated queries behave uniformly across datastore backends.
const DefaultLimit = 99999

// Column maps an exposed attribute name to its qualified SQL expression.
type Column struct {
	Name string
	Expr string
}

// SearchColumn declares one searchable column and its matching mode. Exact
// columns match the literal value; others match case-insensitive substrings.
// Numeric columns are cast to text before the LIKE so the '%' default works
// on every backend.
type SearchColumn struct {
	Param   string
	Column  string
	Exact   bool
	Numeric bool
}

// OrderColumn is one element of an ORDER BY clause.
type OrderColumn struct {
	Expr string
	Desc bool
}

// Config is the entity-specific listing configuration.
type Config struct {
	Columns     []Column
	DefaultSort string
	Search      []SearchColumn
	// TieBreaks are appended after the primary sort so repeated queries on
	// identical data return identical order.
	TieBreaks []OrderColumn
}

func (c Config) column(name string) (Column, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Predicate is one WHERE fragment with its bound value.
type Predicate struct {
	Clause string
	Value  string
}

// Plan is a fully resolved listing query: projection, predicates, ordering
// and pagination. Everything in it has been validated against the Config.
type Plan struct {
	Select     []Column
	Predicates []Predicate
	Order      []OrderColumn
	Offset     int
	Limit      int
}

// OrderClause renders the ORDER BY columns of the plan.
func (p *Plan) OrderClause() string {
	parts := make([]string, 0, len(p.Order))
	for _, o := range p.Order {
		dir := "asc"
		if o.Desc {
			dir = "desc"
		}
		parts = append(parts, o.Expr+" "+dir)
	}
	return strings.Join(parts, ", ")
}

// provided reports whether a query value should be treated as supplied.
// Clients sometimes serialize absent values as the literal strings "null" or
// "undefined"; those count as not supplied.
func provided(v string) bool {
	return v != "" && v != "null" && v != "undefined"
}

// Build interprets raw query parameters against cfg and produces a Plan.
// Unknown attribute names are rejected; unknown sort columns fall back to the
// entity default.
func Build(cfg Config, params map[string]string) (*Plan, error) {
	plan := &Plan{Limit: DefaultLimit}

	// Column projection. The id column is always selected because the row
	// collapse groups by it.
	if attrs, ok := params["attributes"]; ok && provided(attrs) {
		if idCol, ok := cfg.column("id"); ok {
			plan.Select = append(plan.Select, idCol)
		}
		for _, name := range strings.Split(attrs, ",") {
			name = strings.TrimSpace(name)
			if name == "" || name == "id" {
				continue
			}
			col, ok := cfg.column(name)
			if !ok {
				return nil, &utils.ValidationError{
					Message: fmt.Sprintf("Unauthorized field '%s' in query", name),
				}
			}
			plan.Select = append(plan.Select, col)
		}
	} else {
		plan.Select = append(plan.Select, cfg.Columns...)
	}

	for _, sc := range cfg.Search {
		pattern := "%"
		if v, ok := params[sc.Param]; ok && provided(v) {
			pattern = strings.ToLower(v)
			if !sc.Exact {
				pattern = "%" + pattern + "%"
			}
		}
		clause := fmt.Sprintf("LOWER(%s) LIKE ?", sc.Column)
		if sc.Numeric {
			clause = fmt.Sprintf("CAST(%s AS TEXT) LIKE ?", sc.Column)
		}
		plan.Predicates = append(plan.Predicates, Predicate{Clause: clause, Value: pattern})
	}

	var primary OrderColumn
	sortName := cfg.DefaultSort
	if v, ok := params["sort"]; ok && provided(v) {
		if strings.HasPrefix(v, "-") {
			primary.Desc = true
			v = v[1:]
		}
		if _, known := cfg.column(v); known {
			sortName = v
		}
	}
	if col, ok := cfg.column(sortName); ok {
		primary.Expr = col.Expr
	}
	plan.Order = append(plan.Order, primary)
	plan.Order = append(plan.Order, cfg.TieBreaks...)

	if v, ok := params["offset"]; ok && provided(v) {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			plan.Offset = n
		}
	}
	if v, ok := params["limit"]; ok && provided(v) {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			plan.Limit = n
		}
	}

	return plan, nil
}

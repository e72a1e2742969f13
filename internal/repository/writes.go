package repository

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// insertReturningID inserts a whitelisted field map and returns the
// generated surrogate id. Column names must already have passed the field
// whitelist; values are bound as placeholders. Keys are sorted so the
// statement is deterministic.
func insertReturningID(tx *gorm.DB, table string, fields map[string]interface{}) (uint, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	placeholders := make([]string, len(keys))
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		placeholders[i] = "?"
		args[i] = fields[k]
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, strings.Join(keys, ", "), strings.Join(placeholders, ", "))

	var id int64
	if err := tx.Raw(stmt, args...).Scan(&id).Error; err != nil {
		return 0, err
	}
	return uint(id), nil
}

// uniqueIDs drops duplicate ids while preserving order, so one write never
// produces duplicate mapping rows.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

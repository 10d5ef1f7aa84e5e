// Package rowmap translates database rows (snake_case keys) into the
// camelCase records the API serves. The listing endpoints scan rows into
// generic records, so this is the single place row shape is decided.
package rowmap

import (
	"strings"
	"time"
)

// Record is a generic row: column name -> value.
type Record = map[string]interface{}

// ToCamel returns a copy of the record with every snake_case key renamed
// to camelCase. Nested records are converted recursively and slices of
// records element-wise; primitives, times and plain slices pass through
// untouched. A nil record maps to nil.
func ToCamel(row Record) Record {
	if row == nil {
		return nil
	}
	out := make(Record, len(row))
	for k, v := range row {
		out[camelKey(k)] = convertValue(v)
	}
	return out
}

// SliceToCamel converts each record in a result set.
func SliceToCamel(rows []Record) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = ToCamel(r)
	}
	return out
}

func convertValue(v interface{}) interface{} {
	switch val := v.(type) {
	case time.Time: // keep dates as-is, never recurse into them
		return val
	case Record:
		return ToCamel(val)
	case []Record:
		return SliceToCamel(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = convertValue(item)
		}
		return out
	default:
		return v
	}
}

// camelKey rewrites word_word to wordWord. Keys without underscores come
// back unchanged, which makes the transform idempotent.
func camelKey(k string) string {
	if !strings.Contains(k, "_") {
		return k
	}
	var b strings.Builder
	b.Grow(len(k))
	upperNext := false
	for _, r := range k {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

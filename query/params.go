// Package query implements the narrow comparator/matcher surface the
// classify package needs from a MongoDB-style query: selector matching and
// sort-field comparison. The full query-language shim spec.md names as a
// non-goal is not implemented — only enough of it to drive the state
// classifier's predicates.
package query

import "fmt"

// SortField is one field of a compound sort, ascending unless Descending.
type SortField struct {
	Field      string
	Descending bool
}

// Params is a compiled query: selector (field -> expected value, exact
// match only), sort order, and limit/skip. Limit <= 0 means unlimited.
type Params struct {
	Selector map[string]any
	Sort     []SortField
	Limit    int
	Skip     int
}

// Matches reports whether doc satisfies every field of the selector. A
// nil doc never matches (mirrors a deleted document having nothing left
// to test).
func (p Params) Matches(doc map[string]any) bool {
	if doc == nil {
		return false
	}
	for field, want := range p.Selector {
		if got, ok := doc[field]; !ok || !equalValue(got, want) {
			return false
		}
	}
	return true
}

// Compare orders a and b by p.Sort the way the btree/bplustree teacher
// code orders keys: a three-way comparison, one field at a time, stopping
// at the first field that differs. It returns -1 if a sorts before b, 1 if
// a sorts after b, and 0 if every sort field is equal (including when
// there is no sort at all).
func (p Params) Compare(a, b map[string]any) int {
	for _, field := range p.Sort {
		c := compareValue(a[field.Field], b[field.Field])
		if field.Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func equalValue(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// compareValue compares two field values for sort purposes. Numeric types
// compare numerically, everything else compares as its string form — good
// enough for the classifier's sort-position predicates, which only need a
// consistent total order, not full Mongo type-bracket semantics.
func compareValue(a, b any) int {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

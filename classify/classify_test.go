package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lovasoa/event-reduce/classify"
	"github.com/lovasoa/event-reduce/query"
)

func TestVectorLengthMatchesPredicateCount(t *testing.T) {
	ctx := classify.Context{Event: classify.ChangeEvent{Operation: classify.Insert, ID: "x"}}
	assert.Len(t, classify.Vector(ctx), classify.N)
	assert.Len(t, classify.Key(ctx), classify.N)
}

func TestWasInResult(t *testing.T) {
	ctx := classify.Context{
		Event:           classify.ChangeEvent{Operation: classify.Update, ID: "a"},
		PreviousResults: []map[string]any{{"_id": "a"}, {"_id": "b"}},
	}
	assert.True(t, classify.Vector(ctx)[indexOf(t, "wasInResult")])

	ctx.Event.ID = "z"
	assert.False(t, classify.Vector(ctx)[indexOf(t, "wasInResult")])
}

func TestMatchesSelectorBeforeAndAfter(t *testing.T) {
	params := query.Params{Selector: map[string]any{"status": "active"}}

	insert := classify.Context{
		Params: params,
		Event:  classify.ChangeEvent{Operation: classify.Insert, ID: "a", Doc: map[string]any{"status": "active"}},
	}
	assert.False(t, classify.Vector(insert)[indexOf(t, "matchesSelectorBefore")])
	assert.True(t, classify.Vector(insert)[indexOf(t, "matchesSelectorAfter")])

	del := classify.Context{
		Params: params,
		Event:  classify.ChangeEvent{Operation: classify.Delete, ID: "a", Previous: map[string]any{"status": "active"}},
	}
	assert.True(t, classify.Vector(del)[indexOf(t, "matchesSelectorBefore")])
	assert.False(t, classify.Vector(del)[indexOf(t, "matchesSelectorAfter")])
}

func TestSortedBoundaryPredicates(t *testing.T) {
	params := query.Params{Sort: []query.SortField{{Field: "age"}}}
	results := []map[string]any{
		{"_id": "first", "age": 10},
		{"_id": "last", "age": 50},
	}

	before := classify.Context{
		Params:          params,
		PreviousResults: results,
		Event: classify.ChangeEvent{
			Operation: classify.Update,
			ID:        "mid",
			Previous:  map[string]any{"age": 5},
			Doc:       map[string]any{"age": 60},
		},
	}
	vec := classify.Vector(before)
	assert.True(t, vec[indexOf(t, "wasSortedBeforeFirst")])
	assert.False(t, vec[indexOf(t, "wasSortedAfterLast")])
	assert.False(t, vec[indexOf(t, "isSortedBeforeFirst")])
	assert.True(t, vec[indexOf(t, "isSortedAfterLast")])
}

func TestSortParamsChanged(t *testing.T) {
	params := query.Params{Sort: []query.SortField{{Field: "age"}}}

	unchanged := classify.Context{
		Params: params,
		Event: classify.ChangeEvent{
			Operation: classify.Update,
			Previous:  map[string]any{"age": 30, "name": "a"},
			Doc:       map[string]any{"age": 30, "name": "b"},
		},
	}
	assert.False(t, classify.Vector(unchanged)[indexOf(t, "sortParamsChanged")])

	changed := classify.Context{
		Params: params,
		Event: classify.ChangeEvent{
			Operation: classify.Update,
			Previous:  map[string]any{"age": 30},
			Doc:       map[string]any{"age": 31},
		},
	}
	assert.True(t, classify.Vector(changed)[indexOf(t, "sortParamsChanged")])
}

func TestLimitReached(t *testing.T) {
	unlimited := classify.Context{Params: query.Params{Limit: 0}, PreviousResults: make([]map[string]any, 5)}
	assert.False(t, classify.Vector(unlimited)[indexOf(t, "limitReached")])

	atLimit := classify.Context{Params: query.Params{Limit: 2}, PreviousResults: make([]map[string]any, 2)}
	assert.True(t, classify.Vector(atLimit)[indexOf(t, "limitReached")])

	underLimit := classify.Context{Params: query.Params{Limit: 5}, PreviousResults: make([]map[string]any, 2)}
	assert.False(t, classify.Vector(underLimit)[indexOf(t, "limitReached")])
}

func TestOperationPredicatesAreMutuallyExclusive(t *testing.T) {
	for _, op := range []classify.Operation{classify.Insert, classify.Update, classify.Delete} {
		vec := classify.Vector(classify.Context{Event: classify.ChangeEvent{Operation: op}})
		set := 0
		for _, name := range []string{"isInsert", "isUpdate", "isDelete"} {
			if vec[indexOf(t, name)] {
				set++
			}
		}
		assert.Equal(t, 1, set, "operation %s", op)
	}
}

func indexOf(t *testing.T, name string) int {
	t.Helper()
	for i := 0; i < classify.N; i++ {
		if classify.Name(i) == name {
			return i
		}
	}
	t.Fatalf("no predicate named %q", name)
	return -1
}

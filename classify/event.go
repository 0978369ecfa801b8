// Package classify computes the fixed-size bit vector of classifying
// predicates that are the variables of a bdd.TruthTable: given a change
// event and the query a result set was computed under, it answers the
// questions the BDD built over those predicates decides between (was the
// document in the result set before, is it now, and so on).
package classify

import "github.com/lovasoa/event-reduce/query"

// Operation is the kind of mutation a ChangeEvent describes.
type Operation int

const (
	Insert Operation = iota
	Update
	Delete
)

func (o Operation) String() string {
	switch o {
	case Insert:
		return "insert"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// ChangeEvent describes a single document mutation. Previous is nil for
// Insert (there was nothing before); Doc is nil for Delete (there is
// nothing after).
type ChangeEvent struct {
	Operation Operation
	ID        string
	Doc       map[string]any
	Previous  map[string]any
}

// Context bundles everything a predicate needs: the event itself, the
// query the result set was computed under, the ordered result set as it
// stood immediately before this event, and — optionally — a map from id to
// each document currently known to be in the result set, for predicates
// that need more than just the boundary elements.
type Context struct {
	Event           ChangeEvent
	Params          query.Params
	PreviousResults []map[string]any
	KeyDocumentMap  map[string]map[string]any
}

func (c Context) previousResultID(doc map[string]any) (string, bool) {
	id, ok := doc["_id"].(string)
	return id, ok
}

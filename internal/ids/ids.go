// Package ids mints the short opaque identifiers used for BDD node identity.
package ids

import "github.com/segmentio/ksuid"

// New returns a fresh, short, opaque identifier unique to this process.
// Node identity within a single Diagram relies only on uniqueness, not on
// any ordering property of the identifier, but ksuid's k-sortable ids make
// build traces and JSON dumps easier to read in insertion order.
func New() string {
	return ksuid.New().String()
}

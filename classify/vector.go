package classify

import "strings"

// Vector evaluates every predicate in Predicates against ctx, in order,
// producing the fixed-size boolean vector a bdd.Diagram's resolvers are
// bound to by position.
func Vector(ctx Context) []bool {
	v := make([]bool, len(Predicates))
	for i, p := range Predicates {
		v[i] = p.fn(ctx)
	}
	return v
}

// Key renders Vector(ctx) as a bdd.TruthTable key: one '0' or '1' per
// predicate, in predicate order, matching the binary keys
// bdd.CreateBddFromTruthTable expects.
func Key(ctx Context) string {
	var b strings.Builder
	b.Grow(len(Predicates))
	for _, bit := range Vector(ctx) {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

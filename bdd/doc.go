// Package bdd implements a reduced, ordered Binary Decision Diagram engine
// over Boolean truth tables with string-valued leaves.
//
// A Diagram is built once from a complete TruthTable with
// CreateBddFromTruthTable, then minimized to remove redundant structure:
//
//	table := bdd.TruthTable{
//	    "00": "a", "01": "a", "10": "a", "11": "a",
//	}
//	d, err := bdd.CreateBddFromTruthTable(table)
//	if err != nil {
//	    // malformed table
//	}
//	if err := d.Minimize(true); err != nil {
//	    // invariant violation
//	}
//
// Callers that want to prune "don't care" outputs before resolving against
// live data call RemoveIrrelevantLeafNodes, and then Resolve with one
// resolver function per variable:
//
//	if err := d.RemoveIrrelevantLeafNodes("UNKNOWN"); err != nil {
//	    // ...
//	}
//	value, err := d.Resolve(map[int]bdd.Resolver{
//	    0: func(state string) bool { return state[0] == '1' },
//	    1: func(state string) bool { return state[1] == '1' },
//	}, someState)
//
// The diagram is a shared DAG: nodes may have more than one parent, and
// mutations (Minimize, RemoveIrrelevantLeafNodes) rewire and delete nodes
// in place rather than rebuilding the graph. EnsureCorrectBdd audits every
// invariant this package relies on and is run automatically at the end of
// CreateBddFromTruthTable, Minimize and RemoveIrrelevantLeafNodes when the
// Diagram was built with Options{Debug: true}; direct calls to
// ApplyReductionRule and ApplyEliminationRule do not run it.
//
// No quantification, symbolic apply/compose, variable reordering, or
// concurrent mutation is supported; see SPEC_FULL.md for the full scope.
package bdd

package bdd

// TruthTable is a total mapping from every N-bit binary key to a non-empty
// output value, per spec.md §4.1. Keys must enumerate every binary string
// of length N; a missing key is a precondition violation caught by
// CreateBddFromTruthTable.
type TruthTable map[string]string

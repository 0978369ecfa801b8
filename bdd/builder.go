package bdd

import "github.com/lovasoa/event-reduce/internal/logx"

// CreateBddFromTruthTable builds a canonical, non-reduced, complete BDD of
// depth N from table. N is inferred from the length of table's keys; every
// one of the 2^N binary strings of that length must be present or building
// fails with ErrPrecondition. The builder mirrors the teacher's recursive
// descent style (btree.go's searchNode/deleteFromNode): one recursive
// function walks the implicit path tree and materializes a real node at
// each position, root to leaves, so nodes at level L receive their
// children before being linked in.
func CreateBddFromTruthTable(table TruthTable, opts ...Options) (*Diagram, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	n, err := validateTruthTable(table)
	if err != nil {
		return nil, err
	}

	d := newDiagram(n, o)
	d.root = newRoot()
	d.registerNode(d.root)

	if err := buildChildren(d, d.root, "", table); err != nil {
		return nil, err
	}

	logx.Logger.Debug().Int("n", n).Int("nodes", d.CountNodes()).Msg("bdd built from truth table")

	if err := d.maybeValidate("CreateBddFromTruthTable"); err != nil {
		return nil, err
	}
	return d, nil
}

// buildChildren creates owner's "0" and "1" children for the path prefix
// that led to owner (owner itself already created/registered), recursing
// until the leaf level is reached.
func buildChildren(d *Diagram, owner *Node, path string, table TruthTable) error {
	childLevel := owner.level + 1
	for _, bit := range [...]string{"0", "1"} {
		childPath := path + bit
		child, err := buildNode(d, childLevel, childPath, table)
		if err != nil {
			return err
		}
		if err := owner.branch.SetBranch(bit, child); err != nil {
			return err
		}
	}
	return nil
}

func buildNode(d *Diagram, level int, path string, table TruthTable) (*Node, error) {
	if level == d.n {
		leaf := newLeaf(level, table[path])
		d.registerNode(leaf)
		return leaf, nil
	}

	internal := newInternal(level)
	d.registerNode(internal)
	if err := buildChildren(d, internal, path, table); err != nil {
		return nil, err
	}
	return internal, nil
}

// validateTruthTable checks the precondition spec.md §4.1 requires: N >= 1,
// every key has the same length N, every key is made of '0'/'1', and every
// one of the 2^N keys of that length is present.
func validateTruthTable(table TruthTable) (int, error) {
	if len(table) == 0 {
		return 0, preconditionf("truth table must not be empty")
	}

	n := -1
	for key, value := range table {
		if n == -1 {
			n = len(key)
		}
		if len(key) != n {
			return 0, preconditionf("inconsistent key length: %q is not length %d", key, n)
		}
		for _, c := range key {
			if c != '0' && c != '1' {
				return 0, preconditionf("key %q is not a binary string", key)
			}
		}
		if value == "" {
			return 0, preconditionf("key %q has an empty value", key)
		}
	}

	if n < 1 {
		return 0, preconditionf("truth table keys must have length N >= 1")
	}

	want := 1 << uint(n)
	if len(table) != want {
		return 0, preconditionf("truth table has %d entries, want 2^%d = %d", len(table), n, want)
	}

	for i := 0; i < want; i++ {
		key := binaryString(i, n)
		if _, ok := table[key]; !ok {
			return 0, preconditionf("truth table is missing key %q", key)
		}
	}

	return n, nil
}

func binaryString(i, n int) string {
	buf := make([]byte, n)
	for pos := n - 1; pos >= 0; pos-- {
		if i&1 == 1 {
			buf[pos] = '1'
		} else {
			buf[pos] = '0'
		}
		i >>= 1
	}
	return string(buf)
}

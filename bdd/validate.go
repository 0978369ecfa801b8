package bdd

import "fmt"

// EnsureCorrectBdd audits the whole graph against spec.md §3's invariants,
// raising a descriptive error naming the offending node and violated
// clause on the first failure found. It is used by tests and, when
// Options.Debug is set, after every mutating operation. Grounded on the
// one-assertion-per-invariant-clause shape of gaissmai/bart's
// invariants_test.go, adapted from a test file into a library-callable
// check per spec.md §4.6.
func EnsureCorrectBdd(d *Diagram) error {
	if d.empty {
		return nil // nothing to check; IsEmpty() callers already know not to resolve it.
	}
	if d.root == nil {
		return invariantf("diagram has no root")
	}
	if d.root.kind != KindRoot {
		return invariantf("node %s at level 0 is not a Root", d.root.id)
	}
	if d.root.parents.size() != 0 {
		return invariantf("root %s has %d parent edges, want 0", d.root.id, d.root.parents.size())
	}

	reachable := make(map[string]*Node)
	if err := walkReachable(d.root, reachable); err != nil {
		return err
	}

	for id, n := range reachable {
		if err := checkNode(d, n); err != nil {
			return fmt.Errorf("node %s: %w", id, err)
		}
	}

	// levels/byID must exactly match the reachable set (invariant 6).
	total := 0
	for level, ls := range d.levels {
		for _, n := range ls.list() {
			total++
			if _, ok := reachable[n.id]; !ok {
				return invariantf("node %s is indexed at level %d but is not reachable from root", n.id, level)
			}
			if n.level != level {
				return invariantf("node %s is indexed at level %d but has level attribute %d", n.id, level, n.level)
			}
		}
	}
	if total != len(reachable) {
		return invariantf("level index has %d nodes but %d are reachable from root", total, len(reachable))
	}
	for id, n := range reachable {
		if d.byID[id] != n {
			return invariantf("node %s is reachable but not present in the node registry", id)
		}
	}

	// Leaves occupy exactly level N, and the leaf level contains only leaves
	// (invariant 5).
	for level, ls := range d.levels {
		for _, n := range ls.list() {
			if level == d.n && !n.IsLeaf() {
				return invariantf("node %s at the leaf level %d is not a Leaf", n.id, level)
			}
			if level != d.n && n.IsLeaf() {
				return invariantf("leaf %s found at level %d, want %d", n.id, level, d.n)
			}
		}
	}

	return nil
}

// walkReachable performs a cycle-safe DFS (invariant 1: the graph is a DAG)
// and collects every reachable node by id.
func walkReachable(n *Node, seen map[string]*Node) error {
	if _, ok := seen[n.id]; ok {
		return nil
	}
	seen[n.id] = n

	if n.IsLeaf() {
		return nil
	}

	for _, label := range [...]string{"0", "1"} {
		child, err := n.branch.GetBranch(label)
		if err != nil {
			return invariantf("node %s: %v", n.id, err)
		}
		if child == nil {
			return invariantf("node %s has a nil %q branch", n.id, label)
		}
		if child.level <= n.level {
			return invariantf("edge %s --%s--> %s goes from level %d to level %d, not forward", n.id, label, child.id, n.level, child.level)
		}
		if err := walkReachable(child, seen); err != nil {
			return err
		}
	}
	return nil
}

// checkNode verifies invariant 3 (parent bookkeeping is exact and mutual)
// and invariant 4 (internal/root branches are non-nil, already checked by
// walkReachable) for one node.
func checkNode(d *Diagram, n *Node) error {
	if n.kind != KindRoot && n.parents.size() == 0 {
		return invariantf("non-root node %s has no parents", n.id)
	}

	for _, pe := range n.parents.snapshot() {
		child, err := pe.parent.branch.GetBranch(pe.label)
		if err != nil {
			return invariantf("parent %s of %s: %v", pe.parent.id, n.id, err)
		}
		if child != n {
			return invariantf("node %s records parent %s on branch %q, but that parent's %q branch points elsewhere", n.id, pe.parent.id, pe.label, pe.label)
		}
	}

	if n.IsLeaf() {
		return nil
	}

	for _, label := range [...]string{"0", "1"} {
		child, _ := n.branch.GetBranch(label)
		if child == nil {
			return invariantf("node %s has a nil %q branch", n.id, label)
		}
		if !child.parents.has(n) {
			return invariantf("edge %s --%s--> %s exists but is not recorded in %s's parent set", n.id, label, child.id, child.id)
		}
	}

	return nil
}

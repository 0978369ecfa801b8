package bdd

import "github.com/lovasoa/event-reduce/internal/logx"

// isSimilar implements spec.md §4.5: two same-level nodes are similar if
// both are leaves with equal values, or both are internal/root nodes whose
// "0" children are identical by identity and whose "1" children are
// identical by identity.
func isSimilar(a, b *Node) bool {
	if a == b {
		return false
	}
	if a.level != b.level {
		return false
	}
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return a.value == b.value
	}
	return a.branch.zero == b.branch.zero && a.branch.one == b.branch.one
}

// FindSimilarNode returns the first candidate similar to node, excluding
// node itself and excluding the Root (the root can never merge with
// anything). It returns nil if no candidate qualifies.
func FindSimilarNode(node *Node, candidates []*Node) *Node {
	if node.IsRoot() {
		return nil
	}
	for _, c := range candidates {
		if c == node {
			continue
		}
		if c.IsRoot() {
			continue
		}
		if isSimilar(node, c) {
			return c
		}
	}
	return nil
}

// ApplyReductionRule looks for a node similar to x among the other nodes at
// x's level and, if found, merges x into it: every edge into x is rewired
// to the survivor and x is removed. It reports whether a merge happened.
func (d *Diagram) ApplyReductionRule(x *Node) (bool, error) {
	if x.IsRoot() {
		return false, nil
	}

	candidates := d.GetNodesOfLevel(x.level)
	similar := FindSimilarNode(x, candidates)
	if similar == nil {
		return false, nil
	}

	if err := d.substitute(x, similar); err != nil {
		return false, err
	}
	logx.Logger.Debug().Str("merged", x.id).Str("into", similar.id).Int("level", x.level).Msg("reduction rule applied")
	return true, nil
}

// ApplyEliminationRule removes x if both of its branches point at the same
// child, rewiring every edge into x to that child directly. Root and Leaf
// nodes are never eliminated: a leaf has no branches to compare, and the
// root has no parents to rewire and must remain the diagram's entry point.
func (d *Diagram) ApplyEliminationRule(x *Node) (bool, error) {
	if x.kind != KindInternal {
		return false, nil
	}
	if !x.branch.HasEqualBranches() {
		return false, nil
	}

	child := x.branch.zero
	if err := d.substitute(x, child); err != nil {
		return false, err
	}
	logx.Logger.Debug().Str("eliminated", x.id).Str("child", child.id).Int("level", x.level).Msg("elimination rule applied")
	return true, nil
}

// Minimize drives reduction and elimination to a fixed point (or, when
// untilDone is false, for a single pass — used by tests to observe
// intermediate states). Each level is processed leaves-first: merging
// leaves first creates sharing that lets their parents become merge
// candidates on the next pass up.
func (d *Diagram) Minimize(untilDone bool) error {
	for {
		changed, err := d.minimizePass()
		if err != nil {
			return err
		}
		if !changed || !untilDone {
			break
		}
	}
	return d.maybeValidate("Minimize")
}

func (d *Diagram) minimizePass() (bool, error) {
	changed := false

	for level := d.n; level >= 1; level-- {
		for _, x := range d.GetNodesOfLevel(level) {
			if _, ok := d.byID[x.id]; !ok {
				continue // already merged away earlier in this pass
			}
			merged, err := d.ApplyReductionRule(x)
			if err != nil {
				return false, err
			}
			changed = changed || merged
		}

		for _, x := range d.GetNodesOfLevel(level) {
			if _, ok := d.byID[x.id]; !ok {
				continue
			}
			eliminated, err := d.ApplyEliminationRule(x)
			if err != nil {
				return false, err
			}
			changed = changed || eliminated
		}
	}

	return changed, nil
}

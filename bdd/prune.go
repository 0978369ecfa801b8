package bdd

import "github.com/lovasoa/event-reduce/internal/logx"

// RemoveIrrelevantLeafNodes removes every leaf whose value equals marker
// and collapses the diagram accordingly: an internal node that loses its
// only valid child is itself replaced, in every one of its parents, by its
// surviving child (or is itself marked for removal if both its children
// are gone), cascading upward to the root. This is the same "replace a
// node by a descendant in all its parents" primitive used by the
// elimination rule — see substitute in diagram.go — which is why a pruned
// diagram's edges can skip levels exactly the way an eliminated one can
// (SPEC_FULL.md §3.1).
//
// If every leaf in the diagram is the marker, there is no defined value
// left anywhere; per the reference behavior spec.md §4.9 chose, the
// diagram is left empty and subsequent Resolve calls fail.
func (d *Diagram) RemoveIrrelevantLeafNodes(marker string) error {
	dead := make(map[string]bool)

	leaves := d.GetNodesOfLevel(d.n)
	for _, leaf := range leaves {
		if leaf.value == marker {
			dead[leaf.id] = true
		}
	}

	if len(dead) == 0 {
		return d.maybeValidate("RemoveIrrelevantLeafNodes")
	}

	if len(dead) == len(leaves) {
		d.clearAll()
		d.empty = true
		logx.Logger.Debug().Str("marker", marker).Msg("every leaf was the marker; diagram is now empty")
		return nil
	}

	for level := d.n - 1; level >= 1; level-- {
		for _, x := range d.GetNodesOfLevel(level) {
			if dead[x.id] {
				continue
			}

			zero, _ := x.branch.GetBranch("0")
			one, _ := x.branch.GetBranch("1")
			zeroDead := dead[zero.id]
			oneDead := dead[one.id]

			switch {
			case zeroDead && oneDead:
				dead[x.id] = true
			case zeroDead:
				if err := d.substitute(x, one); err != nil {
					return err
				}
			case oneDead:
				if err := d.substitute(x, zero); err != nil {
					return err
				}
			default:
				if x.branch.HasEqualBranches() {
					if _, err := d.ApplyEliminationRule(x); err != nil {
						return err
					}
				}
			}
		}

		for _, x := range d.GetNodesOfLevel(level) {
			if dead[x.id] {
				d.removeNode(x)
			}
		}
	}

	root := d.root
	zero, _ := root.branch.GetBranch("0")
	one, _ := root.branch.GetBranch("1")
	switch {
	case dead[zero.id] && dead[one.id]:
		// Every path from the root is dead even though not every leaf was
		// the marker (e.g. the only surviving leaf is unreachable once its
		// siblings collapsed). Same reference behavior as "all marker".
		d.clearAll()
		d.empty = true
	case dead[zero.id]:
		if err := root.branch.SetBranch("0", one); err != nil {
			return err
		}
	case dead[one.id]:
		if err := root.branch.SetBranch("1", zero); err != nil {
			return err
		}
	}

	for _, leaf := range leaves {
		if dead[leaf.id] {
			d.removeNode(leaf)
		}
	}

	logx.Logger.Debug().Str("marker", marker).Int("removed", len(dead)).Msg("irrelevant leaves pruned")

	return d.maybeValidate("RemoveIrrelevantLeafNodes")
}

func (d *Diagram) clearAll() {
	d.levels = make(map[int]*levelSet)
	d.byID = make(map[string]*Node)
	d.root = nil
}

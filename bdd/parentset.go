package bdd

// parentEntry records one up-reference edge: the parent reached this node
// via branch label Label.
type parentEntry struct {
	parent *Node
	label  string
}

// ParentSet is a multiset of (parent, label) up-references. Multiplicity
// matters: a node whose single parent reaches it on both the "0" and "1"
// branches carries two entries for that parent, and removing one must never
// disturb the other. A plain slice with linear scans is used throughout,
// matching the teacher's preference for direct slice manipulation
// (append/copy) over generic container types.
type ParentSet struct {
	entries []parentEntry
}

func newParentSet() *ParentSet {
	return &ParentSet{}
}

// add records one more (parent, label) up-reference.
func (p *ParentSet) add(parent *Node, label string) {
	p.entries = append(p.entries, parentEntry{parent: parent, label: label})
}

// remove deletes exactly one (parent, label) entry, if present. It is a
// no-op if no matching entry exists.
func (p *ParentSet) remove(parent *Node, label string) {
	for i, e := range p.entries {
		if e.parent == parent && e.label == label {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return
		}
	}
}

// has reports whether parent appears at least once, regardless of label.
func (p *ParentSet) has(parent *Node) bool {
	for _, e := range p.entries {
		if e.parent == parent {
			return true
		}
	}
	return false
}

// getAll returns each distinct parent once, in first-seen order.
func (p *ParentSet) getAll() []*Node {
	seen := make(map[string]bool, len(p.entries))
	out := make([]*Node, 0, len(p.entries))
	for _, e := range p.entries {
		if seen[e.parent.id] {
			continue
		}
		seen[e.parent.id] = true
		out = append(out, e.parent)
	}
	return out
}

// size returns the total multiplicity, i.e. the edge count.
func (p *ParentSet) size() int {
	return len(p.entries)
}

// snapshot copies the current entries so callers can iterate while the set
// itself is mutated (reduction and pruning both rewire edges out from under
// the node being iterated).
func (p *ParentSet) snapshot() []parentEntry {
	out := make([]parentEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Exported read-only views, used by the validator and by callers
// inspecting a diagram from outside the package.

// GetAll returns each distinct parent once, in first-seen order.
func (p *ParentSet) GetAll() []*Node { return p.getAll() }

// Size returns the total multiplicity.
func (p *ParentSet) Size() int { return p.size() }

// Has reports whether parent appears at least once.
func (p *ParentSet) Has(parent *Node) bool { return p.has(parent) }

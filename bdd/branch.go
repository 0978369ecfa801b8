package bdd

// Branch is the two-slot child holder used by Root and Internal nodes. It
// belongs to exactly one owner node and keeps that owner's children's
// ParentSets in sync on every mutation.
type Branch struct {
	owner     *Node
	zero, one *Node
}

func newBranch(owner *Node) *Branch {
	return &Branch{owner: owner}
}

func isBranchLabel(label string) bool {
	return label == "0" || label == "1"
}

// GetBranch returns the child on the given label ("0" or "1").
func (b *Branch) GetBranch(label string) (*Node, error) {
	switch label {
	case "0":
		return b.zero, nil
	case "1":
		return b.one, nil
	default:
		return nil, preconditionf("unknown branch label %q", label)
	}
}

// SetBranch replaces the child on label, updating the prior child's and the
// new child's ParentSet atomically. Setting the same node on both labels is
// supported and correctly yields a parent multiplicity of two.
func (b *Branch) SetBranch(label string, child *Node) error {
	if !isBranchLabel(label) {
		return preconditionf("unknown branch label %q", label)
	}

	prev, _ := b.GetBranch(label)
	if prev != nil {
		prev.parents.remove(b.owner, label)
	}

	switch label {
	case "0":
		b.zero = child
	case "1":
		b.one = child
	}

	if child != nil {
		child.parents.add(b.owner, label)
	}
	return nil
}

// HasEqualBranches reports whether the two children are the same node by
// identity, not merely structurally equal.
func (b *Branch) HasEqualBranches() bool {
	return b.zero != nil && b.zero == b.one
}

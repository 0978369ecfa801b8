package bdd

// Resolver binds one BDD variable to a property of an external state. It is
// called with the full state string passed to Resolve and must answer a
// boolean for that variable.
type Resolver func(state string) bool

// Resolve descends from the root, calling resolvers[node.level] at each
// Root or Internal node to choose the "1" or "0" branch, and returns the
// value of the leaf it reaches. The resolver index equals the node's level
// (see SPEC_FULL.md §4): the root decides variable 0, a level-L internal
// node decides variable L, matching the builder's own path-to-bit mapping.
func (d *Diagram) Resolve(resolvers map[int]Resolver, state string) (string, error) {
	if d.empty || d.root == nil {
		return "", preconditionf("resolve called on an empty diagram (every leaf was pruned as irrelevant)")
	}

	node := d.root
	for !node.IsLeaf() {
		resolver, ok := resolvers[node.level]
		if !ok {
			return "", resolverf("no resolver registered for variable %d (node %s)", node.level, node.id)
		}

		label := "0"
		if resolver(state) {
			label = "1"
		}

		child, err := node.branch.GetBranch(label)
		if err != nil {
			return "", resolverf("variable %d (node %s): %v", node.level, node.id, err)
		}
		node = child
	}

	return node.value, nil
}

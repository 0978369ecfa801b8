package bdd

// ToJSON produces a stable plain representation of the diagram: each
// Root/Internal node becomes a map with "0" and "1" entries, each leaf
// becomes a map with a "value" entry; when includeIDs is true every node's
// map also carries its "id". The result is a plain map[string]any tree
// suitable for encoding/json.Marshal or for direct equality comparison in
// tests.
//
// This is lossy with respect to sharing: a node referenced by two parents
// is re-expanded into two separate subtrees in the output, since plain
// nested maps cannot represent a DAG. Callers who need to detect sharing
// must pass includeIDs and compare "id" fields across the expansion.
func (d *Diagram) ToJSON(includeIDs bool) map[string]any {
	if d.empty || d.root == nil {
		return map[string]any{}
	}
	return nodeToJSON(d.root, includeIDs)
}

func nodeToJSON(n *Node, includeIDs bool) map[string]any {
	out := make(map[string]any, 3)
	if includeIDs {
		out["id"] = n.id
	}

	if n.IsLeaf() {
		out["value"] = n.value
		return out
	}

	zero, _ := n.branch.GetBranch("0")
	one, _ := n.branch.GetBranch("1")
	out["0"] = nodeToJSON(zero, includeIDs)
	out["1"] = nodeToJSON(one, includeIDs)
	return out
}

package bdd

import "github.com/lovasoa/event-reduce/internal/logx"

// Diagram is the top-level owner of a BDD: the level index, the node
// registry, and the root. A node is "in" the diagram iff it is reachable
// from root; levels and byID are derived views kept in lockstep with
// every mutation, never lazily reconciled.
type Diagram struct {
	n      int // number of variables; leaves live at level n
	root   *Node
	levels map[int]*levelSet
	byID   map[string]*Node

	empty bool // set by RemoveIrrelevantLeafNodes when every leaf was the marker

	opts Options
}

func newDiagram(n int, opts Options) *Diagram {
	d := &Diagram{
		n:      n,
		levels: make(map[int]*levelSet),
		byID:   make(map[string]*Node),
		opts:   opts,
	}
	logx.SetLevel(opts.logLevel())
	return d
}

// N returns the number of variables the truth table this diagram was built
// from was defined over.
func (d *Diagram) N() int { return d.n }

// Root returns the diagram's unique Root node.
func (d *Diagram) Root() *Node { return d.root }

// SetDebug toggles debug-mode validation on an existing diagram.
func (d *Diagram) SetDebug(debug bool) {
	d.opts.Debug = debug
	logx.SetLevel(d.opts.logLevel())
}

func (d *Diagram) registerNode(n *Node) {
	d.byID[n.id] = n
	ls, ok := d.levels[n.level]
	if !ok {
		ls = newLevelSet()
		d.levels[n.level] = ls
	}
	ls.add(n)
}

// removeNode detaches n from its own children (removing n's up-reference
// entries from them) and deletes n from the registries. It does not touch
// n's parents — callers rewire those via substitute, either before the call
// or, as RemoveIrrelevantLeafNodes does for dead nodes, afterwards within
// the same operation.
func (d *Diagram) removeNode(n *Node) {
	if n.branch != nil {
		for _, label := range [...]string{"0", "1"} {
			child, _ := n.branch.GetBranch(label)
			if child != nil {
				child.parents.remove(n, label)
			}
		}
	}
	delete(d.byID, n.id)
	if ls, ok := d.levels[n.level]; ok {
		ls.remove(n)
	}
}

// substitute rewires every parent edge pointing at x to point at survivor
// instead, then removes x from the diagram. It is the one primitive behind
// both the reduction rule's merge and the elimination rule's collapse: the
// two are, structurally, the same operation applied to different choices
// of survivor.
func (d *Diagram) substitute(x, survivor *Node) error {
	for _, pe := range x.parents.snapshot() {
		if err := pe.parent.branch.SetBranch(pe.label, survivor); err != nil {
			return err
		}
	}
	d.removeNode(x)
	return nil
}

// CountNodes returns the total number of reachable nodes, leaves included.
func (d *Diagram) CountNodes() int {
	total := 0
	for _, ls := range d.levels {
		total += ls.size()
	}
	return total
}

// GetNodesOfLevel returns the nodes at level L in insertion order.
func (d *Diagram) GetNodesOfLevel(level int) []*Node {
	ls, ok := d.levels[level]
	if !ok {
		return nil
	}
	return ls.list()
}

// GetLeafNodes is shorthand for GetNodesOfLevel(N).
func (d *Diagram) GetLeafNodes() []*Node {
	return d.GetNodesOfLevel(d.n)
}

// IsEmpty reports whether pruning removed every value from the diagram
// (the all-leaves-were-the-marker corner case of RemoveIrrelevantLeafNodes).
func (d *Diagram) IsEmpty() bool { return d.empty }

func (d *Diagram) maybeValidate(op string) error {
	if !d.opts.Debug {
		return nil
	}
	if err := EnsureCorrectBdd(d); err != nil {
		logx.Logger.Error().Str("op", op).Err(err).Msg("bdd invariant check failed")
		return err
	}
	return nil
}

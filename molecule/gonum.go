// File: gonum.go
// Role: gonum graph adapter and topological (bond-count) distances.
//
// Mol satisfies gonum's graph.Undirected through a lightweight view, so
// callers can run any gonum graph algorithm over a molecule without
// copying it. Inside this module the adapter backs the shortest-path
// distances consumed by the charge-proximity filter.

package molecule

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/traverse"
)

// molNode is an atom ID viewed as a gonum node.
type molNode int64

// ID implements graph.Node.
func (n molNode) ID() int64 { return int64(n) }

// molEdge is an unweighted atom adjacency viewed as a gonum edge.
type molEdge struct{ f, t molNode }

func (e molEdge) From() graph.Node         { return e.f }
func (e molEdge) To() graph.Node           { return e.t }
func (e molEdge) ReversedEdge() graph.Edge { return molEdge{f: e.t, t: e.f} }

// gonumView adapts a Mol to graph.Undirected. It is a read-only view; the
// molecule must not be mutated while the view is in use.
type gonumView struct{ m *Mol }

// GonumGraph returns a read-only gonum graph.Undirected view of the
// molecule, with node IDs equal to atom IDs.
func (m *Mol) GonumGraph() graph.Undirected { return gonumView{m: m} }

func (g gonumView) Node(id int64) graph.Node {
	if _, ok := g.m.atoms[int(id)]; !ok {
		return nil
	}
	return molNode(id)
}

func (g gonumView) Nodes() graph.Nodes {
	nodes := make([]graph.Node, 0, len(g.m.atomIDs))
	for _, id := range g.m.atomIDs {
		nodes = append(nodes, molNode(id))
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g gonumView) From(id int64) graph.Nodes {
	nbs := g.m.Neighbors(int(id))
	nodes := make([]graph.Node, 0, len(nbs))
	for _, nb := range nbs {
		nodes = append(nodes, molNode(nb))
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g gonumView) HasEdgeBetween(xid, yid int64) bool {
	_, ok := g.m.BondBetween(int(xid), int(yid))
	return ok
}

func (g gonumView) Edge(uid, vid int64) graph.Edge {
	return g.EdgeBetween(uid, vid)
}

func (g gonumView) EdgeBetween(xid, yid int64) graph.Edge {
	if !g.HasEdgeBetween(xid, yid) {
		return nil
	}
	return molEdge{f: molNode(xid), t: molNode(yid)}
}

// ShortestPathLen returns the number of bonds on a shortest path between
// two atoms, computed by gonum breadth-first traversal. The second result
// is false when the atoms are disconnected or unknown.
// Complexity: O(V + E)
func (m *Mol) ShortestPathLen(a, b int) (int, bool) {
	if _, ok := m.atoms[a]; !ok {
		return 0, false
	}
	if _, ok := m.atoms[b]; !ok {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	dist := -1
	var bf traverse.BreadthFirst
	bf.Walk(m.GonumGraph(), molNode(a), func(n graph.Node, d int) bool {
		if n.ID() == int64(b) {
			dist = d
			return true
		}
		return false
	})
	if dist < 0 {
		return 0, false
	}
	return dist, true
}

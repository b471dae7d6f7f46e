// File: rings.go
// Role: ring perception via a breadth-first spanning tree and chord cycles.
//
// The engine needs rings for three things: cyclicity features, the
// six-membered ring walks the aryne rule and aromaticity filter inspect,
// and candidate aromatic rings for aromatization and Clar optimization.
// A fundamental cycle basis is sufficient for all three.

package molecule

import (
	"sort"
	"strconv"
	"strings"
)

// Ring is a closed walk through the molecule. Atoms lists the walk in
// order; Bonds[i] connects Atoms[i] to Atoms[(i+1) % len(Atoms)].
type Ring struct {
	Atoms []int
	Bonds []int
}

// Size returns the number of atoms (equal to the number of bonds).
func (r Ring) Size() int { return len(r.Atoms) }

// signature is a canonical key for deduplication: sorted bond IDs.
func (r Ring) signature() string {
	ids := make([]int, len(r.Bonds))
	copy(ids, r.Bonds)
	sort.Ints(ids)
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

// Rings returns a fundamental cycle basis of the molecule, one ring per
// chord of a breadth-first spanning forest, deduplicated by bond set.
// Deterministic: traversal follows ascending atom IDs and insertion-order
// incident bonds.
// Complexity: O(V·E) in the worst case (path reconstruction per chord).
func (m *Mol) Rings() []Ring {
	parent := make(map[int]int, len(m.atomIDs))     // atom -> parent atom
	parentBond := make(map[int]int, len(m.atomIDs)) // atom -> bond to parent
	depth := make(map[int]int, len(m.atomIDs))
	visited := make(map[int]bool, len(m.atomIDs))
	treeBond := make(map[int]bool, len(m.bondIDs))

	for _, root := range m.atomIDs {
		if visited[root] {
			continue
		}
		visited[root] = true
		depth[root] = 0
		queue := []int{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, bid := range m.atoms[cur].bonds {
				nb := m.bonds[bid].Other(cur)
				if visited[nb] {
					continue
				}
				visited[nb] = true
				parent[nb] = cur
				parentBond[nb] = bid
				depth[nb] = depth[cur] + 1
				treeBond[bid] = true
				queue = append(queue, nb)
			}
		}
	}

	var rings []Ring
	seen := make(map[string]bool)
	for _, bid := range m.bondIDs {
		if treeBond[bid] {
			continue
		}
		b := m.bonds[bid]
		ring, ok := m.chordCycle(b, parent, parentBond, depth)
		if !ok {
			continue
		}
		sig := ring.signature()
		if !seen[sig] {
			seen[sig] = true
			rings = append(rings, ring)
		}
	}
	return rings
}

// chordCycle builds the closed walk induced by chord b over the spanning
// forest: up from both endpoints to their lowest common ancestor, closed
// by the chord itself.
func (m *Mol) chordCycle(b *Bond, parent, parentBond, depth map[int]int) (Ring, bool) {
	u, v := b.A1, b.A2
	var uSide, vSide []int // atom walks toward the LCA
	var uBonds, vBonds []int
	for depth[u] > depth[v] {
		uSide = append(uSide, u)
		uBonds = append(uBonds, parentBond[u])
		u = parent[u]
	}
	for depth[v] > depth[u] {
		vSide = append(vSide, v)
		vBonds = append(vBonds, parentBond[v])
		v = parent[v]
	}
	for u != v {
		uSide = append(uSide, u)
		uBonds = append(uBonds, parentBond[u])
		u = parent[u]
		vSide = append(vSide, v)
		vBonds = append(vBonds, parentBond[v])
		v = parent[v]
	}
	// u == v is the LCA. Walk: A1-side up, LCA, then v-side back down.
	atoms := make([]int, 0, len(uSide)+len(vSide)+1)
	bonds := make([]int, 0, len(uBonds)+len(vBonds)+1)
	atoms = append(atoms, uSide...)
	atoms = append(atoms, u)
	bonds = append(bonds, uBonds...)
	for i := len(vSide) - 1; i >= 0; i-- {
		atoms = append(atoms, vSide[i])
		bonds = append(bonds, vBonds[i])
	}
	bonds = append(bonds, b.ID) // chord closes the walk
	if len(atoms) < 3 {
		return Ring{}, false
	}
	return Ring{Atoms: atoms, Bonds: bonds}, true
}

// RingsOfSize returns the basis rings with exactly n atoms.
func (m *Mol) RingsOfSize(n int) []Ring {
	var out []Ring
	for _, r := range m.Rings() {
		if r.Size() == n {
			out = append(out, r)
		}
	}
	return out
}

// IsCyclic reports whether the molecule contains at least one ring.
func (m *Mol) IsCyclic() bool {
	return len(m.Rings()) > 0
}

// File: isomorphism.go
// Role: labeled-graph comparison for worklist deduplication.
//
// Isomorphic ignores atom numbering: two structures are equivalent when a
// label-preserving bijection maps one onto the other (element, charge,
// radical count on atoms; order on bonds). Identical compares under the
// identity map on atom IDs, which is what strict deduplication
// (keep-isomorphic mode) requires.

package molecule

import (
	"fmt"
	"sort"
	"strings"
)

// atomInvariant is a mapping-independent label used to prune the
// backtracking search: own labels, degree, sorted incident orders, and one
// round of neighbor-label refinement.
func atomInvariant(m *Mol, a *Atom) string {
	orders := make([]string, 0, len(a.bonds))
	neighbors := make([]string, 0, len(a.bonds))
	for _, bid := range a.bonds {
		b := m.bonds[bid]
		orders = append(orders, fmt.Sprintf("%.1f", float64(b.Order)))
		n := m.atoms[b.Other(a.ID)]
		neighbors = append(neighbors, fmt.Sprintf("%d:%d:%d", n.Element, n.Charge, n.Radicals))
	}
	sort.Strings(orders)
	sort.Strings(neighbors)
	return fmt.Sprintf("%d|%d|%d|%s|%s",
		a.Element, a.Charge, a.Radicals,
		strings.Join(orders, ","), strings.Join(neighbors, ","))
}

// Isomorphic reports whether a and b are the same labeled molecular graph
// up to atom renumbering.
// Complexity: exponential worst case; the invariant partition keeps the
// search tiny for chemically sized graphs.
func Isomorphic(a, b *Mol) bool {
	if a.AtomCount() != b.AtomCount() || a.BondCount() != b.BondCount() {
		return false
	}
	if a.AtomCount() == 0 {
		return true
	}

	// Partition b's atoms by invariant and check the multisets agree.
	bByInv := make(map[string][]*Atom)
	for _, ba := range b.Atoms() {
		inv := atomInvariant(b, ba)
		bByInv[inv] = append(bByInv[inv], ba)
	}
	aAtoms := a.Atoms()
	aInv := make(map[int]string, len(aAtoms))
	counts := make(map[string]int)
	for _, aa := range aAtoms {
		inv := atomInvariant(a, aa)
		aInv[aa.ID] = inv
		counts[inv]++
	}
	for inv, n := range counts {
		if len(bByInv[inv]) != n {
			return false
		}
	}

	// Match rare invariant classes first to fail fast.
	order := make([]*Atom, len(aAtoms))
	copy(order, aAtoms)
	sort.SliceStable(order, func(i, j int) bool {
		return counts[aInv[order[i].ID]] < counts[aInv[order[j].ID]]
	})

	mapping := make(map[int]int, len(aAtoms)) // a atom ID -> b atom ID
	used := make(map[int]bool, len(aAtoms))
	return matchAtoms(a, b, order, 0, aInv, bByInv, mapping, used)
}

func matchAtoms(a, b *Mol, order []*Atom, idx int, aInv map[int]string,
	bByInv map[string][]*Atom, mapping map[int]int, used map[int]bool,
) bool {
	if idx == len(order) {
		return true
	}
	aa := order[idx]
	for _, cand := range bByInv[aInv[aa.ID]] {
		if used[cand.ID] || !edgesConsistent(a, b, aa, cand, mapping) {
			continue
		}
		mapping[aa.ID] = cand.ID
		used[cand.ID] = true
		if matchAtoms(a, b, order, idx+1, aInv, bByInv, mapping, used) {
			return true
		}
		delete(mapping, aa.ID)
		delete(used, cand.ID)
	}
	return false
}

// edgesConsistent checks that every already-mapped neighbor of aa connects
// to cand through a bond of identical order.
func edgesConsistent(a, b *Mol, aa, cand *Atom, mapping map[int]int) bool {
	for _, bid := range aa.bonds {
		ab := a.bonds[bid]
		other := ab.Other(aa.ID)
		mapped, ok := mapping[other]
		if !ok {
			continue
		}
		bb, ok := b.BondBetween(cand.ID, mapped)
		if !ok || bb.Order != ab.Order {
			return false
		}
	}
	return true
}

// Identical reports whether a and b agree atom-for-atom under the
// ID-preserving map: same elements, charges, radical counts, and the same
// bonds with the same orders. This is the strict comparison used when
// configuration-sensitive duplicates must be kept apart.
func Identical(a, b *Mol) bool {
	if a.AtomCount() != b.AtomCount() || a.BondCount() != b.BondCount() {
		return false
	}
	for _, aa := range a.Atoms() {
		ba, ok := b.Atom(aa.ID)
		if !ok || aa.Element != ba.Element || aa.Charge != ba.Charge || aa.Radicals != ba.Radicals {
			return false
		}
	}
	for _, ab := range a.Bonds() {
		bb, ok := b.BondBetween(ab.A1, ab.A2)
		if !ok || bb.Order != ab.Order {
			return false
		}
	}
	return true
}

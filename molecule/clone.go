// File: clone.go
// Role: deep copies preserving atom and bond IDs.
//
// Every rewrite rule clones before editing, so the seed supplied by the
// caller is read-only for the lifetime of a generation call. IDs carry
// over so a path found on the source addresses the same atoms on the copy.

package molecule

// Clone returns a deep, independent copy of the molecule. Atom and bond
// IDs, the ID counters, and iteration order are preserved exactly.
// Complexity: O(V + E)
func (m *Mol) Clone() *Mol {
	c := &Mol{
		atoms:      make(map[int]*Atom, len(m.atoms)),
		bonds:      make(map[int]*Bond, len(m.bonds)),
		atomIDs:    make([]int, len(m.atomIDs)),
		bondIDs:    make([]int, len(m.bondIDs)),
		nextAtomID: m.nextAtomID,
		nextBondID: m.nextBondID,
	}
	copy(c.atomIDs, m.atomIDs)
	copy(c.bondIDs, m.bondIDs)
	for id, a := range m.atoms {
		na := &Atom{ID: a.ID, Element: a.Element, Charge: a.Charge, Radicals: a.Radicals}
		na.bonds = make([]int, len(a.bonds))
		copy(na.bonds, a.bonds)
		c.atoms[id] = na
	}
	for id, b := range m.bonds {
		c.bonds[id] = &Bond{ID: b.ID, A1: b.A1, A2: b.A2, Order: b.Order}
	}
	return c
}

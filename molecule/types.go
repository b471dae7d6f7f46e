// File: types.go
// Role: Mol, Atom and Bond storage with stable IDs and deterministic iteration.

package molecule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for molecular graph construction and lookup.
var (
	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("molecule: bond not found")

	// ErrSelfBond indicates a bond from an atom to itself was attempted.
	ErrSelfBond = errors.New("molecule: self-bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same atom pair.
	ErrDuplicateBond = errors.New("molecule: bond between pair already exists")

	// ErrBadOrder indicates an order outside {1, 1.5, 2, 3}.
	ErrBadOrder = errors.New("molecule: invalid bond order")
)

// BondOrder is the discrete order of a bond. Aromatic bonds carry the
// conventional fractional order 1.5 and may only appear as members of a
// ring whose every bond is aromatic.
type BondOrder float64

// Recognized bond orders.
const (
	Single   BondOrder = 1
	Aromatic BondOrder = 1.5
	Double   BondOrder = 2
	Triple   BondOrder = 3
)

// validOrder reports whether o is one of the recognized orders.
func validOrder(o BondOrder) bool {
	return o == Single || o == Double || o == Triple || o == Aromatic
}

// Atom is a node of the molecular graph.
//
// ID is unique within a Mol and preserved by Clone. Charge is the formal
// charge; Radicals is the number of unpaired electrons. Lone pairs are not
// stored — see Mol.LonePairs.
type Atom struct {
	// ID uniquely identifies this atom within its Mol.
	ID int

	// Element is the atomic number (1 = H, 6 = C, 7 = N, 8 = O, 16 = S, ...).
	Element int

	// Charge is the formal charge.
	Charge int

	// Radicals is the number of unpaired (radical) electrons; never negative.
	Radicals int

	// bonds holds incident bond IDs in insertion order.
	bonds []int
}

// Bonds returns the incident bond IDs in insertion order.
// The returned slice is a copy; mutating it does not affect the atom.
func (a *Atom) Bonds() []int {
	out := make([]int, len(a.bonds))
	copy(out, a.bonds)
	return out
}

// Bond is an undirected edge of the molecular graph between atoms A1 and A2.
type Bond struct {
	// ID uniquely identifies this bond within its Mol.
	ID int

	// A1 and A2 are the endpoint atom IDs.
	A1, A2 int

	// Order is the bond order.
	Order BondOrder
}

// Other returns the endpoint opposite to atomID.
// Calling it with an ID that is not an endpoint returns A1.
func (b *Bond) Other(atomID int) int {
	if b.A1 == atomID {
		return b.A2
	}
	return b.A1
}

// Mol is a molecular graph with exclusive ownership of its atoms and bonds.
// Two Mols never share Atom or Bond values; Clone produces an independent
// deep copy. The zero value is not usable — construct with New.
type Mol struct {
	atoms map[int]*Atom
	bonds map[int]*Bond

	// atomIDs and bondIDs are kept sorted ascending for deterministic
	// iteration everywhere in the module.
	atomIDs []int
	bondIDs []int

	nextAtomID int
	nextBondID int
}

// New creates an empty molecular graph.
// Complexity: O(1)
func New() *Mol {
	return &Mol{
		atoms: make(map[int]*Atom),
		bonds: make(map[int]*Bond),
	}
}

// AddAtom inserts an atom and returns its ID. IDs are assigned sequentially
// starting from 0 and never reused.
func (m *Mol) AddAtom(element, charge, radicals int) int {
	id := m.nextAtomID
	m.nextAtomID++
	m.atoms[id] = &Atom{ID: id, Element: element, Charge: charge, Radicals: radicals}
	m.atomIDs = append(m.atomIDs, id)
	return id
}

// AddBond inserts a bond between two existing atoms and returns its ID.
// Returns ErrAtomNotFound, ErrSelfBond, ErrDuplicateBond or ErrBadOrder.
func (m *Mol) AddBond(a1, a2 int, order BondOrder) (int, error) {
	if a1 == a2 {
		return 0, ErrSelfBond
	}
	if !validOrder(order) {
		return 0, fmt.Errorf("%w: %v", ErrBadOrder, order)
	}
	x, ok := m.atoms[a1]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrAtomNotFound, a1)
	}
	y, ok := m.atoms[a2]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrAtomNotFound, a2)
	}
	if _, exists := m.BondBetween(a1, a2); exists {
		return 0, fmt.Errorf("%w: %d-%d", ErrDuplicateBond, a1, a2)
	}
	id := m.nextBondID
	m.nextBondID++
	m.bonds[id] = &Bond{ID: id, A1: a1, A2: a2, Order: order}
	m.bondIDs = append(m.bondIDs, id)
	x.bonds = append(x.bonds, id)
	y.bonds = append(y.bonds, id)
	return id, nil
}

// RemoveAtom deletes an atom and every bond incident to it. IDs of the
// remaining atoms and bonds are unchanged.
func (m *Mol) RemoveAtom(id int) error {
	a, ok := m.atoms[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAtomNotFound, id)
	}
	for _, bid := range append([]int(nil), a.bonds...) {
		m.removeBond(bid)
	}
	delete(m.atoms, id)
	m.atomIDs = removeSortedID(m.atomIDs, id)
	return nil
}

func (m *Mol) removeBond(bid int) {
	b, ok := m.bonds[bid]
	if !ok {
		return
	}
	for _, aid := range []int{b.A1, b.A2} {
		a := m.atoms[aid]
		for i, incident := range a.bonds {
			if incident == bid {
				a.bonds = append(a.bonds[:i], a.bonds[i+1:]...)
				break
			}
		}
	}
	delete(m.bonds, bid)
	m.bondIDs = removeSortedID(m.bondIDs, bid)
}

func removeSortedID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Atom returns the atom with the given ID.
func (m *Mol) Atom(id int) (*Atom, bool) {
	a, ok := m.atoms[id]
	return a, ok
}

// Bond returns the bond with the given ID.
func (m *Mol) Bond(id int) (*Bond, bool) {
	b, ok := m.bonds[id]
	return b, ok
}

// Atoms returns all atoms in ascending ID order.
func (m *Mol) Atoms() []*Atom {
	out := make([]*Atom, 0, len(m.atomIDs))
	for _, id := range m.atomIDs {
		out = append(out, m.atoms[id])
	}
	return out
}

// Bonds returns all bonds in ascending ID order.
func (m *Mol) Bonds() []*Bond {
	out := make([]*Bond, 0, len(m.bondIDs))
	for _, id := range m.bondIDs {
		out = append(out, m.bonds[id])
	}
	return out
}

// AtomCount returns the number of atoms.
func (m *Mol) AtomCount() int { return len(m.atomIDs) }

// BondCount returns the number of bonds.
func (m *Mol) BondCount() int { return len(m.bondIDs) }

// Neighbors returns the atom IDs adjacent to atomID, in incident-bond
// insertion order. Unknown atoms yield nil.
func (m *Mol) Neighbors(atomID int) []int {
	a, ok := m.atoms[atomID]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(a.bonds))
	for _, bid := range a.bonds {
		out = append(out, m.bonds[bid].Other(atomID))
	}
	return out
}

// BondBetween returns the bond connecting a1 and a2, if any.
func (m *Mol) BondBetween(a1, a2 int) (*Bond, bool) {
	x, ok := m.atoms[a1]
	if !ok {
		return nil, false
	}
	for _, bid := range x.bonds {
		b := m.bonds[bid]
		if b.Other(a1) == a2 {
			return b, true
		}
	}
	return nil, false
}

// NetCharge returns the sum of formal charges.
func (m *Mol) NetCharge() int {
	total := 0
	for _, id := range m.atomIDs {
		total += m.atoms[id].Charge
	}
	return total
}

// RadicalCount returns the total number of radical electrons.
func (m *Mol) RadicalCount() int {
	total := 0
	for _, id := range m.atomIDs {
		total += m.atoms[id].Radicals
	}
	return total
}

// OrderSum returns the truncated integer sum of bond orders incident to
// atomID. Aromatic orders contribute 1.5 each before truncation, matching
// the lone-pair bookkeeping convention.
func (m *Mol) OrderSum(atomID int) int {
	a, ok := m.atoms[atomID]
	if !ok {
		return 0
	}
	sum := 0.0
	for _, bid := range a.bonds {
		sum += float64(m.bonds[bid].Order)
	}
	return int(sum)
}

// Connected reports whether every atom is reachable from the first one.
// The empty molecule is considered connected.
func (m *Mol) Connected() bool {
	if len(m.atomIDs) == 0 {
		return true
	}
	seen := make(map[int]bool, len(m.atomIDs))
	stack := []int{m.atomIDs[0]}
	seen[m.atomIDs[0]] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range m.Neighbors(cur) {
			if !seen[nb] {
				seen[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return len(seen) == len(m.atomIDs)
}

// Formula returns a Hill-ordered molecular formula with the net charge
// appended when non-zero, e.g. "C1H4" or "N3(-1)". Used in diagnostics.
func (m *Mol) Formula() string {
	counts := make(map[string]int)
	for _, id := range m.atomIDs {
		counts[Symbol(m.atoms[id].Element)]++
	}
	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		// Hill order: C first, H second, the rest alphabetically.
		rank := func(s string) int {
			switch s {
			case "C":
				return 0
			case "H":
				return 1
			default:
				return 2
			}
		}
		if rank(symbols[i]) != rank(symbols[j]) {
			return rank(symbols[i]) < rank(symbols[j])
		}
		return symbols[i] < symbols[j]
	})
	var sb strings.Builder
	for _, s := range symbols {
		fmt.Fprintf(&sb, "%s%d", s, counts[s])
	}
	if net := m.NetCharge(); net != 0 {
		fmt.Fprintf(&sb, "(%+d)", net)
	}
	return sb.String()
}

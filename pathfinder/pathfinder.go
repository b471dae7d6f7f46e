// File: pathfinder.go
// Role: the six delocalization path families.

package pathfinder

import "github.com/chemgraph/resonance/molecule"

// Direction distinguishes the two ways a bidirectional family can move
// the shared bond's order.
type Direction int

const (
	// GainOrder raises the order of bond12 (the lone-pair donor loses a pair).
	GainOrder Direction = iota + 1
	// LoseOrder lowers the order of bond12 (the acceptor gains a pair).
	LoseOrder
)

// TriadPath is a three-atom, two-bond rewrite site:
// Atom1-Bond12-Atom2-Bond23-Atom3.
type TriadPath struct {
	Atom1, Atom2, Atom3 int
	Bond12, Bond23      int
}

// PairPath is a two-adjacent-atom rewrite site with no bond change.
type PairPath struct {
	Atom1, Atom2 int
}

// AdjacentPath is a two-atom, one-bond rewrite site with a direction.
type AdjacentPath struct {
	Atom1, Atom2 int
	Bond12       int
	Direction    Direction
}

// CenterPath is the pentavalent-nitrogen-mediated site: the radical-
// bearing substituent and the negatively charged substituent of the
// nitrogen center.
type CenterPath struct {
	Radical  int
	Negative int
}

func singleOrDouble(o molecule.BondOrder) bool {
	return o == molecule.Single || o == molecule.Double
}

func doubleOrTriple(o molecule.BondOrder) bool {
	return o == molecule.Double || o == molecule.Triple
}

// AllylRadicalPaths finds allyl shifts anchored at a radical atom1:
// bond12 single/double, bond23 double/triple, atom3 distinct from atom1.
func AllylRadicalPaths(m *molecule.Mol, atom1 int) []TriadPath {
	a1, ok := m.Atom(atom1)
	if !ok || a1.Radicals == 0 {
		return nil
	}
	var paths []TriadPath
	for _, b12 := range a1.Bonds() {
		bond12, _ := m.Bond(b12)
		if !singleOrDouble(bond12.Order) {
			continue
		}
		atom2 := bond12.Other(atom1)
		a2, _ := m.Atom(atom2)
		for _, b23 := range a2.Bonds() {
			bond23, _ := m.Bond(b23)
			atom3 := bond23.Other(atom2)
			if atom3 != atom1 && doubleOrTriple(bond23.Order) {
				paths = append(paths, TriadPath{Atom1: atom1, Atom2: atom2, Atom3: atom3, Bond12: b12, Bond23: b23})
			}
		}
	}
	return paths
}

// LonePairMultipleBondPaths finds three-atom lone-pair shifts anchored at
// a non-carbon donor atom1 holding at least one pair it can lose. The
// endpoint must be carbon or able to gain a pair; sulfur never donates
// toward sulfur.
func LonePairMultipleBondPaths(m *molecule.Mol, atom1 int) []TriadPath {
	a1, ok := m.Atom(atom1)
	if !ok || a1.Element == molecule.Carbon {
		return nil
	}
	lp, err := m.LonePairs(atom1)
	if err != nil || lp == 0 || !CanLoseLonePair(m, atom1) {
		return nil
	}
	var paths []TriadPath
	for _, b12 := range a1.Bonds() {
		bond12, _ := m.Bond(b12)
		atom2 := bond12.Other(atom1)
		a2, _ := m.Atom(atom2)
		if a1.Element == molecule.Sulfur && a2.Element == molecule.Sulfur {
			continue
		}
		if !singleOrDouble(bond12.Order) {
			continue
		}
		for _, b23 := range a2.Bonds() {
			bond23, _ := m.Bond(b23)
			atom3 := bond23.Other(atom2)
			if atom3 == atom1 || !doubleOrTriple(bond23.Order) {
				continue
			}
			a3, _ := m.Atom(atom3)
			if a3.Element == molecule.Carbon || CanGainLonePair(m, atom3) {
				paths = append(paths, TriadPath{Atom1: atom1, Atom2: atom2, Atom3: atom3, Bond12: b12, Bond23: b23})
			}
		}
	}
	return paths
}

// adjRadicalDonor reports whether atom1 qualifies as the radical side of
// the adjacent lone-pair/radical family.
func adjRadicalDonor(m *molecule.Mol, a *molecule.Atom) bool {
	if a.Radicals < 1 {
		return false
	}
	lp, err := m.LonePairs(a.ID)
	if err != nil {
		return false
	}
	switch a.Element {
	case molecule.Carbon:
		return lp == 0
	case molecule.Nitrogen:
		return lp == 0 || lp == 1
	case molecule.Oxygen:
		return lp == 1 || lp == 2
	case molecule.Sulfur:
		return lp >= 0 && lp <= 2
	}
	return false
}

// adjLonePairAcceptor reports whether atom2 qualifies as the lone-pair
// side; adjacent O-O pairs are rejected.
func adjLonePairAcceptor(m *molecule.Mol, a1, a2 *molecule.Atom) bool {
	lp, err := m.LonePairs(a2.ID)
	if err != nil {
		return false
	}
	switch a2.Element {
	case molecule.Carbon:
		return lp == 1
	case molecule.Nitrogen:
		return lp == 1 || lp == 2
	case molecule.Oxygen:
		return (lp == 2 || lp == 3) && a1.Element != molecule.Oxygen
	case molecule.Sulfur:
		return lp >= 1 && lp <= 3
	}
	return false
}

// AdjacentLonePairRadicalPaths finds radical/lone-pair swap sites between
// atom1 (the radical) and a directly bonded heteroatom. The connecting
// bond's order is irrelevant.
func AdjacentLonePairRadicalPaths(m *molecule.Mol, atom1 int) []PairPath {
	a1, ok := m.Atom(atom1)
	if !ok || !adjRadicalDonor(m, a1) {
		return nil
	}
	var paths []PairPath
	for _, nb := range m.Neighbors(atom1) {
		a2, _ := m.Atom(nb)
		if adjLonePairAcceptor(m, a1, a2) {
			paths = append(paths, PairPath{Atom1: atom1, Atom2: nb})
		}
	}
	return paths
}

// AdjacentLonePairMultipleBondPaths finds one-bond lone-pair/order
// exchange sites anchored at non-carbon atom1. Both directions may match
// independently. The gain-order direction refuses to build S=S into S#S
// precursors (no sulfur-sulfur double bond is ever raised this way).
func AdjacentLonePairMultipleBondPaths(m *molecule.Mol, atom1 int) []AdjacentPath {
	a1, ok := m.Atom(atom1)
	if !ok || a1.Element == molecule.Carbon {
		return nil
	}
	var paths []AdjacentPath
	for _, b12 := range a1.Bonds() {
		bond12, _ := m.Bond(b12)
		atom2 := bond12.Other(atom1)
		a2, _ := m.Atom(atom2)
		if a2.Element == molecule.Hydrogen {
			continue
		}
		bothSulfur := a1.Element == molecule.Sulfur && a2.Element == molecule.Sulfur
		if singleOrDouble(bond12.Order) && CanLoseLonePair(m, atom1) &&
			!(bothSulfur && bond12.Order == molecule.Double) {
			paths = append(paths, AdjacentPath{Atom1: atom1, Atom2: atom2, Bond12: b12, Direction: GainOrder})
		}
		if doubleOrTriple(bond12.Order) && CanGainLonePair(m, atom1) {
			paths = append(paths, AdjacentPath{Atom1: atom1, Atom2: atom2, Bond12: b12, Direction: LoseOrder})
		}
	}
	return paths
}

// AdjacentLonePairRadicalMultipleBondPaths finds the radical-coupled
// variant: in the gain-order direction atom2 must be the radical, in the
// lose-order direction atom1 must be.
func AdjacentLonePairRadicalMultipleBondPaths(m *molecule.Mol, atom1 int) []AdjacentPath {
	a1, ok := m.Atom(atom1)
	if !ok || a1.Element == molecule.Carbon {
		return nil
	}
	var paths []AdjacentPath
	for _, b12 := range a1.Bonds() {
		bond12, _ := m.Bond(b12)
		atom2 := bond12.Other(atom1)
		a2, _ := m.Atom(atom2)
		if a2.Radicals > 0 && singleOrDouble(bond12.Order) && CanLoseLonePair(m, atom1) {
			paths = append(paths, AdjacentPath{Atom1: atom1, Atom2: atom2, Bond12: b12, Direction: GainOrder})
		}
		if a1.Radicals > 0 && doubleOrTriple(bond12.Order) && CanGainLonePair(m, atom1) {
			paths = append(paths, AdjacentPath{Atom1: atom1, Atom2: atom2, Bond12: b12, Direction: LoseOrder})
		}
	}
	return paths
}

// PentavalentNitrogenPaths finds the nitrogen-center-mediated site: atom1
// must be a radical-free, three-coordinate, positively charged nitrogen
// with no lone pairs; one single-bonded neighbor must be an uncharged
// radical able to lose a pair and another must be negatively charged and
// able to lose a pair. At most one path is returned per center.
func PentavalentNitrogenPaths(m *molecule.Mol, atom1 int) []CenterPath {
	a1, ok := m.Atom(atom1)
	if !ok || a1.Element != molecule.Nitrogen || a1.Charge != 1 || a1.Radicals != 0 {
		return nil
	}
	if lp, err := m.LonePairs(atom1); err != nil || lp != 0 {
		return nil
	}
	bonds := a1.Bonds()
	if len(bonds) != 3 {
		return nil
	}
	for _, b12 := range bonds {
		bond12, _ := m.Bond(b12)
		atom2 := bond12.Other(atom1)
		a2, _ := m.Atom(atom2)
		if a2.Radicals == 0 || bond12.Order != molecule.Single || a2.Charge != 0 || !CanLoseLonePair(m, atom2) {
			continue
		}
		for _, b13 := range bonds {
			bond13, _ := m.Bond(b13)
			atom3 := bond13.Other(atom1)
			if atom3 == atom2 || bond13.Order != molecule.Single {
				continue
			}
			a3, _ := m.Atom(atom3)
			if a3.Charge < 0 && CanLoseLonePair(m, atom3) {
				return []CenterPath{{Radical: atom2, Negative: atom3}}
			}
		}
	}
	return nil
}

// File: predicates.go
// Role: element-specific lone-pair capability predicates.

package pathfinder

import "github.com/chemgraph/resonance/molecule"

// CanGainLonePair reports whether an atom can accept one more lone pair:
// N and S with 0-2 pairs, O with 1-2 (oxygen never drops to zero pairs),
// C only as a carbene precursor with exactly 0.
func CanGainLonePair(m *molecule.Mol, atomID int) bool {
	a, ok := m.Atom(atomID)
	if !ok {
		return false
	}
	lp, err := m.LonePairs(atomID)
	if err != nil {
		return false
	}
	switch a.Element {
	case molecule.Nitrogen, molecule.Sulfur:
		return lp >= 0 && lp <= 2
	case molecule.Oxygen:
		return lp == 1 || lp == 2
	case molecule.Carbon:
		return lp == 0
	}
	return false
}

// CanLoseLonePair reports whether an atom can give up one lone pair:
// N and S with 1-3 pairs, O with 2-3, C only as a carbene with exactly 1.
func CanLoseLonePair(m *molecule.Mol, atomID int) bool {
	a, ok := m.Atom(atomID)
	if !ok {
		return false
	}
	lp, err := m.LonePairs(atomID)
	if err != nil {
		return false
	}
	switch a.Element {
	case molecule.Nitrogen, molecule.Sulfur:
		return lp >= 1 && lp <= 3
	case molecule.Oxygen:
		return lp == 2 || lp == 3
	case molecule.Carbon:
		return lp == 1
	}
	return false
}

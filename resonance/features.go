// File: features.go
// Role: immutable feature snapshot of a seed, computed once per call.

package resonance

import "github.com/chemgraph/resonance/molecule"

// Features is the snapshot of seed properties that drives rule selection
// and filtration. It is computed once per generation call and passed
// explicitly; rules never inspect the seed for features themselves.
type Features struct {
	// IsRadical reports at least one unpaired electron.
	IsRadical bool

	// IsCyclic reports at least one ring.
	IsCyclic bool

	// IsAromatic reports at least one perceived aromatic ring.
	IsAromatic bool

	// IsPolycyclicAromatic reports more than one aromatic ring.
	IsPolycyclicAromatic bool

	// IsArylRadical reports a radical whose unpaired electrons all sit on
	// aromatic-ring atoms, orthogonal to the pi system.
	IsArylRadical bool

	// HasNitrogenVal5 reports a nitrogen with zero lone pairs, the
	// precondition for the pentavalent-center-mediated shift.
	HasNitrogenVal5 bool

	// HasLonePairs reports at least one atom with a lone pair.
	HasLonePairs bool
}

// Analyze computes the feature snapshot for a molecule.
func Analyze(m *molecule.Mol) Features {
	f := Features{
		IsRadical: m.RadicalCount() > 0,
		IsCyclic:  m.IsCyclic(),
	}
	if f.IsCyclic {
		rings := m.AromaticRings()
		f.IsAromatic = len(rings) > 0
		f.IsPolycyclicAromatic = len(rings) > 1
		if f.IsRadical && f.IsAromatic {
			f.IsArylRadical = isArylRadical(m, rings)
		}
	}
	for _, a := range m.Atoms() {
		lp, err := m.LonePairs(a.ID)
		if err != nil {
			continue
		}
		if a.Element == molecule.Nitrogen && lp == 0 {
			f.HasNitrogenVal5 = true
		}
		if lp > 0 {
			f.HasLonePairs = true
		}
	}
	return f
}

// isArylRadical reports whether every radical electron sits on an atom of
// an aromatic ring.
func isArylRadical(m *molecule.Mol, rings []molecule.Ring) bool {
	inRing := make(map[int]bool)
	for _, r := range rings {
		for _, aid := range r.Atoms {
			inRing[aid] = true
		}
	}
	for _, a := range m.Atoms() {
		if a.Radicals > 0 && !inRing[a.ID] {
			return false
		}
	}
	return true
}

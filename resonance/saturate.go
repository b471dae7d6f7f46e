// File: saturate.go
// Role: temporary hydrogen saturation for GenerateIsomorphic.

package resonance

import (
	"fmt"

	"github.com/chemgraph/resonance/molecule"
)

// saturateRadicals returns a clone of m with every radical electron
// capped by an explicit hydrogen, plus the IDs of the hydrogens added.
// The IDs stay stable across rewrites, so the same list desaturates every
// derived structure.
func saturateRadicals(m *molecule.Mol) (*molecule.Mol, []int) {
	s := m.Clone()
	var added []int
	for _, a := range s.Atoms() {
		for a.Radicals > 0 {
			if s.DecrementRadical(a.ID) != nil {
				break
			}
			h := s.AddAtom(molecule.Hydrogen, 0, 0)
			if _, err := s.AddBond(a.ID, h, molecule.Single); err != nil {
				break
			}
			added = append(added, h)
		}
	}
	return s, added
}

// desaturateRadicals undoes saturateRadicals on a derived structure:
// each added hydrogen is removed and its heavy neighbor gets the radical
// electron back. A hydrogen that lost its bond during rewriting makes the
// structure unrecoverable.
func desaturateRadicals(m *molecule.Mol, added []int) (*molecule.Mol, error) {
	s := m.Clone()
	for _, h := range added {
		nbs := s.Neighbors(h)
		if len(nbs) != 1 {
			return nil, fmt.Errorf("resonance: saturating hydrogen %d has %d neighbors", h, len(nbs))
		}
		if err := s.IncrementRadical(nbs[0]); err != nil {
			return nil, err
		}
		if err := s.RemoveAtom(h); err != nil {
			return nil, err
		}
	}
	return s, nil
}

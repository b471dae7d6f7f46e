// File: kekulize.go
// Role: conversion of aromatic bonds into an alternating single/double
// assignment.
//
// Any internally consistent assignment is acceptable; the backtracking
// search below returns the first one found, which makes the tie-break
// deterministic for a given bond numbering.

package molecule

import "errors"

// ErrKekulize indicates that no consistent single/double assignment of the
// aromatic bonds exists.
var ErrKekulize = errors.New("molecule: no consistent kekulé assignment")

// Kekulize replaces every aromatic bond with a single or double order such
// that each atom's electron bookkeeping stays consistent. Molecules
// without aromatic bonds are left untouched. On failure the original
// aromatic orders are restored and ErrKekulize is returned.
// Complexity: exponential in the worst case, small in practice (the search
// is confined to the aromatic bonds and pruned per atom).
func (m *Mol) Kekulize() error {
	var arom []int
	for _, bid := range m.bondIDs {
		if m.bonds[bid].Order == Aromatic {
			arom = append(arom, bid)
		}
	}
	if len(arom) == 0 {
		return nil
	}
	if m.assignKekule(arom, 0) {
		return nil
	}
	for _, bid := range arom {
		m.bonds[bid].Order = Aromatic
	}
	return ErrKekulize
}

// assignKekule tries double before single for bond arom[i], pruning
// through atomKekuleOK on both endpoints, and finishes with a full
// validation once every bond is assigned.
func (m *Mol) assignKekule(arom []int, i int) bool {
	if i == len(arom) {
		return m.Validate() == nil
	}
	b := m.bonds[arom[i]]
	for _, order := range []BondOrder{Double, Single} {
		b.Order = order
		if m.atomKekuleOK(b.A1, arom) && m.atomKekuleOK(b.A2, arom) &&
			m.assignKekule(arom, i+1) {
			return true
		}
	}
	b.Order = Aromatic
	return false
}

// atomKekuleOK checks the partial assignment around one atom: at most one
// double bond among its (formerly) aromatic bonds, and, once all of them
// are decided, an integral nonnegative lone-pair balance within the
// valence cap.
func (m *Mol) atomKekuleOK(atomID int, arom []int) bool {
	aromSet := make(map[int]bool, len(arom))
	for _, bid := range arom {
		aromSet[bid] = true
	}
	a := m.atoms[atomID]
	doubles, undecided := 0, 0
	for _, bid := range a.bonds {
		if !aromSet[bid] {
			continue
		}
		switch m.bonds[bid].Order {
		case Aromatic:
			undecided++
		case Double:
			doubles++
		}
	}
	if doubles > 1 {
		return false
	}
	if undecided > 0 {
		return true
	}
	lp, err := m.LonePairs(atomID)
	if err != nil {
		return false
	}
	return 2*(m.OrderSum(atomID)+lp)+a.Radicals <= maxValenceElectrons[a.Element]
}

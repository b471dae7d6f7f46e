// File: edits.go
// Role: elementary electron-bookkeeping edits used by the rewrite rules.
//
// Every edit adjusts exactly one quantity by one unit and fails at its
// bound. Rules apply edits only to private clones, so a failed edit means
// the whole clone is discarded — nothing is ever rolled back in place.

package molecule

import (
	"errors"
	"fmt"
)

// Sentinel errors for elementary edits and lone-pair derivation.
var (
	// ErrOrderAtMax indicates an increment on a triple bond.
	ErrOrderAtMax = errors.New("molecule: bond order already at triple")

	// ErrOrderAtMin indicates a decrement on a single bond.
	ErrOrderAtMin = errors.New("molecule: bond order already at single")

	// ErrAromaticEdit indicates an order increment/decrement on an aromatic bond.
	ErrAromaticEdit = errors.New("molecule: cannot step order of an aromatic bond")

	// ErrNoRadical indicates a radical decrement on an atom without radicals.
	ErrNoRadical = errors.New("molecule: radical count already zero")

	// ErrUnknownElement indicates electron bookkeeping on an element with no table entry.
	ErrUnknownElement = errors.New("molecule: unknown element")

	// ErrFractionalLonePair indicates an odd outer-shell electron balance.
	ErrFractionalLonePair = errors.New("molecule: fractional lone-pair count")

	// ErrNegativeLonePair indicates a negative outer-shell electron balance.
	ErrNegativeLonePair = errors.New("molecule: negative lone-pair count")
)

// IncrementOrder raises a bond's order by one unit.
// Fails with ErrOrderAtMax at triple and ErrAromaticEdit on aromatic bonds.
func (m *Mol) IncrementOrder(bondID int) error {
	b, ok := m.bonds[bondID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrBondNotFound, bondID)
	}
	switch b.Order {
	case Single:
		b.Order = Double
	case Double:
		b.Order = Triple
	case Triple:
		return ErrOrderAtMax
	default:
		return ErrAromaticEdit
	}
	return nil
}

// DecrementOrder lowers a bond's order by one unit.
// Fails with ErrOrderAtMin at single and ErrAromaticEdit on aromatic bonds.
func (m *Mol) DecrementOrder(bondID int) error {
	b, ok := m.bonds[bondID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrBondNotFound, bondID)
	}
	switch b.Order {
	case Triple:
		b.Order = Double
	case Double:
		b.Order = Single
	case Single:
		return ErrOrderAtMin
	default:
		return ErrAromaticEdit
	}
	return nil
}

// SetOrder overwrites a bond's order. Used when an external assignment
// (a kekulé or Clar solution) dictates the order outright instead of
// stepping it.
func (m *Mol) SetOrder(bondID int, o BondOrder) error {
	b, ok := m.bonds[bondID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrBondNotFound, bondID)
	}
	if !validOrder(o) {
		return fmt.Errorf("%w: %v", ErrBadOrder, o)
	}
	b.Order = o
	return nil
}

// IncrementRadical adds one unpaired electron to an atom.
func (m *Mol) IncrementRadical(atomID int) error {
	a, ok := m.atoms[atomID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAtomNotFound, atomID)
	}
	a.Radicals++
	return nil
}

// DecrementRadical removes one unpaired electron from an atom.
// Fails with ErrNoRadical when the count is already zero.
func (m *Mol) DecrementRadical(atomID int) error {
	a, ok := m.atoms[atomID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAtomNotFound, atomID)
	}
	if a.Radicals == 0 {
		return ErrNoRadical
	}
	a.Radicals--
	return nil
}

// LonePairs derives the lone-pair count of an atom from the outer-shell
// electron balance:
//
//	(outer(element) − radicals − charge − ⌊Σ order⌋) / 2
//
// An odd balance returns ErrFractionalLonePair and a negative one
// ErrNegativeLonePair; both mark the surrounding structure invalid.
// Hydrogen always has zero lone pairs.
func (m *Mol) LonePairs(atomID int) (int, error) {
	a, ok := m.atoms[atomID]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrAtomNotFound, atomID)
	}
	if a.Element == Hydrogen {
		return 0, nil
	}
	outer, ok := OuterElectrons(a.Element)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, a.Element)
	}
	balance := outer - a.Radicals - a.Charge - m.OrderSum(atomID)
	if balance < 0 {
		return 0, fmt.Errorf("%w: atom %d", ErrNegativeLonePair, atomID)
	}
	if balance%2 != 0 {
		return 0, fmt.Errorf("%w: atom %d", ErrFractionalLonePair, atomID)
	}
	return balance / 2, nil
}

// UpdateCharge recomputes an atom's formal charge from a target lone-pair
// count using the same outer-shell balance:
//
//	charge = outer(element) − radicals − 2·lonePairs − ⌊Σ order⌋
func (m *Mol) UpdateCharge(atomID, lonePairs int) error {
	a, ok := m.atoms[atomID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrAtomNotFound, atomID)
	}
	outer, ok := OuterElectrons(a.Element)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownElement, a.Element)
	}
	a.Charge = outer - a.Radicals - 2*lonePairs - m.OrderSum(atomID)
	return nil
}

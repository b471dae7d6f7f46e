// File: validate.go
// Role: global consistency validator run after every edit sequence.

package molecule

import (
	"errors"
	"fmt"
)

// Sentinel errors for structure validation.
var (
	// ErrValence indicates an atom exceeding its valence-electron cap.
	ErrValence = errors.New("molecule: valence cap exceeded")

	// ErrChargeRange indicates a formal charge outside [-2, +2].
	ErrChargeRange = errors.New("molecule: formal charge out of range")

	// ErrAromaticMembership indicates an aromatic bond outside an
	// all-aromatic ring.
	ErrAromaticMembership = errors.New("molecule: aromatic bond outside aromatic ring")
)

// maxAbsCharge bounds formal charges; the rewrite rules can legitimately
// reach -2 (e.g. terminal azide nitrogen) but nothing beyond.
const maxAbsCharge = 2

// Validate re-checks global element/valence consistency. The first
// violation found is returned; a nil result marks the structure as a
// chemically expressible Lewis structure (it may still be a poor resonance
// contributor — ranking is the filtration engine's job).
//
// Checks: aromatic bonds confined to all-aromatic rings first (a stray
// aromatic bond also skews the per-atom order sums, so membership must be
// settled before the electron bookkeeping to keep its sentinel reliable);
// then, per atom: known element, charge within bounds, nonnegative
// integral lone pairs, valence-electron cap, hydrogen duet; per bond:
// recognized order.
// Complexity: O(V + E) plus ring perception for aromatic structures.
func (m *Mol) Validate() error {
	if err := m.checkAromaticMembership(); err != nil {
		return err
	}
	for _, a := range m.Atoms() {
		if _, ok := OuterElectrons(a.Element); !ok {
			return fmt.Errorf("%w: atomic number %d", ErrUnknownElement, a.Element)
		}
		if a.Charge > maxAbsCharge || a.Charge < -maxAbsCharge {
			return fmt.Errorf("%w: atom %d has charge %+d", ErrChargeRange, a.ID, a.Charge)
		}
		lp, err := m.LonePairs(a.ID)
		if err != nil {
			return err
		}
		valence := 2*(m.OrderSum(a.ID)+lp) + a.Radicals
		if valence > maxValenceElectrons[a.Element] {
			return fmt.Errorf("%w: atom %d (%s) holds %d electrons",
				ErrValence, a.ID, Symbol(a.Element), valence)
		}
		if a.Element == Hydrogen && len(a.bonds) > 1 {
			return fmt.Errorf("%w: hydrogen %d has %d bonds", ErrValence, a.ID, len(a.bonds))
		}
	}
	for _, b := range m.Bonds() {
		if !validOrder(b.Order) {
			return fmt.Errorf("%w: bond %d has order %v", ErrBadOrder, b.ID, b.Order)
		}
	}
	return nil
}

// checkAromaticMembership verifies that every aromatic bond belongs to at
// least one ring whose bonds are all aromatic. A declared aromatic ring
// with mixed orders therefore invalidates the structure.
func (m *Mol) checkAromaticMembership() error {
	var aromatic []int
	for _, b := range m.Bonds() {
		if b.Order == Aromatic {
			aromatic = append(aromatic, b.ID)
		}
	}
	if len(aromatic) == 0 {
		return nil
	}
	covered := make(map[int]bool, len(aromatic))
	for _, ring := range m.Rings() {
		all := true
		for _, bid := range ring.Bonds {
			if m.bonds[bid].Order != Aromatic {
				all = false
				break
			}
		}
		if all {
			for _, bid := range ring.Bonds {
				covered[bid] = true
			}
		}
	}
	for _, bid := range aromatic {
		if !covered[bid] {
			return fmt.Errorf("%w: bond %d", ErrAromaticMembership, bid)
		}
	}
	return nil
}

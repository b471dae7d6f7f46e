// File: engine.go
// Role: the worklist expansion engine and the two entry points.

package resonance

import (
	"fmt"

	"github.com/chemgraph/resonance/molecule"
)

// Generate enumerates the resonance structures of a seed molecule and,
// unless WithFilterStructures(false) is set, filters them down to the
// representative contributors with the seed form first. The seed is never
// mutated; every returned structure is an independent clone except for
// the seed itself, which is returned as list element 0 when it survives.
func Generate(mol *molecule.Mol, opts ...Option) ([]*molecule.Mol, error) {
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err := checkSeed(mol); err != nil {
		return nil, err
	}

	list := []*molecule.Mol{mol}
	f := Analyze(mol)

	// Locate the maximally aromatic forms first. This corrects both
	// false-positive perception (exocyclic double bonds) and false
	// negatives (a radical delocalized into the ring).
	if f.IsAromatic || (f.IsCyclic && f.IsRadical && !f.IsArylRadical) {
		aromList := optimalAromaticStructures(mol, &f, &o)
		if len(aromList) == 0 {
			f.IsAromatic = false
			f.IsPolycyclicAromatic = false
		} else {
			f.IsAromatic = true
			f.IsPolycyclicAromatic = len(aromList[0].AromaticRings()) > 1
			for _, s := range aromList {
				if !containsStructure(list, s, o.KeepIsomorphic) {
					list = append(list, s)
				}
			}
		}
	}

	if f.IsAromatic {
		if f.IsRadical && !f.IsArylRadical {
			// Kekulé forms enable adjacent radical resonance; the radical
			// is likely to delocalize into the ring.
			if list, err = expandWorklist(list, []RuleKind{RuleKekule}, &o); err != nil {
				return nil, err
			}
			if list, err = expandWorklist(list, []RuleKind{RuleAllylShift}, &o); err != nil {
				return nil, err
			}
		}
		aromKind := RuleAromatize
		if f.IsPolycyclicAromatic && o.ClarStructures {
			aromKind = RuleClar
		}
		if list, err = expandWorklist(list, []RuleKind{aromKind}, &o); err != nil {
			return nil, err
		}
	}

	if list, err = expandWorklist(list, rulesFor(f), &o); err != nil {
		return nil, err
	}

	if o.FilterStructures {
		return filterStructures(list, &o, f)
	}
	return list, nil
}

// GenerateIsomorphic collects the resonance structures that are
// isomorphic to the seed but differently localized, seed included. All
// rule kinds are exercised regardless of features. With WithSaturateH the
// seed's radicals are capped with explicit hydrogens for the duration of
// the search and stripped again before returning.
func GenerateIsomorphic(mol *molecule.Mol, opts ...Option) ([]*molecule.Mol, error) {
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}
	if err := checkSeed(mol); err != nil {
		return nil, err
	}

	work := mol
	var addedH []int
	if o.SaturateH {
		work, addedH = saturateRadicals(mol)
	}

	isomorphic := []*molecule.Mol{work}
	list := []*molecule.Mol{work}

	for index := 0; index < len(list); index++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		var produced []*molecule.Mol
		for _, kind := range allRuleKinds {
			produced = append(produced, ruleTable[kind](list[index], &o)...)
		}
		for _, cand := range produced {
			if containsStructure(list, cand, false) {
				isomorphic = append(isomorphic, cand)
				continue
			}
			if o.MaxStructures > 0 && len(list) >= o.MaxStructures {
				continue
			}
			list = append(list, cand)
		}
	}

	if o.SaturateH {
		stripped := make([]*molecule.Mol, 0, len(isomorphic))
		for i, s := range isomorphic {
			if i == 0 {
				// Position 0 is the saturated seed itself; hand back the
				// caller's original instead of a stripped clone.
				stripped = append(stripped, mol)
				continue
			}
			d, err := desaturateRadicals(s, addedH)
			if err != nil {
				o.Logger.WithError(err).Warn("resonance: dropping structure that failed hydrogen desaturation")
				continue
			}
			stripped = append(stripped, d)
		}
		isomorphic = stripped
	}
	return isomorphic, nil
}

// checkSeed rejects malformed input before generation begins.
func checkSeed(mol *molecule.Mol) error {
	if mol == nil {
		return ErrNilMolecule
	}
	if mol.AtomCount() == 0 {
		return ErrEmptyMolecule
	}
	if !mol.Connected() {
		return ErrDisconnected
	}
	if err := mol.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return nil
}

// expandWorklist closes a structure list under the given rule kinds.
//
// The list is scanned by index from 0; the index advances past items
// appended during the scan, so later-appended structures are themselves
// expanded. A structure is only expanded while its octet deviation is
// within +2 of the running minimum and its charge span within +1 — both
// minima tighten monotonically as better structures appear. Candidates
// isomorphic (or identical, under keepIsomorphic) to an existing member
// are dropped.
//
// Post-pass: members whose net charge differs from the first structure's
// are removed with a logged non-fatal warning.
func expandWorklist(list []*molecule.Mol, kinds []RuleKind, o *Options) ([]*molecule.Mol, error) {
	if len(list) == 0 || len(kinds) == 0 {
		return list, nil
	}

	minOctet := octetDeviation(list[0], o.AllowExpandedOctet)
	minSpan := chargeSpan(list[0])
	for _, s := range list[1:] {
		if d := octetDeviation(s, o.AllowExpandedOctet); d < minOctet {
			minOctet = d
		}
		if cs := chargeSpan(s); cs < minSpan {
			minSpan = cs
		}
	}

	for index := 0; index < len(list); index++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		s := list[index]
		dev := octetDeviation(s, o.AllowExpandedOctet)
		span := chargeSpan(s)
		// Octet deviations move in increments of 2, so +2 admits one step
		// of strain; rearrangements can also pass through one extra layer
		// of charge separation, hence the +1 span slack.
		if dev > minOctet+2 || span > minSpan+1 {
			continue
		}
		var produced []*molecule.Mol
		for _, kind := range kinds {
			produced = append(produced, ruleTable[kind](s, o)...)
		}
		if dev < minOctet {
			minOctet = dev
		}
		if span < minSpan {
			minSpan = span
		}
		for _, cand := range produced {
			if o.MaxStructures > 0 && len(list) >= o.MaxStructures {
				break
			}
			if !containsStructure(list, cand, o.KeepIsomorphic) {
				list = append(list, cand)
			}
		}
	}

	// Net-charge invariant enforcement.
	seedCharge := list[0].NetCharge()
	kept := list[:1]
	for _, s := range list[1:] {
		if s.NetCharge() != seedCharge {
			o.Logger.WithFields(map[string]interface{}{
				"structure": s.Formula(),
				"charge":    s.NetCharge(),
				"expected":  seedCharge,
			}).Warn("resonance: removing structure with mismatched net charge")
			continue
		}
		kept = append(kept, s)
	}
	return kept, nil
}

// containsStructure reports whether cand is already represented in list:
// isomorphic to a member, or identical when keepIsomorphic is set.
func containsStructure(list []*molecule.Mol, cand *molecule.Mol, keepIsomorphic bool) bool {
	for _, s := range list {
		if keepIsomorphic {
			if molecule.Identical(s, cand) {
				return true
			}
		} else if molecule.Isomorphic(s, cand) {
			return true
		}
	}
	return false
}

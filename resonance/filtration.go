// File: filtration.go
// Role: the four-stage filtration pipeline selecting representative
// structures.
//
// Preference rules, by order of importance:
//  1. minimal overall deviation from the octet rule (dectet allowed for
//     sulfur as a third-row element);
//  2. extra charge separation only when it introduces a new radical or
//     multiple-bond site;
//  3. negative charges on the more electronegative atoms;
//  4. opposite charges close together, same charges far apart.

package resonance

import (
	"fmt"
	"math"

	"github.com/chemgraph/resonance/molecule"
)

// filterStructures runs the ordered multiplicity, octet, charge and
// aromaticity filters and moves the structure isomorphic to the seed to
// position 0. The seed is list[0] by construction. An empty survivor set
// is ErrNoRepresentative.
func filterStructures(list []*molecule.Mol, o *Options, f Features) ([]*molecule.Mol, error) {
	o.Logger.WithField("count", len(list)).Debug("filtration: structures fed in")

	// Multiplicity filter: a rewrite chain must conserve the electron
	// pairing of the first structure.
	refRadicals := list[0].RadicalCount()
	filtered := make([]*molecule.Mol, 0, len(list))
	for _, s := range list {
		if s.RadicalCount() == refRadicals {
			filtered = append(filtered, s)
		}
	}
	o.Logger.WithField("count", len(filtered)).Debug("filtration: after multiplicity filter")

	filtered = octetFiltration(filtered, o.AllowExpandedOctet)
	o.Logger.WithField("count", len(filtered)).Debug("filtration: after octet filter")

	filtered = chargeFiltration(filtered)
	o.Logger.WithField("count", len(filtered)).Debug("filtration: after charge filter")

	if f.IsAromatic {
		filtered = aromaticityFiltration(filtered, f)
		o.Logger.WithField("count", len(filtered)).Debug("filtration: after aromaticity filter")
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRepresentative, list[0].Formula())
	}

	// The seed form leads the list whenever it survived; otherwise the
	// unfiltered seed is prepended so callers can rely on element 0.
	for i, s := range filtered {
		if molecule.Isomorphic(s, list[0]) {
			filtered = append(filtered[:i], filtered[i+1:]...)
			filtered = append([]*molecule.Mol{s}, filtered...)
			return filtered, nil
		}
	}
	return append([]*molecule.Mol{list[0]}, filtered...), nil
}

// octetDeviation scores how far a structure departs from ideal electron
// counts, summed over non-hydrogen atoms. C, N and O are scored against
// the octet. Sulfur with at most one lone pair may use the dectet or
// duodectet when expanded octets are allowed; S#S motifs carry an extra
// 0.5 per involved atom. Two or more radical electrons sitting where a
// lone pair would be cost 3.
func octetDeviation(m *molecule.Mol, allowExpandedOctet bool) float64 {
	deviation := 0.0
	for _, a := range m.Atoms() {
		if a.Element == molecule.Hydrogen {
			continue
		}
		lp, err := m.LonePairs(a.ID)
		if err != nil {
			return math.Inf(1)
		}
		val := float64(2*(m.OrderSum(a.ID)+lp) + a.Radicals)
		switch a.Element {
		case molecule.Carbon, molecule.Nitrogen, molecule.Oxygen:
			deviation += math.Abs(8 - val)
		case molecule.Sulfur:
			if allowExpandedOctet && lp <= 1 {
				deviation += math.Min(math.Abs(8-val), math.Min(math.Abs(10-val), math.Abs(12-val)))
			} else {
				deviation += math.Abs(8 - val)
			}
			for _, bid := range a.Bonds() {
				b, _ := m.Bond(bid)
				other, _ := m.Atom(b.Other(a.ID))
				if other.Element == molecule.Sulfur && b.Order == molecule.Triple {
					// S#S is captured twice, once per involved sulfur.
					deviation += 0.5
				}
			}
		}
		if a.Radicals >= 2 &&
			((a.Element == molecule.Nitrogen && lp == 0) ||
				(a.Element == molecule.Oxygen && lp <= 2) ||
				(a.Element == molecule.Sulfur && lp <= 2)) {
			deviation += 3
		}
	}
	return deviation
}

// chargeSpan counts the formally separated charge pairs of a structure:
// (Σ|q| − |net|) / 2.
func chargeSpan(m *molecule.Mol) float64 {
	absSum := 0
	for _, a := range m.Atoms() {
		if a.Charge < 0 {
			absSum -= a.Charge
		} else {
			absSum += a.Charge
		}
	}
	net := m.NetCharge()
	if net < 0 {
		net = -net
	}
	return float64(absSum-net) / 2
}

// octetFiltration keeps only the structures at the minimal octet
// deviation.
func octetFiltration(list []*molecule.Mol, allowExpandedOctet bool) []*molecule.Mol {
	if len(list) == 0 {
		return list
	}
	devs := make([]float64, len(list))
	minDev := math.Inf(1)
	for i, s := range list {
		devs[i] = octetDeviation(s, allowExpandedOctet)
		if devs[i] < minDev {
			minDev = devs[i]
		}
	}
	kept := make([]*molecule.Mol, 0, len(list))
	for i, s := range list {
		if devs[i] == minDev {
			kept = append(kept, s)
		}
	}
	return kept
}

// chargeFiltration keeps the minimal-charge-span structures, stabilized
// by electronegativity and proximity, and merges back minimal+1-span
// structures only when they introduce a new radical or multiple-bond
// site absent from every minimal-span survivor.
func chargeFiltration(list []*molecule.Mol) []*molecule.Mol {
	if len(list) == 0 {
		return list
	}
	spans := make([]float64, len(list))
	minSpan := math.Inf(1)
	allEqual := true
	for i, s := range list {
		spans[i] = chargeSpan(s)
		if spans[i] < minSpan {
			minSpan = spans[i]
		}
		if spans[i] != spans[0] {
			allEqual = false
		}
	}
	if minSpan == 0 && allEqual {
		return list
	}

	var filtered, extraCharged []*molecule.Mol
	if allEqual {
		filtered = list
	} else {
		for i, s := range list {
			switch spans[i] {
			case minSpan:
				filtered = append(filtered, s)
			case minSpan + 1:
				extraCharged = append(extraCharged, s)
			}
		}
	}

	filtered = stabilizeByElectronegativity(filtered, false)
	filtered = stabilizeByProximity(filtered)

	if len(extraCharged) > 0 {
		radSites := make(map[int]bool)
		mulSites := make(map[int]bool)
		for _, s := range filtered {
			for _, a := range s.Atoms() {
				if a.Radicals > 0 {
					radSites[a.ID] = true
				}
			}
			for _, b := range s.Bonds() {
				if b.Order == molecule.Double || b.Order == molecule.Triple {
					mulSites[b.A1] = true
					mulSites[b.A2] = true
				}
			}
		}
		kept := extraCharged[:0]
		for _, s := range extraCharged {
			if hasNewSites(s, radSites, mulSites) {
				kept = append(kept, s)
			}
		}
		extraCharged = kept
		if len(extraCharged) > 0 {
			extraCharged = stabilizeByElectronegativity(extraCharged, true)
			extraCharged = stabilizeByProximity(extraCharged)
		}
	}
	return append(filtered, extraCharged...)
}

// hasNewSites reports whether a structure presents a radical on an atom
// no survivor has one on, or a multiple bond neither endpoint of which
// takes part in any survivor's multiple bond. S=S and S#S never count as
// new sites (they would keep unrepresentative triplet-S2-like forms).
func hasNewSites(m *molecule.Mol, radSites, mulSites map[int]bool) bool {
	for _, a := range m.Atoms() {
		if a.Radicals > 0 && !radSites[a.ID] {
			return true
		}
	}
	for _, b := range m.Bonds() {
		if b.Order != molecule.Double && b.Order != molecule.Triple {
			continue
		}
		a1, _ := m.Atom(b.A1)
		a2, _ := m.Atom(b.A2)
		if a1.Element == molecule.Sulfur && a2.Element == molecule.Sulfur {
			continue
		}
		if !mulSites[b.A1] && !mulSites[b.A2] {
			return true
		}
	}
	return false
}

// isOxonium reports a positively charged oxygen with at most three bonds
// and no fluorine neighbor — a motif whose charge placement is penalized
// over and above plain electronegativity.
func isOxonium(m *molecule.Mol, a *molecule.Atom) bool {
	if a.Element != molecule.Oxygen || a.Charge <= 0 || len(a.Bonds()) > 3 {
		return false
	}
	for _, nb := range m.Neighbors(a.ID) {
		other, _ := m.Atom(nb)
		if other.Element == molecule.Fluorine {
			return false
		}
	}
	return true
}

// stabilizeByElectronegativity keeps structures whose positive charges
// weight no more electronegativity than their negative charges. The rule
// is a heuristic, not hermetic: with several charge pairs one pair may
// violate it while the sum does not. When every structure violates it and
// allowEmpty is false the input is returned unchanged ([C-]#[O+] style
// species would otherwise vanish).
func stabilizeByElectronegativity(list []*molecule.Mol, allowEmpty bool) []*molecule.Mol {
	kept := make([]*molecule.Mol, 0, len(list))
	for _, s := range list {
		xPos, xNeg := 0.0, 0.0
		for _, a := range s.Atoms() {
			en := molecule.Electronegativity(a.Element)
			switch {
			case a.Charge > 0:
				xPos += en * float64(a.Charge)
			case a.Charge < 0:
				xNeg += en * float64(-a.Charge)
			}
			if isOxonium(s, a) {
				xPos++
			}
		}
		if xPos <= xNeg {
			kept = append(kept, s)
		}
	}
	if len(kept) > 0 || allowEmpty {
		return kept
	}
	return list
}

// chargeDistances returns the cumulative topological distance over
// opposite-charge pairs and over same-charge pairs. Distance is counted
// in atoms along the shortest path, endpoints included, so adjacent
// charges contribute 2 per pair.
func chargeDistances(m *molecule.Mol) (opposite, same int) {
	var pos, neg []int
	for _, a := range m.Atoms() {
		switch {
		case a.Charge > 0:
			pos = append(pos, a.ID)
		case a.Charge < 0:
			neg = append(neg, a.ID)
		}
	}
	dist := func(a, b int) int {
		d, ok := m.ShortestPathLen(a, b)
		if !ok {
			return 0
		}
		return d + 1
	}
	for i := 0; i < len(pos); i++ {
		for j := i + 1; j < len(pos); j++ {
			same += dist(pos[i], pos[j])
		}
	}
	for i := 0; i < len(neg); i++ {
		for j := i + 1; j < len(neg); j++ {
			same += dist(neg[i], neg[j])
		}
	}
	for _, p := range pos {
		for _, n := range neg {
			opposite += dist(p, n)
		}
	}
	return opposite, same
}

// stabilizeByProximity keeps structures achieving both the minimal
// cumulative opposite-charge distance and the maximal cumulative
// same-charge distance. The two bounds come from different structures
// at times; when no structure meets both the input is returned
// unchanged, same as the electronegativity guard.
func stabilizeByProximity(list []*molecule.Mol) []*molecule.Mol {
	if len(list) == 0 {
		return list
	}
	opp := make([]int, len(list))
	same := make([]int, len(list))
	minOpp, maxSame := math.MaxInt, 0
	for i, s := range list {
		opp[i], same[i] = chargeDistances(s)
		if opp[i] < minOpp {
			minOpp = opp[i]
		}
		if same[i] > maxSame {
			maxSame = same[i]
		}
	}
	kept := make([]*molecule.Mol, 0, len(list))
	for i, s := range list {
		if opp[i] <= minOpp && same[i] >= maxSame {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return list
	}
	return kept
}

// aromaticityFiltration keeps the aromatic candidates. Monocyclic
// systems also keep non-aromatic candidates unless one of their
// six-membered rings carries the plain alternating kekulé signature, for
// which an equivalent aromatic form is already represented. Polycyclic
// systems keep aromatic candidates only: a radical delocalized so far
// that no ring stays aromatic is not a representative contributor.
func aromaticityFiltration(list []*molecule.Mol, f Features) []*molecule.Mol {
	var filtered, others []*molecule.Mol
	for _, s := range list {
		if len(s.DelocalizedRings()) > 0 {
			filtered = append(filtered, s)
		} else {
			others = append(others, s)
		}
	}
	if !f.IsPolycyclicAromatic {
		for _, s := range others {
			kekuleForm := false
			for _, r := range s.RingsOfSize(6) {
				if alternating := s.OrderPattern(r); alternating == "SDSDSD" || alternating == "DSDSDS" {
					kekuleForm = true
					break
				}
			}
			if !kekuleForm {
				filtered = append(filtered, s)
			}
		}
	}
	return filtered
}

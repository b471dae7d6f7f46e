// File: rules.go
// Role: the closed set of rewrite rules and feature-driven rule selection.
//
// Every rule is a pure function from a molecule to zero or more new
// candidates: clone, apply the fixed arithmetic edit, validate, and keep
// or silently discard. A candidate whose net charge differs from its
// parent is discarded on the spot; the engine re-checks the invariant in
// its post-pass.

package resonance

import (
	"strings"

	"github.com/chemgraph/resonance/clar"
	"github.com/chemgraph/resonance/molecule"
	"github.com/chemgraph/resonance/pathfinder"
)

// RuleKind identifies one rewrite rule. The set is closed: rule selection
// returns kinds, never live callables.
type RuleKind int

const (
	RuleAllylShift RuleKind = iota + 1
	RuleLonePairMultipleBond
	RuleAdjacentLonePairRadical
	RuleAdjacentLonePairMultipleBond
	RuleAdjacentLonePairRadicalMultipleBond
	RulePentavalentNitrogen
	RuleAryne
	RuleKekule
	RuleOptimalAromatic
	RuleAromatize
	RuleClar
)

// ruleFunc maps one structure to zero or more validated candidates. The
// options carry the engine's context, cap and dedup settings into rules
// that expand recursively; most rules ignore them.
type ruleFunc func(*molecule.Mol, *Options) []*molecule.Mol

// ruleTable is the explicit kind → function dispatch table. It is filled
// in init rather than a composite literal: the optimal-aromatic rule
// expands through the engine worklist, which dispatches through this very
// table, and a literal initializer would form an initialization cycle.
var ruleTable map[RuleKind]ruleFunc

func init() {
	ruleTable = map[RuleKind]ruleFunc{
		RuleAllylShift:                          allylShiftStructures,
		RuleLonePairMultipleBond:                lonePairMultipleBondStructures,
		RuleAdjacentLonePairRadical:             adjLonePairRadicalStructures,
		RuleAdjacentLonePairMultipleBond:        adjLonePairMultipleBondStructures,
		RuleAdjacentLonePairRadicalMultipleBond: adjLonePairRadicalMultipleBondStructures,
		RulePentavalentNitrogen:                 pentavalentNitrogenStructures,
		RuleAryne:                               aryneStructures,
		RuleKekule:                              kekuleStructure,
		RuleOptimalAromatic: func(m *molecule.Mol, o *Options) []*molecule.Mol {
			return optimalAromaticStructures(m, nil, o)
		},
		RuleAromatize: aromatizeStructure,
		RuleClar:      clarStructures,
	}
}

// rulesFor selects the ordered rule kinds for one structure based on the
// seed's feature snapshot.
func rulesFor(f Features) []RuleKind {
	var kinds []RuleKind
	// For aromatic seeds radical delocalization was already handled by
	// the dedicated kekulé/allyl passes; is_aryl_radical still holds when
	// aromaticity was a false positive.
	if f.IsRadical && !f.IsAromatic && !f.IsArylRadical {
		kinds = append(kinds, RuleAllylShift)
	}
	if f.IsCyclic {
		kinds = append(kinds, RuleAryne)
	}
	if f.HasNitrogenVal5 {
		kinds = append(kinds, RulePentavalentNitrogen)
	}
	if f.HasLonePairs {
		kinds = append(kinds,
			RuleAdjacentLonePairRadical,
			RuleAdjacentLonePairMultipleBond,
			RuleAdjacentLonePairRadicalMultipleBond)
		if !f.IsAromatic {
			// The 3-atom lone-pair shift perturbs conjugated aromatic
			// systems badly (orders-of-magnitude slowdown) without
			// producing new representative structures, so it is skipped
			// for anything bearing an aromatic ring.
			kinds = append(kinds, RuleLonePairMultipleBond)
		}
	}
	return kinds
}

// allRuleKinds is the feature-independent selection used by
// GenerateIsomorphic, which must reach every localization.
var allRuleKinds = []RuleKind{
	RuleAllylShift,
	RuleLonePairMultipleBond,
	RuleAdjacentLonePairRadical,
	RuleAdjacentLonePairMultipleBond,
	RuleAdjacentLonePairRadicalMultipleBond,
	RulePentavalentNitrogen,
	RuleOptimalAromatic,
	RuleAryne,
	RuleKekule,
	RuleClar,
}

// keepCandidate reports whether an edited clone survives: it must
// validate and conserve the parent's net charge.
func keepCandidate(parent, cand *molecule.Mol) bool {
	if cand.Validate() != nil {
		return false
	}
	return cand.NetCharge() == parent.NetCharge()
}

// allylShiftStructures applies one allyl radical shift per discovered
// path: the radical moves from atom1 to atom3 while bond12 gains and
// bond23 loses one order unit.
func allylShiftStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	if m.RadicalCount() == 0 {
		return structures
	}
	for _, a := range m.Atoms() {
		for _, p := range pathfinder.AllylRadicalPaths(m, a.ID) {
			s := m.Clone()
			if s.DecrementRadical(p.Atom1) != nil ||
				s.IncrementRadical(p.Atom3) != nil ||
				s.IncrementOrder(p.Bond12) != nil ||
				s.DecrementOrder(p.Bond23) != nil {
				continue
			}
			if keepCandidate(m, s) {
				structures = append(structures, s)
			}
		}
	}
	return structures
}

// lonePairMultipleBondStructures shifts a lone pair from atom1 into
// bond12 while bond23 releases one order unit onto atom3, with both
// endpoint charges recomputed from their new lone-pair targets.
func lonePairMultipleBondStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	for _, a := range m.Atoms() {
		if lp, err := m.LonePairs(a.ID); err != nil || lp < 1 {
			continue
		}
		for _, p := range pathfinder.LonePairMultipleBondPaths(m, a.ID) {
			s := m.Clone()
			lp1, err1 := s.LonePairs(p.Atom1)
			lp3, err3 := s.LonePairs(p.Atom3)
			if err1 != nil || err3 != nil || lp1 < 1 {
				continue
			}
			if s.IncrementOrder(p.Bond12) != nil ||
				s.DecrementOrder(p.Bond23) != nil ||
				s.UpdateCharge(p.Atom1, lp1-1) != nil ||
				s.UpdateCharge(p.Atom3, lp3+1) != nil {
				continue
			}
			if keepCandidate(m, s) {
				structures = append(structures, s)
			}
		}
	}
	return structures
}

// adjLonePairRadicalStructures swaps a radical on atom1 with a lone pair
// on the adjacent atom2; no bond order changes.
func adjLonePairRadicalStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	if m.RadicalCount() == 0 {
		return structures
	}
	for _, a := range m.Atoms() {
		for _, p := range pathfinder.AdjacentLonePairRadicalPaths(m, a.ID) {
			s := m.Clone()
			lp1, err1 := s.LonePairs(p.Atom1)
			lp2, err2 := s.LonePairs(p.Atom2)
			if err1 != nil || err2 != nil || lp2 < 1 {
				continue
			}
			if s.DecrementRadical(p.Atom1) != nil ||
				s.IncrementRadical(p.Atom2) != nil ||
				s.UpdateCharge(p.Atom1, lp1+1) != nil ||
				s.UpdateCharge(p.Atom2, lp2-1) != nil {
				continue
			}
			if keepCandidate(m, s) {
				structures = append(structures, s)
			}
		}
	}
	return structures
}

// adjLonePairMultipleBondStructures exchanges a lone pair on atom1
// against one order unit on the shared bond, in whichever direction the
// path matched. Atom2's charge is recomputed with unchanged lone pairs,
// which doubles as an integrality check on its electron balance.
func adjLonePairMultipleBondStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	for _, a := range m.Atoms() {
		for _, p := range pathfinder.AdjacentLonePairMultipleBondPaths(m, a.ID) {
			s := m.Clone()
			lp1, err := s.LonePairs(p.Atom1)
			if err != nil {
				continue
			}
			switch p.Direction {
			case pathfinder.GainOrder:
				if s.IncrementOrder(p.Bond12) != nil || s.UpdateCharge(p.Atom1, lp1-1) != nil {
					continue
				}
			case pathfinder.LoseOrder:
				if s.DecrementOrder(p.Bond12) != nil || s.UpdateCharge(p.Atom1, lp1+1) != nil {
					continue
				}
			}
			lp2, err := s.LonePairs(p.Atom2)
			if err != nil || s.UpdateCharge(p.Atom2, lp2) != nil {
				continue
			}
			if keepCandidate(m, s) {
				structures = append(structures, s)
			}
		}
	}
	return structures
}

// adjLonePairRadicalMultipleBondStructures is the radical-coupled
// variant: the lone-pair exchange on atom1 is accompanied by a radical
// moving between atom1 and atom2.
func adjLonePairRadicalMultipleBondStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	if m.RadicalCount() == 0 {
		return structures
	}
	for _, a := range m.Atoms() {
		for _, p := range pathfinder.AdjacentLonePairRadicalMultipleBondPaths(m, a.ID) {
			s := m.Clone()
			lp1, err1 := s.LonePairs(p.Atom1)
			lp2, err2 := s.LonePairs(p.Atom2)
			if err1 != nil || err2 != nil {
				continue
			}
			switch p.Direction {
			case pathfinder.GainOrder:
				if s.IncrementOrder(p.Bond12) != nil ||
					s.IncrementRadical(p.Atom1) != nil ||
					s.UpdateCharge(p.Atom1, lp1-1) != nil ||
					s.DecrementRadical(p.Atom2) != nil {
					continue
				}
			case pathfinder.LoseOrder:
				if s.DecrementOrder(p.Bond12) != nil ||
					s.DecrementRadical(p.Atom1) != nil ||
					s.UpdateCharge(p.Atom1, lp1+1) != nil ||
					s.IncrementRadical(p.Atom2) != nil {
					continue
				}
			}
			if s.UpdateCharge(p.Atom2, lp2) != nil {
				continue
			}
			if keepCandidate(m, s) {
				structures = append(structures, s)
			}
		}
	}
	return structures
}

// pentavalentNitrogenStructures moves a radical between the two flagged
// substituents of a pentavalent-prone nitrogen center, with the charges
// migrating the opposite way.
func pentavalentNitrogenStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	for _, a := range m.Atoms() {
		for _, p := range pathfinder.PentavalentNitrogenPaths(m, a.ID) {
			s := m.Clone()
			lpRad, err1 := s.LonePairs(p.Radical)
			lpNeg, err2 := s.LonePairs(p.Negative)
			if err1 != nil || err2 != nil {
				continue
			}
			if s.DecrementRadical(p.Radical) != nil ||
				s.IncrementRadical(p.Negative) != nil ||
				s.UpdateCharge(p.Radical, lpRad+1) != nil ||
				s.UpdateCharge(p.Negative, lpNeg-1) != nil {
				continue
			}
			if keepCandidate(m, s) {
				structures = append(structures, s)
			}
		}
	}
	return structures
}

// aryne ring signatures: the walk is rotated to a canonical phase before
// comparison (triple bond first, or the DDD run first).
const (
	arynePatternAlkyne   = "TSDSDS"
	aryneTargetAlkyne    = "DDSDSD"
	arynePatternCumulene = "DDDSDS"
	aryneTargetCumulene  = "STSDSD"
)

// aryneStructures interconverts the alkyne and cumulene forms of
// six-membered aryne rings. Only the simplest single-ring patterns are
// covered; polycyclic aryne enumeration is equivalent to full kekulé
// enumeration and is out of reach here.
func aryneStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	var structures []*molecule.Mol
	for _, ring := range m.RingsOfSize(6) {
		pattern := m.OrderPattern(ring)
		bonds := append([]int(nil), ring.Bonds...)

		var target string
		switch {
		case strings.Count(pattern, "T") == 1:
			k := strings.Index(pattern, "T")
			pattern, bonds = rotateWalk(pattern, bonds, k)
			if pattern == arynePatternAlkyne {
				target = aryneTargetAlkyne
			}
		case strings.Count(pattern, "D") == 4:
			if k := strings.Index(pattern, "DDD"); k >= 0 {
				pattern, bonds = rotateWalk(pattern, bonds, k)
			} else if strings.HasPrefix(pattern, "DD") && strings.HasSuffix(pattern, "D") {
				// DDD run wraps around the walk end.
				pattern, bonds = rotateWalk(pattern, bonds, len(pattern)-1)
			} else if strings.HasPrefix(pattern, "D") && strings.HasSuffix(pattern, "DD") {
				pattern, bonds = rotateWalk(pattern, bonds, len(pattern)-2)
			}
			if pattern == arynePatternCumulene {
				target = aryneTargetCumulene
			}
		}
		if target == "" {
			continue
		}

		s := m.Clone()
		ok := true
		for i, bid := range bonds {
			var order molecule.BondOrder
			switch target[i] {
			case 'S':
				order = molecule.Single
			case 'D':
				order = molecule.Double
			case 'T':
				order = molecule.Triple
			}
			if s.SetOrder(bid, order) != nil {
				ok = false
				break
			}
		}
		if ok && keepCandidate(m, s) {
			structures = append(structures, s)
		}
	}
	return structures
}

// rotateWalk rotates a ring walk left by k positions, keeping the order
// string and bond list aligned.
func rotateWalk(pattern string, bonds []int, k int) (string, []int) {
	rotated := pattern[k:] + pattern[:k]
	nb := append(append([]int(nil), bonds[k:]...), bonds[:k]...)
	return rotated, nb
}

// kekuleStructure returns one kekulized form of an aromatic molecule, or
// nothing for molecules without aromatic bonds.
func kekuleStructure(m *molecule.Mol, _ *Options) []*molecule.Mol {
	if !m.HasAromaticBond() {
		return nil
	}
	s := m.Clone()
	if s.Kekulize() != nil {
		return nil
	}
	return []*molecule.Mol{s}
}

// aromatizeStructure converts the perceived aromatic rings of a molecule
// to aromatic order, without considering other resonance.
func aromatizeStructure(m *molecule.Mol, _ *Options) []*molecule.Mol {
	rings := m.AromaticRings()
	if len(rings) == 0 {
		return nil
	}
	s := m.Clone()
	if s.Aromatize(rings) != nil {
		return nil
	}
	return []*molecule.Mol{s}
}

// optimalAromaticStructures finds the form(s) of the molecule with the
// most aromatic rings. Electron rearrangements considered are aryne
// resonance and, for non-aryl radicals, allyl shifts; the inner expansion
// runs under the caller's options so cancellation and the structure cap
// reach it. An empty result means the molecule is not actually aromatic
// (false-positive perception); callers downgrade their feature snapshot
// accordingly.
func optimalAromaticStructures(m *molecule.Mol, f *Features, o *Options) []*molecule.Mol {
	var features Features
	if f != nil {
		features = *f
	} else {
		features = Analyze(m)
	}
	if !features.IsCyclic {
		return nil
	}
	if o == nil {
		defaults := DefaultOptions()
		o = &defaults
	}

	kinds := []RuleKind{RuleAryne}
	if features.IsRadical && !features.IsArylRadical {
		kinds = append(kinds, RuleAllylShift)
	}
	list, err := expandWorklist([]*molecule.Mol{m.Clone()}, kinds, o)
	if err != nil {
		return nil
	}

	// Group by number of perceived aromatic rings, best first.
	byCount := make(map[int][]*molecule.Mol)
	maxCount := 0
	for _, s := range list {
		n := len(s.AromaticRings())
		byCount[n] = append(byCount[n], s)
		if n > maxCount {
			maxCount = n
		}
	}

	for count := maxCount; count >= 0; count-- {
		var out []*molecule.Mol
		for _, s := range byCount[count] {
			arom := aromatizeStructure(s, o)
			if len(arom) == 0 {
				continue
			}
			if !containsStructure(out, arom[0], false) {
				out = append(out, arom[0])
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// clarStructures wraps the Clar optimizer as a rule; an infeasible or
// sextet-free core falls back to plain aromatization.
func clarStructures(m *molecule.Mol, _ *Options) []*molecule.Mol {
	if !m.IsCyclic() {
		return nil
	}
	sols, err := clar.Structures(m)
	if err != nil {
		return aromatizeStructure(m, nil)
	}
	var structures []*molecule.Mol
	for _, s := range sols {
		if keepCandidate(m, s) {
			structures = append(structures, s)
		}
	}
	return structures
}

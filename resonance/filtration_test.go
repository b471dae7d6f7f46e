package resonance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chemgraph/resonance/molecule"
)

func methylRadical(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	c := m.AddAtom(molecule.Carbon, 0, 1)
	for i := 0; i < 3; i++ {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c, h, molecule.Single)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())
	return m
}

func sulfurDioxide(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	s := m.AddAtom(molecule.Sulfur, 0, 0)
	for i := 0; i < 2; i++ {
		o := m.AddAtom(molecule.Oxygen, 0, 0)
		_, err := m.AddBond(s, o, molecule.Double)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())
	return m
}

// bentAzide builds [N-]=[N+]=[N-], linearAzide the N#N form with the
// double negative charge localized on one terminal nitrogen.
func bentAzide(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	n1 := m.AddAtom(molecule.Nitrogen, -1, 0)
	n2 := m.AddAtom(molecule.Nitrogen, 1, 0)
	n3 := m.AddAtom(molecule.Nitrogen, -1, 0)
	_, _ = m.AddBond(n1, n2, molecule.Double)
	_, _ = m.AddBond(n2, n3, molecule.Double)
	require.NoError(t, m.Validate())
	return m
}

func linearAzide(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	n1 := m.AddAtom(molecule.Nitrogen, -2, 0)
	n2 := m.AddAtom(molecule.Nitrogen, 1, 0)
	n3 := m.AddAtom(molecule.Nitrogen, 0, 0)
	_, _ = m.AddBond(n1, n2, molecule.Single)
	_, _ = m.AddBond(n2, n3, molecule.Triple)
	require.NoError(t, m.Validate())
	return m
}

func TestOctetDeviation(t *testing.T) {
	methane := molecule.New()
	c := methane.AddAtom(molecule.Carbon, 0, 0)
	for i := 0; i < 4; i++ {
		h := methane.AddAtom(molecule.Hydrogen, 0, 0)
		_, _ = methane.AddBond(c, h, molecule.Single)
	}
	require.Equal(t, 0.0, octetDeviation(methane, true))

	// One unpaired electron leaves the carbon one electron short.
	require.Equal(t, 1.0, octetDeviation(methylRadical(t), true))

	// Hypervalent sulfur sits exactly on the dectet; scored against the
	// octet it is two over.
	so2 := sulfurDioxide(t)
	require.Equal(t, 0.0, octetDeviation(so2, true))
	require.Equal(t, 2.0, octetDeviation(so2, false))
}

func TestChargeSpan(t *testing.T) {
	require.Equal(t, 0.0, chargeSpan(methylRadical(t)))
	require.Equal(t, 1.0, chargeSpan(bentAzide(t)))
	require.Equal(t, 1.0, chargeSpan(linearAzide(t)))
}

func TestStabilizeByElectronegativity(t *testing.T) {
	// [C-]#[O+]: the lone structure violates the electronegativity order
	// (the oxonium correction makes it worse), but with no alternative it
	// must survive.
	co := molecule.New()
	c := co.AddAtom(molecule.Carbon, -1, 0)
	o := co.AddAtom(molecule.Oxygen, 1, 0)
	_, _ = co.AddBond(c, o, molecule.Triple)
	require.NoError(t, co.Validate())

	kept := stabilizeByElectronegativity([]*molecule.Mol{co}, false)
	require.Len(t, kept, 1)

	// As the extra-charge layer the same structure is droppable.
	require.Empty(t, stabilizeByElectronegativity([]*molecule.Mol{co}, true))
}

func TestChargeDistances(t *testing.T) {
	// Atom-count metric, endpoints included. Bent azide: two adjacent
	// opposite pairs of 2 atoms each, one same-charge pair spanning 3.
	opp, same := chargeDistances(bentAzide(t))
	require.Equal(t, 4, opp)
	require.Equal(t, 3, same)

	// Linear azide has a single opposite pair and no same-charge pairs.
	opp, same = chargeDistances(linearAzide(t))
	require.Equal(t, 2, opp)
	require.Equal(t, 0, same)
}

func TestStabilizeByProximityFallback(t *testing.T) {
	// The bent azide wins the same-charge distance, the linear form the
	// opposite-charge distance; neither meets both bounds, so the set
	// passes through unchanged.
	list := []*molecule.Mol{bentAzide(t), linearAzide(t)}
	require.Len(t, stabilizeByProximity(list), 2)
}

func TestHasNewSites(t *testing.T) {
	// [O-][N+.]=O against the survivor sites of [O.]N=O (atom IDs 0..2,
	// radical on 0, double bond 1=2).
	m := molecule.New()
	o1 := m.AddAtom(molecule.Oxygen, -1, 0)
	n := m.AddAtom(molecule.Nitrogen, 1, 1)
	o2 := m.AddAtom(molecule.Oxygen, 0, 0)
	_, _ = m.AddBond(o1, n, molecule.Single)
	_, _ = m.AddBond(n, o2, molecule.Double)

	radSites := map[int]bool{o1: true}
	mulSites := map[int]bool{n: true, o2: true}
	require.True(t, hasNewSites(m, radSites, mulSites))

	// With the radical site covered nothing is new: the double bond
	// shares the nitrogen endpoint.
	radSites[n] = true
	require.False(t, hasNewSites(m, radSites, mulSites))
}

func TestFilterStructuresIdempotent(t *testing.T) {
	o := DefaultOptions()
	list := []*molecule.Mol{bentAzide(t), linearAzide(t)}
	f := Analyze(list[0])

	once, err := filterStructures(list, &o, f)
	require.NoError(t, err)
	require.Len(t, once, 2)

	twice, err := filterStructures(once, &o, f)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestOctetFiltrationKeepsMinimum(t *testing.T) {
	list := []*molecule.Mol{bentAzide(t), methylRadical(t)}
	kept := octetFiltration(list, true)
	require.Len(t, kept, 1)
	require.Same(t, list[0], kept[0])
}

func TestAnalyzeFeatures(t *testing.T) {
	no2 := molecule.New()
	o1 := no2.AddAtom(molecule.Oxygen, 0, 1)
	n := no2.AddAtom(molecule.Nitrogen, 0, 0)
	o2 := no2.AddAtom(molecule.Oxygen, 0, 0)
	_, _ = no2.AddBond(o1, n, molecule.Single)
	_, _ = no2.AddBond(n, o2, molecule.Double)

	f := Analyze(no2)
	require.True(t, f.IsRadical)
	require.True(t, f.HasLonePairs)
	require.False(t, f.IsCyclic)
	require.False(t, f.IsAromatic)
	require.False(t, f.HasNitrogenVal5)

	// The central azide nitrogen has no lone pair left.
	f = Analyze(bentAzide(t))
	require.False(t, f.IsRadical)
	require.True(t, f.HasNitrogenVal5)
	require.True(t, f.HasLonePairs)
}

func TestRulesFor(t *testing.T) {
	kinds := rulesFor(Features{IsRadical: true, HasLonePairs: true})
	require.Contains(t, kinds, RuleAllylShift)
	require.Contains(t, kinds, RuleLonePairMultipleBond)
	require.NotContains(t, kinds, RuleAryne)

	// Aromatic seeds skip both the allyl shift (handled by the dedicated
	// kekulé passes) and the slow three-atom lone-pair shift.
	kinds = rulesFor(Features{IsRadical: true, IsCyclic: true, IsAromatic: true, HasLonePairs: true})
	require.NotContains(t, kinds, RuleAllylShift)
	require.NotContains(t, kinds, RuleLonePairMultipleBond)
	require.Contains(t, kinds, RuleAryne)
	require.Contains(t, kinds, RuleAdjacentLonePairRadical)

	require.Empty(t, rulesFor(Features{}))
}

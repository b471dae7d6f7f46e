package molecule_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chemgraph/resonance/molecule"
)

// benzene returns C6H6 with the given ring bond orders.
func benzene(t *testing.T, orders []molecule.BondOrder) (*molecule.Mol, []int) {
	t.Helper()
	m := molecule.New()
	atoms := ring(t, m, orders)
	for _, c := range atoms {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c, h, molecule.Single)
		require.NoError(t, err)
	}
	return m, atoms
}

func kekuleOrders() []molecule.BondOrder {
	return []molecule.BondOrder{
		molecule.Single, molecule.Double, molecule.Single,
		molecule.Double, molecule.Single, molecule.Double,
	}
}

func TestAromaticRingsPerception(t *testing.T) {
	delocalized, _ := benzene(t, aromaticOrders(6))
	require.Len(t, delocalized.AromaticRings(), 1)
	require.Len(t, delocalized.DelocalizedRings(), 1)

	kekule, _ := benzene(t, kekuleOrders())
	require.Len(t, kekule.AromaticRings(), 1)
	require.Empty(t, kekule.DelocalizedRings())

	saturated, _ := benzene(t, []molecule.BondOrder{
		molecule.Single, molecule.Single, molecule.Single,
		molecule.Single, molecule.Single, molecule.Single,
	})
	require.Empty(t, saturated.AromaticRings())
}

func TestOrderPattern(t *testing.T) {
	m, _ := benzene(t, kekuleOrders())
	rings := m.Rings()
	require.Len(t, rings, 1)

	p := m.OrderPattern(rings[0])
	require.Len(t, p, 6)
	require.Equal(t, 3, strings.Count(p, "S"))
	require.Equal(t, 3, strings.Count(p, "D"))
}

func TestKekulizeBenzene(t *testing.T) {
	m, atoms := benzene(t, aromaticOrders(6))
	require.NoError(t, m.Kekulize())
	require.False(t, m.HasAromaticBond())
	require.NoError(t, m.Validate())

	// Every ring carbon ends up with exactly one double bond.
	for _, c := range atoms {
		doubles := 0
		a, _ := m.Atom(c)
		for _, bid := range a.Bonds() {
			b, _ := m.Bond(bid)
			if b.Order == molecule.Double {
				doubles++
			}
		}
		require.Equal(t, 1, doubles, "atom %d", c)
	}
}

func TestKekulizePyridine(t *testing.T) {
	m := molecule.New()
	n := m.AddAtom(molecule.Nitrogen, 0, 0)
	atoms := []int{n}
	for i := 0; i < 5; i++ {
		c := m.AddAtom(molecule.Carbon, 0, 0)
		atoms = append(atoms, c)
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c, h, molecule.Single)
		require.NoError(t, err)
	}
	for i := range atoms {
		_, err := m.AddBond(atoms[i], atoms[(i+1)%6], molecule.Aromatic)
		require.NoError(t, err)
	}

	require.NoError(t, m.Kekulize())
	require.NoError(t, m.Validate())

	lp, err := m.LonePairs(n)
	require.NoError(t, err)
	require.Equal(t, 1, lp)
}

func TestAromatizeRoundTrip(t *testing.T) {
	m, _ := benzene(t, kekuleOrders())
	rings := m.AromaticRings()
	require.Len(t, rings, 1)

	require.NoError(t, m.Aromatize(rings))
	require.True(t, m.HasAromaticBond())
	require.Len(t, m.DelocalizedRings(), 1)
	require.NoError(t, m.Validate())
}

func TestAromatizeRejectsSaturatedRing(t *testing.T) {
	// Aromatizing cyclohexane breaks the valence bookkeeping.
	m := molecule.New()
	atoms := ring(t, m, []molecule.BondOrder{
		molecule.Single, molecule.Single, molecule.Single,
		molecule.Single, molecule.Single, molecule.Single,
	})
	for _, c := range atoms {
		for i := 0; i < 2; i++ {
			h := m.AddAtom(molecule.Hydrogen, 0, 0)
			_, err := m.AddBond(c, h, molecule.Single)
			require.NoError(t, err)
		}
	}
	require.NoError(t, m.Validate())

	rings := m.Rings()
	require.Len(t, rings, 1)
	require.Error(t, m.Aromatize(rings))
}

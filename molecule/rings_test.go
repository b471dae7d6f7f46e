package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chemgraph/resonance/molecule"
)

// ring builds a bare carbocycle of n atoms with the given bond orders
// (orders[i] connects atom i to atom (i+1)%n) and returns the atom IDs.
func ring(t *testing.T, m *molecule.Mol, orders []molecule.BondOrder) []int {
	t.Helper()
	n := len(orders)
	atoms := make([]int, n)
	for i := range atoms {
		atoms[i] = m.AddAtom(molecule.Carbon, 0, 0)
	}
	for i, o := range orders {
		_, err := m.AddBond(atoms[i], atoms[(i+1)%n], o)
		require.NoError(t, err)
	}
	return atoms
}

func aromaticOrders(n int) []molecule.BondOrder {
	out := make([]molecule.BondOrder, n)
	for i := range out {
		out[i] = molecule.Aromatic
	}
	return out
}

func TestRingsSimpleCycle(t *testing.T) {
	m := molecule.New()
	ring(t, m, aromaticOrders(6))

	rings := m.Rings()
	require.Len(t, rings, 1)
	require.Equal(t, 6, rings[0].Size())
	require.Len(t, rings[0].Bonds, 6)
	require.True(t, m.IsCyclic())
}

func TestRingsAcyclic(t *testing.T) {
	m := molecule.New()
	a := m.AddAtom(molecule.Carbon, 0, 0)
	b := m.AddAtom(molecule.Carbon, 0, 0)
	_, _ = m.AddBond(a, b, molecule.Single)

	require.Empty(t, m.Rings())
	require.False(t, m.IsCyclic())
}

func TestRingsFusedBicycle(t *testing.T) {
	// Naphthalene skeleton: ten atoms, eleven bonds, basis of two 6-rings.
	m := molecule.New()
	atoms := make([]int, 10)
	for i := range atoms {
		atoms[i] = m.AddAtom(molecule.Carbon, 0, 0)
	}
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, // first ring
		{4, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 5}, // fused second ring
	}
	for _, e := range edges {
		_, err := m.AddBond(atoms[e[0]], atoms[e[1]], molecule.Aromatic)
		require.NoError(t, err)
	}

	rings := m.Rings()
	require.Len(t, rings, 2)
	for _, r := range rings {
		require.Equal(t, 6, r.Size())
	}
	require.Len(t, m.RingsOfSize(6), 2)
}

func TestRingWalkConsistency(t *testing.T) {
	m := molecule.New()
	ring(t, m, aromaticOrders(6))

	for _, r := range m.Rings() {
		n := r.Size()
		for i := 0; i < n; i++ {
			b, ok := m.Bond(r.Bonds[i])
			require.True(t, ok)
			a1, a2 := r.Atoms[i], r.Atoms[(i+1)%n]
			require.True(t,
				(b.A1 == a1 && b.A2 == a2) || (b.A1 == a2 && b.A2 == a1),
				"ring bond %d does not connect walk atoms %d-%d", r.Bonds[i], a1, a2)
		}
	}
}

func TestShortestPathLen(t *testing.T) {
	m := molecule.New()
	atoms := ring(t, m, aromaticOrders(6))

	d, ok := m.ShortestPathLen(atoms[0], atoms[3])
	require.True(t, ok)
	require.Equal(t, 3, d)

	d, ok = m.ShortestPathLen(atoms[0], atoms[5])
	require.True(t, ok)
	require.Equal(t, 1, d)

	lone := m.AddAtom(molecule.Carbon, 0, 0)
	_, ok = m.ShortestPathLen(atoms[0], lone)
	require.False(t, ok)
}

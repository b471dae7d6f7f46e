package resonance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chemgraph/resonance/molecule"
	"github.com/chemgraph/resonance/resonance"
)

func methane(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	c := m.AddAtom(molecule.Carbon, 0, 0)
	for i := 0; i < 4; i++ {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c, h, molecule.Single)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())
	return m
}

// azideAnion builds [N-]=[N+]=[N-].
func azideAnion(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	n1 := m.AddAtom(molecule.Nitrogen, -1, 0)
	n2 := m.AddAtom(molecule.Nitrogen, 1, 0)
	n3 := m.AddAtom(molecule.Nitrogen, -1, 0)
	_, err := m.AddBond(n1, n2, molecule.Double)
	require.NoError(t, err)
	_, err = m.AddBond(n2, n3, molecule.Double)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

func formamide(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	n := m.AddAtom(molecule.Nitrogen, 0, 0)
	c := m.AddAtom(molecule.Carbon, 0, 0)
	o := m.AddAtom(molecule.Oxygen, 0, 0)
	_, err := m.AddBond(n, c, molecule.Single)
	require.NoError(t, err)
	_, err = m.AddBond(c, o, molecule.Double)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err = m.AddBond(n, h, molecule.Single)
		require.NoError(t, err)
	}
	h := m.AddAtom(molecule.Hydrogen, 0, 0)
	_, err = m.AddBond(c, h, molecule.Single)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

// nitrogenDioxide builds [O.]N=O.
func nitrogenDioxide(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	o1 := m.AddAtom(molecule.Oxygen, 0, 1)
	n := m.AddAtom(molecule.Nitrogen, 0, 0)
	o2 := m.AddAtom(molecule.Oxygen, 0, 0)
	_, err := m.AddBond(o1, n, molecule.Single)
	require.NoError(t, err)
	_, err = m.AddBond(n, o2, molecule.Double)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	return m
}

// kekuleBenzene builds C6H6 with alternating single/double ring bonds.
func kekuleBenzene(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	var c [6]int
	for i := range c {
		c[i] = m.AddAtom(molecule.Carbon, 0, 0)
	}
	for i := range c {
		order := molecule.Single
		if i%2 == 1 {
			order = molecule.Double
		}
		_, err := m.AddBond(c[i], c[(i+1)%6], order)
		require.NoError(t, err)
	}
	for i := range c {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c[i], h, molecule.Single)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())
	return m
}

// cumuleneBenzyne builds the DDDSDS form of o-benzyne
// (cyclohexa-1,2,3-triene skeleton).
func cumuleneBenzyne(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	var c [6]int
	for i := range c {
		c[i] = m.AddAtom(molecule.Carbon, 0, 0)
	}
	orders := []molecule.BondOrder{
		molecule.Double, molecule.Double, molecule.Double,
		molecule.Single, molecule.Double, molecule.Single,
	}
	for i := range c {
		_, err := m.AddBond(c[i], c[(i+1)%6], orders[i])
		require.NoError(t, err)
	}
	for _, i := range []int{0, 3, 4, 5} {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c[i], h, molecule.Single)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())
	return m
}

func allylRadical(t *testing.T) *molecule.Mol {
	t.Helper()
	m := molecule.New()
	c1 := m.AddAtom(molecule.Carbon, 0, 0)
	c2 := m.AddAtom(molecule.Carbon, 0, 0)
	c3 := m.AddAtom(molecule.Carbon, 0, 1)
	_, err := m.AddBond(c1, c2, molecule.Double)
	require.NoError(t, err)
	_, err = m.AddBond(c2, c3, molecule.Single)
	require.NoError(t, err)
	for _, spec := range []struct{ atom, n int }{{c1, 2}, {c2, 1}, {c3, 2}} {
		for i := 0; i < spec.n; i++ {
			h := m.AddAtom(molecule.Hydrogen, 0, 0)
			_, err := m.AddBond(spec.atom, h, molecule.Single)
			require.NoError(t, err)
		}
	}
	require.NoError(t, m.Validate())
	return m
}

func TestGenerateMethane(t *testing.T) {
	m := methane(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Same(t, m, out[0])
}

func TestGenerateAzideAnion(t *testing.T) {
	m := azideAnion(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	// The bent seed and the linear N#N form both contribute.
	require.Len(t, out, 2)
	require.Same(t, m, out[0])

	foundDoubleNegative := false
	for _, s := range out {
		require.Equal(t, -1, s.NetCharge())
		require.Equal(t, 3, s.AtomCount())
		for _, a := range s.Atoms() {
			if a.Charge == -2 {
				foundDoubleNegative = true
			}
		}
	}
	require.True(t, foundDoubleNegative)
}

func TestGenerateFormamide(t *testing.T) {
	m := formamide(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	// The zwitterionic form adds a charge pair without a new site, so
	// only the neutral structure represents formamide.
	require.Len(t, out, 1)
	require.Same(t, m, out[0])
}

func TestGenerateFormamideUnfiltered(t *testing.T) {
	m := formamide(t)

	out, err := resonance.Generate(m, resonance.WithFilterStructures(false))
	require.NoError(t, err)
	require.Len(t, out, 2)

	zwitterion := out[1]
	require.Equal(t, 0, zwitterion.NetCharge())
	charged := 0
	for _, a := range zwitterion.Atoms() {
		if a.Charge != 0 {
			charged++
		}
	}
	require.Equal(t, 2, charged)
}

func TestGenerateNitrogenDioxide(t *testing.T) {
	m := nitrogenDioxide(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	// The charge-separated form puts the radical on nitrogen, a site no
	// minimal-span structure has it on, so it is kept alongside the seed.
	require.Len(t, out, 2)
	require.Same(t, m, out[0])
	for _, s := range out {
		require.Equal(t, 1, s.RadicalCount())
		require.Equal(t, 0, s.NetCharge())
	}
}

func TestGenerateArynes(t *testing.T) {
	m := cumuleneBenzyne(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	require.Len(t, out, 2)

	hasTriple := func(s *molecule.Mol) bool {
		for _, b := range s.Bonds() {
			if b.Order == molecule.Triple {
				return true
			}
		}
		return false
	}
	require.False(t, hasTriple(out[0]))
	require.True(t, hasTriple(out[1]))
}

func TestGenerateBenzene(t *testing.T) {
	m := kekuleBenzene(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	// The kekulé seed leads, followed by its delocalized form.
	require.Len(t, out, 2)
	require.Same(t, m, out[0])
	require.NotEmpty(t, out[1].DelocalizedRings())
}

func TestGenerateAllylRadical(t *testing.T) {
	m := allylRadical(t)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	// Both localizations are isomorphic; dedup leaves the seed alone.
	require.Len(t, out, 1)

	out, err = resonance.Generate(m, resonance.WithKeepIsomorphic(true))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.False(t, molecule.Identical(out[0], out[1]))
}

func TestGenerateSeedErrors(t *testing.T) {
	_, err := resonance.Generate(nil)
	require.ErrorIs(t, err, resonance.ErrNilMolecule)

	_, err = resonance.Generate(molecule.New())
	require.ErrorIs(t, err, resonance.ErrEmptyMolecule)

	disconnected := molecule.New()
	disconnected.AddAtom(molecule.Nitrogen, 0, 0)
	disconnected.AddAtom(molecule.Nitrogen, 0, 0)
	_, err = resonance.Generate(disconnected)
	require.ErrorIs(t, err, resonance.ErrDisconnected)

	invalid := molecule.New()
	invalid.AddAtom(molecule.Nitrogen, 3, 0)
	_, err = resonance.Generate(invalid)
	require.ErrorIs(t, err, resonance.ErrInvalidSeed)
}

func TestGenerateOptionViolation(t *testing.T) {
	_, err := resonance.Generate(methane(t), resonance.WithMaxStructures(-1))
	require.ErrorIs(t, err, resonance.ErrOptionViolation)
}

func TestGenerateMaxStructures(t *testing.T) {
	out, err := resonance.Generate(azideAnion(t), resonance.WithMaxStructures(1))
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resonance.Generate(azideAnion(t), resonance.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateIsomorphic(t *testing.T) {
	m := allylRadical(t)

	out, err := resonance.GenerateIsomorphic(m)
	require.NoError(t, err)
	// The seed plus the mirror-image localization of the radical.
	require.Len(t, out, 2)
	require.Same(t, m, out[0])
	require.True(t, molecule.Isomorphic(out[0], out[1]))
	require.False(t, molecule.Identical(out[0], out[1]))
}

func TestGenerateIsomorphicSaturated(t *testing.T) {
	m := allylRadical(t)
	before := m.Clone()

	out, err := resonance.GenerateIsomorphic(m, resonance.WithSaturateH(true))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Same(t, m, out[0])
	// Saturation works on a private copy.
	require.True(t, molecule.Identical(m, before))
}

func TestGenerateInsertionOrderInvariant(t *testing.T) {
	// The azide built terminal-first and center-first yields the same
	// structure families.
	m := molecule.New()
	n2 := m.AddAtom(molecule.Nitrogen, 1, 0)
	n1 := m.AddAtom(molecule.Nitrogen, -1, 0)
	n3 := m.AddAtom(molecule.Nitrogen, -1, 0)
	_, err := m.AddBond(n1, n2, molecule.Double)
	require.NoError(t, err)
	_, err = m.AddBond(n2, n3, molecule.Double)
	require.NoError(t, err)

	out, err := resonance.Generate(m)
	require.NoError(t, err)
	require.Len(t, out, 2)

	ref, err := resonance.Generate(azideAnion(t))
	require.NoError(t, err)
	require.True(t, molecule.Isomorphic(out[0], ref[0]))
	require.True(t, molecule.Isomorphic(out[1], ref[1]))
}

func TestGenerateDoesNotMutateSeed(t *testing.T) {
	m := azideAnion(t)
	before := m.Clone()

	_, err := resonance.Generate(m)
	require.NoError(t, err)
	require.True(t, molecule.Identical(m, before))
}

package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chemgraph/resonance/molecule"
)

func TestValidateAcceptsWater(t *testing.T) {
	m := molecule.New()
	o := m.AddAtom(molecule.Oxygen, 0, 0)
	for i := 0; i < 2; i++ {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, _ = m.AddBond(o, h, molecule.Single)
	}
	require.NoError(t, m.Validate())
}

func TestValidateRejectsOverchargedAtom(t *testing.T) {
	m := molecule.New()
	m.AddAtom(molecule.Nitrogen, 3, 0)
	require.ErrorIs(t, m.Validate(), molecule.ErrChargeRange)
}

func TestValidateRejectsHypervalentCarbon(t *testing.T) {
	m := molecule.New()
	c := m.AddAtom(molecule.Carbon, 0, 0)
	for i := 0; i < 5; i++ {
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, err := m.AddBond(c, h, molecule.Single)
		require.NoError(t, err)
	}
	require.Error(t, m.Validate())
}

func TestValidateRejectsFractionalLonePair(t *testing.T) {
	m := molecule.New()
	c := m.AddAtom(molecule.Carbon, 0, 0)
	h := m.AddAtom(molecule.Hydrogen, 0, 0)
	_, _ = m.AddBond(c, h, molecule.Single)
	require.ErrorIs(t, m.Validate(), molecule.ErrFractionalLonePair)
}

func TestValidateRejectsHydrogenWithTwoBonds(t *testing.T) {
	m := molecule.New()
	h := m.AddAtom(molecule.Hydrogen, 0, 0)
	a := m.AddAtom(molecule.Carbon, 0, 0)
	b := m.AddAtom(molecule.Carbon, 0, 0)
	_, _ = m.AddBond(h, a, molecule.Single)
	_, _ = m.AddBond(h, b, molecule.Single)
	require.Error(t, m.Validate())
}

func TestValidateRejectsStrayAromaticBond(t *testing.T) {
	// A lone aromatic bond outside any all-aromatic ring is invalid.
	m := molecule.New()
	a := m.AddAtom(molecule.Carbon, 0, 0)
	b := m.AddAtom(molecule.Carbon, 0, 0)
	_, _ = m.AddBond(a, b, molecule.Aromatic)
	require.ErrorIs(t, m.Validate(), molecule.ErrAromaticMembership)
}

func TestValidateAllowsExpandedSulfur(t *testing.T) {
	// Sulfuric-acid-like S with six bonding electrons.
	m := molecule.New()
	s := m.AddAtom(molecule.Sulfur, 0, 0)
	for i := 0; i < 2; i++ {
		o := m.AddAtom(molecule.Oxygen, 0, 0)
		_, _ = m.AddBond(s, o, molecule.Double)
	}
	for i := 0; i < 2; i++ {
		o := m.AddAtom(molecule.Oxygen, 0, 0)
		_, _ = m.AddBond(s, o, molecule.Single)
		h := m.AddAtom(molecule.Hydrogen, 0, 0)
		_, _ = m.AddBond(o, h, molecule.Single)
	}
	require.NoError(t, m.Validate())
}

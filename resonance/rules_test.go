package resonance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chemgraph/resonance/molecule"
)

// kekuleRing builds C6H6 with alternating single/double ring bonds.
func kekuleRing(t *testing.T) *molecule.Mol {
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

func TestRuleTableCoversAllKinds(t *testing.T) {
	kinds := append([]RuleKind{RuleAromatize}, allRuleKinds...)
	require.Len(t, ruleTable, len(kinds))
	for _, kind := range kinds {
		require.NotNil(t, ruleTable[kind])
	}
}

func TestRuleTableDispatchesOptimalAromatic(t *testing.T) {
	m := kekuleRing(t)
	o := DefaultOptions()

	out := ruleTable[RuleOptimalAromatic](m, &o)
	require.NotEmpty(t, out)
	require.NotEmpty(t, out[0].DelocalizedRings())
}

func TestOptimalAromaticHonorsContext(t *testing.T) {
	m := kekuleRing(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := DefaultOptions()
	o.Ctx = ctx

	// A cancelled context stops the inner expansion before it yields
	// anything; with the defaults the same seed delocalizes fine.
	require.Empty(t, optimalAromaticStructures(m, nil, &o))
	require.NotEmpty(t, optimalAromaticStructures(m, nil, nil))
}

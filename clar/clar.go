// File: clar.go
// Role: Clar sextet optimization over the pseudo-boolean solver.

package clar

import (
	"errors"
	"fmt"
	"sort"

	"github.com/crillab/gophersat/solver"
	"gonum.org/v1/gonum/mat"

	"github.com/chemgraph/resonance/molecule"
)

var (
	// ErrNoSextet indicates the molecule has no candidate sextet ring, or
	// the core admits no assignment with at least one sextet.
	ErrNoSextet = errors.New("clar: no aromatic sextet found")

	// ErrInfeasible indicates the exactly-one constraints cannot be
	// satisfied at all; the aromatic core has no valid Clar partition.
	ErrInfeasible = errors.New("clar: constraints are infeasible")
)

// program is one built optimization instance. Ring variable i maps to
// solver literal i+1; bond variable j maps to literal len(rings)+j+1.
type program struct {
	mol   *molecule.Mol
	rings []molecule.Ring
	atoms []int // sorted IDs of atoms inside candidate rings
	bonds []int // sorted IDs of bonds with both endpoints inside

	base []solver.PBConstr
}

// Structures returns every maximal-sextet Clar structure of m. The input
// is not modified; each returned structure is an independent clone with
// sextet rings in aromatic order and all remaining core bonds fixed to
// single or double. Molecules without an aromatic core yield ErrNoSextet.
func Structures(m *molecule.Mol) ([]*molecule.Mol, error) {
	p, err := build(m)
	if err != nil {
		return nil, err
	}
	k, err := p.optimum()
	if err != nil {
		return nil, err
	}
	sols := p.enumerate(k)
	out := make([]*molecule.Mol, 0, len(sols))
	for _, model := range sols {
		s, err := p.apply(model)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoSextet
	}
	return out, nil
}

// build collects candidate rings, the core atom set, the core bonds and
// the exactly-one constraint per core atom. Exocyclic double bonds are
// frozen: they pre-consume their core atom's slot.
func build(m *molecule.Mol) (*program, error) {
	rings := m.AromaticRings()
	if len(rings) == 0 {
		return nil, ErrNoSextet
	}

	inCore := make(map[int]bool)
	for _, r := range rings {
		for _, aid := range r.Atoms {
			inCore[aid] = true
		}
	}
	atoms := make([]int, 0, len(inCore))
	for aid := range inCore {
		atoms = append(atoms, aid)
	}
	sort.Ints(atoms)

	var bonds []int
	exo := make(map[int]int) // core atom ID -> frozen exocyclic doubles
	for _, b := range m.Bonds() {
		switch {
		case inCore[b.A1] && inCore[b.A2]:
			bonds = append(bonds, b.ID)
		case inCore[b.A1] || inCore[b.A2]:
			if b.Order == molecule.Aromatic {
				return nil, fmt.Errorf("%w: aromatic bond %d leaves the core", ErrInfeasible, b.ID)
			}
			if b.Order >= molecule.Double {
				core := b.A1
				if !inCore[core] {
					core = b.A2
				}
				exo[core]++
			}
		}
	}

	p := &program{mol: m, rings: rings, atoms: atoms, bonds: bonds}

	// Incidence matrix: one row per core atom, one column per ring
	// variable then per bond variable.
	nv := len(rings) + len(bonds)
	a := mat.NewDense(len(atoms), nv, nil)
	for i, r := range rings {
		member := make(map[int]bool, len(r.Atoms))
		for _, aid := range r.Atoms {
			member[aid] = true
		}
		for row, aid := range atoms {
			if member[aid] {
				a.Set(row, i, 1)
			}
		}
	}
	for j, bid := range bonds {
		b, _ := m.Bond(bid)
		for row, aid := range atoms {
			if aid == b.A1 || aid == b.A2 {
				a.Set(row, len(rings)+j, 1)
			}
		}
	}

	for row, aid := range atoms {
		var lits, weights []int
		for col := 0; col < nv; col++ {
			if a.At(row, col) != 0 {
				lits = append(lits, col+1)
				weights = append(weights, 1)
			}
		}
		rhs := 1 - exo[aid]
		if rhs < 0 {
			return nil, fmt.Errorf("%w: atom %d carries two exocyclic doubles", ErrInfeasible, aid)
		}
		p.base = append(p.base, solver.Eq(lits, weights, rhs)...)
	}
	return p, nil
}

func (p *program) ringLits() []int {
	lits := make([]int, len(p.rings))
	for i := range p.rings {
		lits[i] = i + 1
	}
	return lits
}

// solve runs one pseudo-boolean instance and returns the model when
// satisfiable.
func solve(constrs []solver.PBConstr) ([]bool, bool) {
	s := solver.New(solver.ParsePBConstrs(constrs))
	if s.Solve() != solver.Sat {
		return nil, false
	}
	return s.Model(), true
}

// optimum finds the maximal sextet count by searching the cardinality
// bound downward. A core that is satisfiable only with zero sextets
// yields ErrNoSextet; an unsatisfiable core yields ErrInfeasible.
func (p *program) optimum() (int, error) {
	lits := p.ringLits()
	for k := len(p.rings); k >= 1; k-- {
		constrs := append(append([]solver.PBConstr{}, p.base...), solver.AtLeast(lits, k))
		if _, ok := solve(constrs); ok {
			return k, nil
		}
	}
	if _, ok := solve(p.base); ok {
		return 0, ErrNoSextet
	}
	return 0, ErrInfeasible
}

// enumerate returns the models of every assignment attaining k sextets.
// After each solution a blocking constraint forbids that exact sextet
// selection, so each distinct ring choice appears once.
func (p *program) enumerate(k int) [][]bool {
	constrs := append(append([]solver.PBConstr{}, p.base...), solver.AtLeast(p.ringLits(), k))
	var models [][]bool
	for {
		model, ok := solve(constrs)
		if !ok {
			return models
		}
		models = append(models, model)
		var chosen []int
		for i := range p.rings {
			if model[i] {
				chosen = append(chosen, i+1)
			}
		}
		constrs = append(constrs, solver.AtMost(chosen, k-1))
	}
}

// apply converts one model into a molecule: core bonds go single or
// double per their variable, then the chosen sextet rings are
// aromatized. Invalid results are discarded by the caller.
func (p *program) apply(model []bool) (*molecule.Mol, error) {
	s := p.mol.Clone()
	for j, bid := range p.bonds {
		order := molecule.Single
		if model[len(p.rings)+j] {
			order = molecule.Double
		}
		if err := s.SetOrder(bid, order); err != nil {
			return nil, err
		}
	}
	var sextets []molecule.Ring
	for i, r := range p.rings {
		if model[i] {
			sextets = append(sextets, r)
		}
	}
	if err := s.Aromatize(sextets); err != nil {
		return nil, err
	}
	return s, nil
}

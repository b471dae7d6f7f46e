// Package resonance is an in-memory toolkit for enumerating and ranking
// the resonance structures of molecular graphs — from the electron
// bookkeeping primitives to Clar sextet optimization.
//
// 🚀 What is chemgraph/resonance?
//
//	A library that brings together:
//		• Core primitives: atoms, bonds, charges, radicals, lone pairs
//		• Validation: element-aware electron bookkeeping on every rewrite
//		• Path finding: the delocalization motifs driving each rewrite rule
//		• Generation: a worklist engine closing a seed under rewrite rules
//		• Filtration: octet, charge and aromaticity filters selecting the
//		  representative contributors
//		• Clar structures: maximal-sextet assignment via a PB-SAT solver
//
// Everything is organized under four subpackages:
//
//	molecule/   — the molecular graph model, editing and validation
//	pathfinder/ — delocalization path discovery
//	clar/       — Clar sextet optimization
//	resonance/  — rewrite rules, the generation engine and filtration
//
// Quick ASCII example:
//
//	[O.]─N═O   ⇌   O═N─[O.]
//
// represents the two equivalent localizations of the nitrogen dioxide
// radical; Generate returns both families deduplicated and filtered.
//
//	go get github.com/chemgraph/resonance
package resonance

// Package resonance enumerates the chemically valid resonance structures
// of a molecular graph and filters them down to the representative
// contributors.
//
// Generate runs the full pipeline: a feature snapshot of the seed selects
// an ordered set of rewrite rules; a worklist closure expands the seed
// under those rules with a tightening octet/charge-span bound and
// isomorphism deduplication; the candidate set then passes through four
// ordered filters (multiplicity, octet, charge, aromaticity) and the
// surviving structure isomorphic to the seed is moved to position 0.
//
// Every rewrite works on a private clone of its input; the seed is never
// mutated. Invalid rewrites are ordinary discard outcomes, not errors:
// a rule either returns a validated candidate or nothing.
//
// Aromatic seeds get dedicated treatment before the general expansion:
// the maximally aromatic forms are located first (correcting
// false-positive perception), kekulé and allyl expansion runs for
// non-aryl radicals, and polycyclic systems can be routed through the
// Clar sextet optimizer.
//
//	structs, err := resonance.Generate(mol)
//	structs, err := resonance.Generate(mol, resonance.WithClarStructures(true))
package resonance

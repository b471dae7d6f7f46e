// Package molecule defines the molecular graph used throughout the module:
// atoms carrying element, formal charge and radical-electron count, and
// bonds carrying a discrete order (single, double, triple or aromatic).
//
// The package provides:
//
//   - Mol, Atom, Bond: ID-stable storage with deterministic (ascending ID)
//     iteration, so every downstream algorithm is reproducible.
//   - Elementary edits: bond-order and radical increments/decrements and
//     formal-charge recomputation from a target lone-pair count. Lone pairs
//     are never stored; they are derived from the outer-shell electron
//     balance, and a fractional balance is reported as an error rather
//     than truncated.
//   - Clone: a deep, independent copy preserving atom and bond IDs, so a
//     rewrite can address "atom 7" identically on the copy and the source.
//   - Validate: electron-bookkeeping consistency check (valence caps,
//     charge bounds, aromatic-ring membership) applied after every edit
//     sequence.
//   - Ring perception (fundamental cycle basis, six-membered ring walks),
//     benzenoid aromatic-ring detection, kekulization and aromatization.
//   - Isomorphism and identity comparison of labeled molecular graphs.
//   - A gonum graph adapter exposing Mol as graph.Undirected, used for
//     shortest-path (bond count) distances.
//
// All mutating operations return sentinel errors at their bounds; nothing
// in this package panics on chemically impossible input.
package molecule

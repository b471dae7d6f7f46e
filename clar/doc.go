// Package clar computes Clar structures of polycyclic aromatic systems.
//
// A Clar structure partitions the atoms of the aromatic core so that
// every atom sits in exactly one aromatic sextet ring or on exactly one
// double bond. The optimization maximizes the number of sextets (the
// Hansen–Zheng binary program) and enumerates every assignment that
// attains the maximum.
//
// The binary program is solved as a pseudo-boolean satisfiability
// problem: one boolean variable per candidate sextet ring, one per
// candidate bond, an exactly-one constraint per core atom, and a
// cardinality bound on the sextet variables searched downward until
// satisfiable. Further optima are enumerated by adding a blocking
// constraint over each found sextet selection and re-solving.
//
// Complexity: the constraint build is O(V+E); solving is NP-hard in
// general but the instances are tiny (one variable per ring and bond of
// the aromatic core).
package clar

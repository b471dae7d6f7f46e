// Package pathfinder enumerates delocalization paths: short conjugated
// rewrite sites anchored at a seed atom, one finder per path family.
//
// A path is a typed record of atom and bond IDs plus, for the
// bidirectional families, the direction in which the bond order would
// move. Finders are read-only: they never mutate the molecule, and they
// report every matching site so the generation rules can attempt each one
// independently on a private clone.
//
// Families:
//
//   - AllylRadicalPaths: radical ~ single/double ~ double/triple, three atoms.
//   - LonePairMultipleBondPaths: lone-pair donor, three atoms; carbon is
//     excluded as the donor and sulfur-sulfur donation is skipped.
//   - AdjacentLonePairRadicalPaths: radical/lone-pair swap between two
//     adjacent heteroatoms; adjacent O-O pairs are excluded.
//   - AdjacentLonePairMultipleBondPaths: lone-pair/bond-order exchange on
//     one bond, in either direction; S=S formation is forbidden.
//   - AdjacentLonePairRadicalMultipleBondPaths: as above with a
//     simultaneous radical shift.
//   - PentavalentNitrogenPaths: radical/lone-pair swap between two
//     substituents of a positively charged three-coordinate nitrogen;
//     at most one path per center.
//
// The element-specific lone-pair capability predicates (CanGainLonePair,
// CanLoseLonePair) are exported because the generation rules re-check them
// after cloning.
package pathfinder

// File: elements.go
// Role: per-element property tables used by the electron bookkeeping.

package molecule

// Atomic numbers for the elements this package has tables for.
const (
	Hydrogen = 1
	Carbon   = 6
	Nitrogen = 7
	Oxygen   = 8
	Fluorine = 9
	Silicon  = 14
	Phosphor = 15
	Sulfur   = 16
	Chlorine = 17
	Bromine  = 35
	Iodine   = 53
)

// outerElectrons maps atomic number to outer-shell (valence) electron count.
var outerElectrons = map[int]int{
	Hydrogen: 1,
	Carbon:   4,
	Nitrogen: 5,
	Oxygen:   6,
	Fluorine: 7,
	Silicon:  4,
	Phosphor: 5,
	Sulfur:   6,
	Chlorine: 7,
	Bromine:  7,
	Iodine:   7,
}

// electronegativity maps atomic number to the Pauling electronegativity,
// used by the charge-stabilization filter.
var electronegativity = map[int]float64{
	Hydrogen: 2.20,
	Carbon:   2.55,
	Nitrogen: 3.04,
	Oxygen:   3.44,
	Fluorine: 3.98,
	Silicon:  1.90,
	Phosphor: 2.19,
	Sulfur:   2.58,
	Chlorine: 3.16,
	Bromine:  2.96,
	Iodine:   2.66,
}

// maxValenceElectrons caps 2*(bond order + lone pairs) + radicals per atom.
// Second-row elements obey the octet; sulfur may expand to 12 (duodectet),
// hydrogen holds a duet. Halogens stay at the octet.
var maxValenceElectrons = map[int]int{
	Hydrogen: 2,
	Carbon:   8,
	Nitrogen: 8,
	Oxygen:   8,
	Fluorine: 8,
	Silicon:  8,
	Phosphor: 10,
	Sulfur:   12,
	Chlorine: 8,
	Bromine:  8,
	Iodine:   8,
}

// symbols maps atomic number to element symbol for diagnostics.
var symbols = map[int]string{
	Hydrogen: "H",
	Carbon:   "C",
	Nitrogen: "N",
	Oxygen:   "O",
	Fluorine: "F",
	Silicon:  "Si",
	Phosphor: "P",
	Sulfur:   "S",
	Chlorine: "Cl",
	Bromine:  "Br",
	Iodine:   "I",
}

// OuterElectrons returns the outer-shell electron count for an atomic
// number, and whether the element is known to this package.
func OuterElectrons(element int) (int, bool) {
	n, ok := outerElectrons[element]
	return n, ok
}

// Electronegativity returns the Pauling electronegativity for an atomic
// number; unknown elements report 0.
func Electronegativity(element int) float64 {
	return electronegativity[element]
}

// Symbol returns the element symbol, or "?" for unknown atomic numbers.
func Symbol(element int) string {
	if s, ok := symbols[element]; ok {
		return s
	}
	return "?"
}

// File: errors.go
// Role: sentinel errors for the generation and filtration pipeline.

package resonance

import "errors"

var (
	// ErrNilMolecule is returned when a nil seed is passed to an entry point.
	ErrNilMolecule = errors.New("resonance: molecule is nil")

	// ErrEmptyMolecule is returned when the seed has no atoms.
	ErrEmptyMolecule = errors.New("resonance: molecule has no atoms")

	// ErrDisconnected is returned when the seed contains more than one
	// connected fragment; resonance is defined per connected species.
	ErrDisconnected = errors.New("resonance: molecule has disconnected fragments")

	// ErrInvalidSeed is returned when the seed itself fails validation
	// before any generation begins.
	ErrInvalidSeed = errors.New("resonance: seed structure is invalid")

	// ErrNoRepresentative is returned when filtration empties the
	// candidate set entirely.
	ErrNoRepresentative = errors.New("resonance: no representative structure")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("resonance: invalid option supplied")
)

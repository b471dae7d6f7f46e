// File: aromatic.go
// Role: benzenoid aromatic-ring perception and aromatization.
//
// Full aromaticity perception is a capability this module deliberately
// keeps minimal: a six-membered ring counts as aromatic when its bonds are
// either all of aromatic order (delocalized form) or alternate
// single/double around the walk (kekulé form). That is exactly the
// signature test the filtration engine applies, so perception and
// filtering cannot disagree.

package molecule

import (
	"errors"
	"fmt"
)

// ErrAromatize indicates that converting rings to aromatic order produced
// an inconsistent structure; the caller discards the whole clone.
var ErrAromatize = errors.New("molecule: aromatization produced invalid structure")

// OrderPattern returns the bond-order walk of a ring as a letter string:
// S (single), D (double), T (triple), A (aromatic).
func (m *Mol) OrderPattern(r Ring) string {
	buf := make([]byte, 0, len(r.Bonds))
	for _, bid := range r.Bonds {
		switch m.bonds[bid].Order {
		case Single:
			buf = append(buf, 'S')
		case Double:
			buf = append(buf, 'D')
		case Triple:
			buf = append(buf, 'T')
		default:
			buf = append(buf, 'A')
		}
	}
	return string(buf)
}

// alternatingSD reports whether the pattern is SDSDSD or DSDSDS.
func alternatingSD(pattern string) bool {
	if len(pattern)%2 != 0 {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		want := byte('S')
		if i%2 == 1 {
			want = 'D'
		}
		if pattern[0] == 'D' {
			if want == 'S' {
				want = 'D'
			} else {
				want = 'S'
			}
		}
		if pattern[i] != want {
			return false
		}
	}
	return true
}

// AromaticRings returns the six-membered basis rings perceived as
// aromatic: all-aromatic order or alternating single/double.
func (m *Mol) AromaticRings() []Ring {
	var out []Ring
	for _, r := range m.RingsOfSize(6) {
		p := m.OrderPattern(r)
		if allAromatic(p) || alternatingSD(p) {
			out = append(out, r)
		}
	}
	return out
}

// DelocalizedRings returns the basis rings whose bonds are all of
// aromatic order.
func (m *Mol) DelocalizedRings() []Ring {
	var out []Ring
	for _, r := range m.Rings() {
		if allAromatic(m.OrderPattern(r)) {
			out = append(out, r)
		}
	}
	return out
}

// HasAromaticBond reports whether any bond carries aromatic order.
func (m *Mol) HasAromaticBond() bool {
	for _, b := range m.Bonds() {
		if b.Order == Aromatic {
			return true
		}
	}
	return false
}

func allAromatic(pattern string) bool {
	if pattern == "" {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 'A' {
			return false
		}
	}
	return true
}

// Aromatize sets every bond of the given rings to aromatic order and
// validates the result. The conversion is atomic from the caller's point
// of view: Aromatize is only ever invoked on a private clone, and a
// non-nil error means the clone as a whole is discarded (no partial
// commit survives anywhere).
func (m *Mol) Aromatize(rings []Ring) error {
	for _, r := range rings {
		for _, bid := range r.Bonds {
			b, ok := m.bonds[bid]
			if !ok {
				return fmt.Errorf("%w: %d", ErrBondNotFound, bid)
			}
			b.Order = Aromatic
		}
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrAromatize, err)
	}
	return nil
}

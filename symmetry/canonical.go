package symmetry

import (
	"bytes"
	"minimax/board"
)

// Canonicalizer picks one representative per symmetry class of grids of a
// fixed shape.
type Canonicalizer struct {
	rows       int
	cols       int
	transforms []Transform
}

// NewCanonicalizer builds the symmetry group for rows x cols grids: the eight
// rotations and reflections when square, otherwise the two axis reflections
// and their composition. Every geometric transform is paired with and
// without a label swap.
func NewCanonicalizer(rows, cols int) *Canonicalizer {
	geometries := rectangle
	if rows == cols {
		geometries = square
	}

	c := &Canonicalizer{rows: rows, cols: cols}
	for _, swap := range []bool{false, true} {
		for _, geo := range geometries {
			c.transforms = append(c.transforms, newTransform(geo, rows, cols, swap))
		}
	}
	return c
}

func (c *Canonicalizer) Transforms() []Transform {
	return c.transforms
}

// Canonical returns the lexicographically smallest serialization of g over
// all transforms. Grids in the same symmetry class share the result.
func (c *Canonicalizer) Canonical(g board.Grid) []byte {
	src := c.transforms[0].checked(g).Bytes()
	best := make([]byte, len(src))
	candidate := make([]byte, len(src))

	copy(best, src)
	for _, t := range c.transforms[1:] {
		t.applyTo(candidate, src)
		if bytes.Compare(candidate, best) < 0 {
			best, candidate = candidate, best
		}
	}
	return best
}

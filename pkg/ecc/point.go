package ecc

import (
	"fmt"
	"math/big"
)

// Point is an element of an elliptic-curve group: either an affine
// coordinate pair or the point at infinity (the group identity). The
// zero value is not valid; use NewPoint or Infinity.
//
// Points are immutable values. Accessors return copies so a shared
// Point can never be mutated through its coordinates.
type Point struct {
	x, y *big.Int
	inf  bool
}

// NewPoint returns the affine point (x, y). The coordinates are copied
// and are expected to be reduced modulo the curve's field prime.
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// Infinity returns the point at infinity, the identity of every curve
// group.
func Infinity() Point {
	return Point{inf: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.inf
}

// X returns a copy of the x coordinate. It is nil for the point at
// infinity.
func (p Point) X() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate. It is nil for the point at
// infinity.
func (p Point) Y() *big.Int {
	if p.inf {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.inf {
		return "(infinity)"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

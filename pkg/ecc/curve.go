// Package ecc implements elliptic-curve groups over prime fields in
// short Weierstrass form y^2 = x^3 + ax + b (mod p), together with an
// ECDSA signing and verification scheme built on top of them.
//
// Curves should be constructed through a Factory, which validates the
// parameters (primality of p, non-singularity, order and generator
// consistency) before producing a Curve. Curves are immutable once
// constructed and safe for concurrent use.
package ecc

import (
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/modmath"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Curve is an elliptic curve y^2 = x^3 + ax + b over the prime field
// F_p, together with the order of its point group and a generator when
// known. A Curve is immutable after construction.
type Curve struct {
	a, b, p *big.Int

	// order is the number of elements in the point group, nil when
	// unknown. generator is Infinity when no generator is known.
	order     *big.Int
	generator Point

	// substituted records that the factory replaced an invalid
	// caller-supplied generator with a random point.
	substituted bool
}

// NewCurve constructs a curve directly from unchecked parameters. No
// validation is performed: the caller is responsible for p being an odd
// prime, the curve being non-singular, and order/generator being
// consistent. Prefer Factory.CreateCurve, which guarantees all of this.
// order may be nil and generator may be Infinity when unknown.
func NewCurve(a, b, p, order *big.Int, generator Point) *Curve {
	c := &Curve{
		a:         new(big.Int).Set(a),
		b:         new(big.Int).Set(b),
		p:         new(big.Int).Set(p),
		generator: generator,
	}
	if order != nil {
		c.order = new(big.Int).Set(order)
	}
	return c
}

// A returns the linear coefficient of the curve equation.
func (c *Curve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns the constant coefficient of the curve equation.
func (c *Curve) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns the field modulus.
func (c *Curve) P() *big.Int { return new(big.Int).Set(c.p) }

// Order returns the order of the point group, or nil when unknown.
func (c *Curve) Order() *big.Int {
	if c.order == nil {
		return nil
	}
	return new(big.Int).Set(c.order)
}

// Generator returns the curve's generator point, or Infinity when none
// is set.
func (c *Curve) Generator() Point { return c.generator }

// GeneratorSubstituted reports whether the factory discarded an invalid
// caller-supplied generator and substituted a random point. Callers
// that depend on a specific generator, for example for compatibility
// with another implementation, must check this before signing.
func (c *Curve) GeneratorSubstituted() bool { return c.substituted }

// Polynomial evaluates the right-hand side x^3 + ax + b (mod p).
func (c *Curve) Polynomial(x *big.Int) *big.Int {
	// Horner form: ((x)x + a)x + b
	rhs := new(big.Int).Mul(x, x)
	rhs.Add(rhs, c.a)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, c.b)
	return rhs.Mod(rhs, c.p)
}

// IsOnCurve reports whether pt satisfies the curve equation. The point
// at infinity is on every curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.inf {
		return true
	}
	y2 := new(big.Int).Mul(pt.y, pt.y)
	y2.Mod(y2, c.p)
	return c.Polynomial(pt.x).Cmp(y2) == 0
}

// CheckPoint returns ErrPointNotOnCurve if pt fails the curve equation.
func (c *Curve) CheckPoint(pt Point) error {
	if !c.IsOnCurve(pt) {
		return fmt.Errorf("%w: %s", ErrPointNotOnCurve, pt)
	}
	return nil
}

// IsXOnCurve reports whether some point on the curve has abscissa x,
// i.e. whether x^3 + ax + b is a quadratic residue modulo p.
func (c *Curve) IsXOnCurve(x *big.Int) bool {
	return modmath.IsQuadraticResidue(c.Polynomial(x), c.p)
}

// FindY returns a y such that (x, y) lies on the curve; the other
// choice is p-y. It returns ErrPointNotOnCurve when no point has
// abscissa x.
func (c *Curve) FindY(x *big.Int) (*big.Int, error) {
	y, err := modmath.SqrtMod(c.Polynomial(x), c.p)
	if err != nil {
		return nil, fmt.Errorf("%w: no point with x = %s", ErrPointNotOnCurve, x)
	}
	return y, nil
}

// Negate returns -pt, the additive inverse: (x, p-y) for affine points,
// infinity for infinity.
func (c *Curve) Negate(pt Point) Point {
	if pt.inf {
		return pt
	}
	negY := new(big.Int).Neg(pt.y)
	negY.Mod(negY, c.p)
	return Point{x: new(big.Int).Set(pt.x), y: negY}
}

// Add returns p1 + p2 under the chord-tangent group law. Both points
// must lie on the curve; the sum then lies on the curve as well.
func (c *Curve) Add(p1, p2 Point) Point {
	// Identity cases.
	if p1.inf {
		return p2
	}
	if p2.inf {
		return p1
	}

	if p1.x.Cmp(p2.x) == 0 {
		// Same abscissa: the points are equal or mutual inverses.
		if p1.y.Cmp(p2.y) != 0 {
			return Infinity()
		}
		// A point on the x axis is its own inverse; doubling it would
		// divide by 2y = 0, so the result is the identity.
		if p1.y.Sign() == 0 {
			return Infinity()
		}
		return c.double(p1)
	}

	// Chord slope m = (y2 - y1) / (x2 - x1). The denominator is nonzero
	// here, so the inverse always exists.
	num := new(big.Int).Sub(p2.y, p1.y)
	den := new(big.Int).Sub(p2.x, p1.x)
	den.Mod(den, c.p)
	m := num.Mul(num, den.ModInverse(den, c.p))
	m.Mod(m, c.p)

	return c.chord(m, p1, p2)
}

// Double returns pt + pt. Doubling a point with y = 0 or the point at
// infinity yields infinity.
func (c *Curve) Double(pt Point) Point {
	if pt.inf || pt.y.Sign() == 0 {
		return Infinity()
	}
	return c.double(pt)
}

// double computes 2*pt for an affine pt with y != 0.
func (c *Curve) double(pt Point) Point {
	// Tangent slope m = (3x^2 + a) / 2y.
	num := new(big.Int).Mul(pt.x, pt.x)
	num.Mul(num, three)
	num.Add(num, c.a)
	den := new(big.Int).Mul(two, pt.y)
	den.Mod(den, c.p)
	m := num.Mul(num, den.ModInverse(den, c.p))
	m.Mod(m, c.p)

	return c.chord(m, pt, pt)
}

// chord computes the third intersection of the line through p1 and p2
// with slope m, reflected over the x axis:
// x3 = m^2 - x1 - x2, y3 = m(x1 - x3) - y1.
func (c *Curve) chord(m *big.Int, p1, p2 Point) Point {
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, m)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)

	return Point{x: x3, y: y3}
}

// ScalarMult returns k*pt using double-and-add. k = 0 or pt = infinity
// yields infinity; a negative k multiplies the negated point by |k|.
// When the group order is known, k is reduced modulo it first, so
// multiplying a generator by the order yields infinity.
func (c *Curve) ScalarMult(k *big.Int, pt Point) Point {
	if pt.inf || k.Sign() == 0 {
		return Infinity()
	}
	if k.Sign() < 0 {
		return c.ScalarMult(new(big.Int).Neg(k), c.Negate(pt))
	}

	// By Lagrange the order of any point divides the group order, so
	// reducing k modulo the group order preserves the product.
	if c.order != nil {
		k = new(big.Int).Mod(k, c.order)
		if k.Sign() == 0 {
			return Infinity()
		}
	}

	// Double-and-add over the bits of k, most significant first.
	result := Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = c.Add(result, result)
		if k.Bit(i) == 1 {
			result = c.Add(result, pt)
		}
	}
	return result
}

// RandomPoint selects a uniformly random non-infinity point on the
// curve: it draws a random abscissa, walks forward to the next x lying
// on the curve (re-drawing on wraparound), and lifts it with a modular
// square root.
func (c *Curve) RandomPoint(random io.Reader) (Point, error) {
	x, err := randInRange(random, big.NewInt(0), new(big.Int).Sub(c.p, one))
	if err != nil {
		return Infinity(), err
	}

	for !c.IsXOnCurve(x) {
		x.Add(x, one)
		if x.Cmp(c.p) >= 0 {
			x, err = randInRange(random, big.NewInt(0), new(big.Int).Sub(c.p, one))
			if err != nil {
				return Infinity(), err
			}
		}
	}

	y, err := c.FindY(x)
	if err != nil {
		return Infinity(), err
	}
	return Point{x: x, y: y}, nil
}

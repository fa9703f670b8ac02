// Package modmath implements the modular-arithmetic primitives needed
// for elliptic-curve group operations over a prime field: Legendre
// symbols, quadratic-residue testing, Tonelli-Shanks square roots and
// modular inverses.
//
// All functions operate on *big.Int, treat the modulus p as an odd
// prime, and never mutate their arguments.
package modmath

import (
	"errors"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ErrNoSquareRoot is returned by SqrtMod when n is a quadratic
// non-residue modulo p, i.e. no r with r^2 = n (mod p) exists.
var ErrNoSquareRoot = errors.New("modmath: no square root exists")

// ErrNotInvertible is returned by Inverse when gcd(n, p) != 1.
var ErrNotInvertible = errors.New("modmath: value is not invertible")

// LegendreSymbol computes the Legendre symbol (n|p) for an odd prime p
// via Euler's criterion: n^((p-1)/2) mod p.
// It returns 0 if p divides n, 1 if n is a quadratic residue and -1
// otherwise.
func LegendreSymbol(n, p *big.Int) int {
	// e = (p-1)/2
	e := new(big.Int).Sub(p, one)
	e.Rsh(e, 1)

	// Reduce first so negative n is handled.
	nn := new(big.Int).Mod(n, p)
	r := nn.Exp(nn, e, p)

	// r is 0, 1 or p-1
	if r.Sign() == 0 {
		return 0
	}
	if r.Cmp(one) == 0 {
		return 1
	}
	return -1
}

// IsQuadraticResidue reports whether n has a square root modulo the odd
// prime p. n = 0 (mod p) counts as a residue with the single root 0.
func IsQuadraticResidue(n, p *big.Int) bool {
	return LegendreSymbol(n, p) != -1
}

// SqrtMod returns an r with r^2 = n (mod p) using the Tonelli-Shanks
// algorithm, for p an odd prime. The other root is p-r. It returns
// ErrNoSquareRoot when n is a non-residue.
func SqrtMod(n, p *big.Int) (*big.Int, error) {
	if LegendreSymbol(n, p) == -1 {
		return nil, ErrNoSquareRoot
	}

	// Trivial case: n = 0 (mod p) has the single root 0.
	nn := new(big.Int).Mod(n, p)
	if nn.Sign() == 0 {
		return big.NewInt(0), nil
	}

	// Fast path for p = 3 (mod 4): r = n^((p+1)/4) mod p.
	if p.Bit(0) == 1 && p.Bit(1) == 1 {
		e := new(big.Int).Add(p, one)
		e.Rsh(e, 2)
		return new(big.Int).Exp(nn, e, p), nil
	}

	// General case.
	// 1. Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, one)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// 2. Find a quadratic non-residue z.
	z := new(big.Int).Set(two)
	for LegendreSymbol(z, p) != -1 {
		z.Add(z, one)
	}

	// 3. Initial state.
	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(nn, q, p)
	e := new(big.Int).Add(q, one)
	e.Rsh(e, 1)
	r := new(big.Int).Exp(nn, e, p)

	// 4. Refine until t = 1.
	for t.Cmp(one) != 0 {
		// Least i with t^(2^i) = 1 (mod p).
		i := 0
		f := new(big.Int).Set(t)
		for f.Cmp(one) != 0 {
			f.Mul(f, f).Mod(f, p)
			i++
		}

		// b = c^(2^(m-i-1)) mod p
		b := new(big.Int).Set(c)
		for j := 0; j < m-i-1; j++ {
			b.Mul(b, b).Mod(b, p)
		}

		m = i
		c.Mul(b, b).Mod(c, p)
		t.Mul(t, c).Mod(t, p)
		r.Mul(r, b).Mod(r, p)
	}

	return r, nil
}

// Inverse returns n^-1 mod p. It returns ErrNotInvertible when n has no
// inverse, i.e. gcd(n, p) != 1.
func Inverse(n, p *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(n, p)
	if inv == nil {
		return nil, ErrNotInvertible
	}
	return inv, nil
}

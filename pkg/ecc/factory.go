package ecc

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecc/internal/crypto/modmath"
)

// MaxBruteForcePrime is the largest field modulus for which the factory
// computes the true group order by exhaustive point counting (the 7th
// Mersenne prime, 2^19 - 1). Above this bound the order must be
// supplied by the caller.
const MaxBruteForcePrime = 1<<19 - 1

// PrimalityOracle decides primality of arbitrary-size integers. It must
// be correct for both small and cryptographically large values.
type PrimalityOracle interface {
	IsPrime(n *big.Int) bool
}

// ProbablyPrimeOracle is the default PrimalityOracle, backed by the
// Baillie-PSW and Miller-Rabin tests of big.Int.ProbablyPrime.
type ProbablyPrimeOracle struct {
	// Rounds is the number of Miller-Rabin rounds; 0 means 64.
	Rounds int
}

func (o ProbablyPrimeOracle) IsPrime(n *big.Int) bool {
	rounds := o.Rounds
	if rounds == 0 {
		rounds = 64
	}
	return n.ProbablyPrime(rounds)
}

// Factory validates raw curve parameters and produces consistent,
// immutable Curve values. Primality testing and randomness are injected
// so tests can substitute deterministic collaborators.
type Factory struct {
	Oracle PrimalityOracle
	Random io.Reader
}

// NewFactory returns a Factory with the production collaborators:
// ProbablyPrimeOracle and crypto/rand.
func NewFactory() *Factory {
	return &Factory{
		Oracle: ProbablyPrimeOracle{},
		Random: rand.Reader,
	}
}

// CreateCurve validates (a, b, p, order, generator) and returns the
// resulting curve. order may be nil; pass Infinity() for generator to
// let the factory select one.
//
// The pipeline, each step short-circuiting on failure:
//  1. p must be an odd prime greater than 3 (ErrNotPrime).
//  2. The discriminant 4a^3 + 27b^2 must be nonzero mod p
//     (ErrSingularCurve).
//  3. A supplied order must be prime (ErrInvalidOrder).
//  4. For p <= MaxBruteForcePrime the true order is counted
//     exhaustively and overrides any disagreeing supplied order. For
//     larger p an order must have been supplied (ErrOrderRequired).
//  5. A supplied generator is validated against the curve equation; an
//     invalid one is replaced by a random point and the substitution is
//     recorded on the curve (see Curve.GeneratorSubstituted). With no
//     generator supplied, a random non-infinity point is selected;
//     when the order is prime every such point generates the group.
//
// If the resolved order is not prime the curve is still returned: it
// supports group arithmetic, but its generator is merely a point and
// the curve is not usable for ECDSA.
func (f *Factory) CreateCurve(a, b, p, order *big.Int, generator Point) (*Curve, error) {
	// 1. Field modulus must be an odd prime > 3.
	if p.Cmp(three) <= 0 || !f.Oracle.IsPrime(p) {
		return nil, fmt.Errorf("%w: p = %s", ErrNotPrime, p)
	}

	// 2. Non-singularity: 4a^3 + 27b^2 != 0 (mod p).
	if discriminant(a, b, p).Sign() == 0 {
		return nil, fmt.Errorf("%w: 4a^3 + 27b^2 = 0 (mod %s)", ErrSingularCurve, p)
	}

	// 3. A caller-supplied order must be prime.
	if order != nil && !f.Oracle.IsPrime(order) {
		return nil, fmt.Errorf("%w: order = %s", ErrInvalidOrder, order)
	}

	// 4. Resolve the true order.
	if p.Cmp(big.NewInt(MaxBruteForcePrime)) <= 0 {
		// Counting is feasible; the computed order is authoritative and
		// overrides a disagreeing caller-supplied value.
		order = countOrder(a, b, p)
	} else if order == nil {
		return nil, fmt.Errorf("%w: p = %s", ErrOrderRequired, p)
	}

	curve := NewCurve(a, b, p, order, Infinity())

	// 5. Resolve the generator.
	if !generator.IsInfinity() {
		if err := curve.CheckPoint(generator); err != nil {
			// Degraded path: keep the curve usable by substituting a
			// random point, but record the substitution so callers can
			// detect it.
			sub, rerr := curve.RandomPoint(f.Random)
			if rerr != nil {
				return nil, rerr
			}
			generator = sub
			curve.substituted = true
		}
	} else {
		g, err := curve.RandomPoint(f.Random)
		if err != nil {
			return nil, err
		}
		generator = g
	}
	curve.generator = generator

	return curve, nil
}

// discriminant returns (4a^3 + 27b^2) mod p.
func discriminant(a, b, p *big.Int) *big.Int {
	a3 := new(big.Int).Mod(a, p)
	a3.Exp(a3, three, p)
	a3.Mul(a3, big.NewInt(4))

	b2 := new(big.Int).Mul(b, b)
	b2.Mul(b2, big.NewInt(27))

	d := a3.Add(a3, b2)
	return d.Mod(d, p)
}

// countOrder computes the group order by exhaustive counting: each x in
// [0, p-1] contributes two points when x^3 + ax + b is a nonzero
// quadratic residue, one when it is zero, and none otherwise. The point
// at infinity contributes one. Only feasible for small p.
func countOrder(a, b, p *big.Int) *big.Int {
	curve := NewCurve(a, b, p, nil, Infinity())
	order := big.NewInt(1)
	for x := big.NewInt(0); x.Cmp(p) < 0; x.Add(x, one) {
		switch modmath.LegendreSymbol(curve.Polynomial(x), p) {
		case 0:
			order.Add(order, one)
		case 1:
			order.Add(order, two)
		}
	}
	return order
}

// randInRange draws a uniform integer in [low, high] from random.
func randInRange(random io.Reader, low, high *big.Int) (*big.Int, error) {
	width := new(big.Int).Sub(high, low)
	width.Add(width, one)
	n, err := rand.Int(random, width)
	if err != nil {
		return nil, err
	}
	return n.Add(n, low), nil
}

package ecc

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/smallyu/go-ecc/internal/crypto/modmath"
)

// Signature is an ECDSA signature: a pair of integers, each in
// [1, n-1] for the curve's group order n.
type Signature struct {
	R *big.Int
	S *big.Int
}

// KeyPair is an ECDSA key pair: a private scalar d in [1, n-1] and the
// derived public point Q = d*G.
type KeyPair struct {
	D      *big.Int
	Public Point
}

// maxSignAttempts bounds the resampling loop in Sign. The retried
// cases (r = 0, s = 0, k*G = infinity) each occur with probability
// about 1/n, so hitting the bound means the curve itself is unsound.
const maxSignAttempts = 100

// errSignLoopExhausted is only reachable with a degenerate curve.
var errSignLoopExhausted = errors.New("ecc: signing failed to produce a nonzero signature")

// GenerateKey draws a private scalar uniformly from [1, n-1] and
// derives the public point. The curve must have a prime order and a
// generator, as guaranteed by the factory path.
func GenerateKey(curve *Curve, random io.Reader) (*KeyPair, error) {
	n, err := signingOrder(curve)
	if err != nil {
		return nil, err
	}
	d, err := randInRange(random, one, new(big.Int).Sub(n, one))
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		D:      d,
		Public: curve.ScalarMult(d, curve.Generator()),
	}, nil
}

// Sign produces an ECDSA signature over the digest for the private
// scalar priv. The digest is a big-endian hex string; its integer value
// is the hash input h.
//
// For each attempt an ephemeral secret k is drawn uniformly from
// [1, n-1], R = k*G is computed, r = R.x mod n and
// s = k^-1 (h + r*priv) mod n. The attempt is retried when R is
// infinity, r = 0 or s = 0.
func Sign(curve *Curve, priv *big.Int, digest string, random io.Reader) (*Signature, error) {
	n, err := signingOrder(curve)
	if err != nil {
		return nil, err
	}

	h, err := HashToInt(digest)
	if err != nil {
		return nil, err
	}

	G := curve.Generator()
	nMinus1 := new(big.Int).Sub(n, one)

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		// 1. Ephemeral secret k in [1, n-1].
		k, err := randInRange(random, one, nMinus1)
		if err != nil {
			return nil, err
		}

		// 2. R = k*G.
		R := curve.ScalarMult(k, G)
		if R.IsInfinity() {
			continue
		}

		// 3. r = R.x mod n.
		r := R.X()
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}

		// 4. s = k^-1 (h + r*priv) mod n. n is prime and 0 < k < n, so
		// the inverse always exists.
		kInv, err := modmath.Inverse(k, n)
		if err != nil {
			return nil, err
		}
		s := new(big.Int).Mul(r, priv)
		s.Add(s, h)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}

	return nil, errSignLoopExhausted
}

// Verify reports whether sig is a valid signature over the digest for
// the public point pub. An invalid signature is an expected outcome,
// so Verify returns a boolean and never an error: malformed input,
// out-of-range values and failed equation checks all report false.
func Verify(curve *Curve, sig *Signature, digest string, pub Point) bool {
	n, err := signingOrder(curve)
	if err != nil {
		return false
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false
	}

	// 1. r and s must lie in [1, n-1].
	if !inRange(sig.R, n) || !inRange(sig.S, n) {
		return false
	}

	h, err := HashToInt(digest)
	if err != nil {
		return false
	}

	// 2. w = s^-1 mod n.
	w, err := modmath.Inverse(sig.S, n)
	if err != nil {
		return false
	}

	// 3. u1 = h*w, u2 = r*w (mod n).
	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	// 4. P = u1*G + u2*Q.
	P := curve.Add(
		curve.ScalarMult(u1, curve.Generator()),
		curve.ScalarMult(u2, pub),
	)

	// 5. Valid iff P is affine and its abscissa matches r mod n.
	if P.IsInfinity() {
		return false
	}
	x := P.X()
	x.Mod(x, n)
	return x.Cmp(sig.R) == 0
}

// HashToInt converts a big-endian hex digest, with or without an "0x"
// prefix, to the integer consumed by signing and verification.
func HashToInt(digest string) (*big.Int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(digest), "0x")
	h, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("ecc: invalid hex digest %q", digest)
	}
	return h, nil
}

// signingOrder returns the group order when the curve is usable for
// ECDSA: the order must be known and prime (so every nonzero scalar is
// invertible and the generator generates the whole group) and a
// generator must be set.
func signingOrder(curve *Curve) (*big.Int, error) {
	n := curve.Order()
	if n == nil || !n.ProbablyPrime(64) {
		return nil, fmt.Errorf("%w: ecdsa requires a prime group order", ErrInvalidOrder)
	}
	if curve.Generator().IsInfinity() {
		return nil, fmt.Errorf("%w: ecdsa requires a generator", ErrPointNotOnCurve)
	}
	return n, nil
}

// inRange reports 1 <= v <= n-1.
func inRange(v, n *big.Int) bool {
	return v.Sign() > 0 && v.Cmp(n) < 0
}

package ecc

import (
	"errors"

	"github.com/smallyu/go-ecc/internal/crypto/modmath"
)

// Construction and validation errors returned by the library.
var (
	// ErrNotPrime indicates the field modulus p failed the primality
	// check, or is not an odd prime greater than 3.
	ErrNotPrime = errors.New("ecc: modulus is not an odd prime greater than 3")

	// ErrSingularCurve indicates the discriminant 4a^3 + 27b^2 is zero
	// modulo p, so the curve equation has a singular point and the
	// chord-tangent group law breaks down.
	ErrSingularCurve = errors.New("ecc: curve is singular")

	// ErrInvalidOrder indicates a group order that is not prime where a
	// prime order is required.
	ErrInvalidOrder = errors.New("ecc: group order is not prime")

	// ErrOrderRequired indicates p exceeds MaxBruteForcePrime, so the
	// group order cannot be counted exhaustively and must be supplied.
	ErrOrderRequired = errors.New("ecc: order must be supplied for moduli above the brute-force bound")

	// ErrPointNotOnCurve indicates a point that does not satisfy the
	// curve equation y^2 = x^3 + ax + b (mod p).
	ErrPointNotOnCurve = errors.New("ecc: point is not on the curve")

	// ErrNoSquareRoot indicates a requested modular square root does
	// not exist (the value is a quadratic non-residue).
	ErrNoSquareRoot = modmath.ErrNoSquareRoot
)

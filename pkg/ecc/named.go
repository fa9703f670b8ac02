package ecc

import "math/big"

// Constructors for the standard SEC 2 curves
// (https://www.secg.org/sec2-v2.pdf). The constants are inert data;
// each constructor routes them through the normal factory path so the
// returned curve carries the same validated-construction guarantees as
// any other.

// hexInt parses a hard-coded curve constant.
func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: malformed curve constant " + s)
	}
	return n
}

func namedCurve(a, b, p, order *big.Int, gx, gy string) (*Curve, error) {
	return NewFactory().CreateCurve(a, b, p, order, NewPoint(hexInt(gx), hexInt(gy)))
}

// Secp192k1 returns the SEC 2 curve secp192k1.
func Secp192k1() (*Curve, error) {
	return namedCurve(
		big.NewInt(0),
		big.NewInt(3),
		hexInt("fffffffffffffffffffffffffffffffffffffffeffffee37"),
		hexInt("fffffffffffffffffffffffe26f2fc170f69466a74defd8d"),
		"db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d",
		"9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d",
	)
}

// Secp192r1 returns the SEC 2 curve secp192r1 (NIST P-192).
func Secp192r1() (*Curve, error) {
	return namedCurve(
		hexInt("fffffffffffffffffffffffffffffffefffffffffffffffc"),
		hexInt("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		hexInt("fffffffffffffffffffffffffffffffeffffffffffffffff"),
		hexInt("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		"188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012",
		"07192b95ffc8da78631011ed6b24cdd573f977a11e794811",
	)
}

// Secp224k1 returns the SEC 2 curve secp224k1.
func Secp224k1() (*Curve, error) {
	return namedCurve(
		big.NewInt(0),
		big.NewInt(5),
		hexInt("fffffffffffffffffffffffffffffffffffffffffffffffeffffe56d"),
		hexInt("010000000000000000000000000001dce8d2ec6184caf0a971769fb1f7"),
		"a1455b334df099df30fc28a169a467e9e47075a90f7e650eb6b7a45c",
		"7e089fed7fba344282cafbd6f7e319f7c0b0bd59e2ca4bdb556d61a5",
	)
}

// Secp224r1 returns the SEC 2 curve secp224r1 (NIST P-224).
func Secp224r1() (*Curve, error) {
	return namedCurve(
		hexInt("fffffffffffffffffffffffffffffffefffffffffffffffffffffffe"),
		hexInt("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4"),
		hexInt("ffffffffffffffffffffffffffffffff000000000000000000000001"),
		hexInt("ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d"),
		"b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21",
		"bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34",
	)
}

// Secp256k1 returns the SEC 2 curve secp256k1, the curve used by
// Bitcoin and Ethereum.
func Secp256k1() (*Curve, error) {
	return namedCurve(
		big.NewInt(0),
		big.NewInt(7),
		hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		hexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	)
}

// Secp256r1 returns the SEC 2 curve secp256r1 (NIST P-256).
func Secp256r1() (*Curve, error) {
	return namedCurve(
		hexInt("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"),
		hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		hexInt("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		hexInt("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	)
}

// Secp384r1 returns the SEC 2 curve secp384r1 (NIST P-384).
func Secp384r1() (*Curve, error) {
	return namedCurve(
		hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc"),
		hexInt("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff"),
		hexInt("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"),
		"aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7",
		"3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
	)
}

// Secp521r1 returns the SEC 2 curve secp521r1 (NIST P-521); its field
// prime 2^521 - 1 is the 13th Mersenne prime.
func Secp521r1() (*Curve, error) {
	return namedCurve(
		hexInt("01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc"),
		hexInt("0051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
		hexInt("01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		hexInt("01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"),
		"00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66",
		"011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650",
	)
}
